package apierror

// Error type URIs following the urn:moodtrack:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:moodtrack:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:moodtrack:error:not_found"

	// TypeUnauthorized indicates a missing or unresolvable user identity (401)
	TypeUnauthorized = "urn:moodtrack:error:unauthorized"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:moodtrack:error:internal"

	// TypeInvalidMood indicates a mood label outside the 7-point scale (400)
	TypeInvalidMood = "urn:moodtrack:error:invalid_mood"

	// TypeInvalidRange indicates ill-formed range parameters, such as a
	// start date after the end date or a month outside 1..12 (400)
	TypeInvalidRange = "urn:moodtrack:error:invalid_range"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:moodtrack:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleUnauthorized = "Authentication Required"
	TitleInternal     = "Internal Server Error"
	TitleInvalidMood  = "Invalid Mood Category"
	TitleInvalidRange = "Invalid Range Parameters"
	TitleBadRequest   = "Bad Request"
)
