package main

import "github.com/joho/godotenv"

func main() {
	// Load .env if present; real environment variables win.
	godotenv.Load()

	Execute()
}
