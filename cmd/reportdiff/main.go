package main

import (
	"os"

	"github.com/joho/godotenv"

	"reportdiff/internal/cli"
)

func main() {
	// Provider API keys are commonly kept in a local .env; absence is fine.
	_ = godotenv.Load()

	os.Exit(cli.Run())
}
