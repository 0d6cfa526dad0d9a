package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// API keys for the LLM sentiment providers commonly live in a .env
	// file during development.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
