// Package main is the entry point for the gogetwell.ai landing site.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env.local overrides .env; neither overrides the real environment
	// except through Overload.
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
