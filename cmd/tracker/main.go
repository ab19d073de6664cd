package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/nhle/project-tracker/internal/cli"
)

func main() {
	// A missing .env is fine; configuration falls back to the YAML file
	// and built-in defaults.
	_ = godotenv.Load()

	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
