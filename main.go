package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/tebeka/atexit"

	"github.com/rocketscienceinc/memory-match/internal/cli"
)

// main - is the entry point of the application. It loads .env if present and runs the command line.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			atexit.Exit(1)
		}
	}()

	// a missing .env file is fine, the environment and config.yml still apply
	_ = godotenv.Load()

	atexit.Exit(cli.Execute())
}
