// Package main provides the entry point for the pension-match CLI application.
package main

import (
	"os"
	"path/filepath"

	"eladk/pension-match/cmd/convert"
	"eladk/pension-match/cmd/match"
	"eladk/pension-match/cmd/root"
	"eladk/pension-match/cmd/taxonomy"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables silently before any logging is configured
	loadEnvSilently()

	root.Init()

	root.Cmd.AddCommand(match.Cmd)
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(taxonomy.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Fatal(err)
	}
}
