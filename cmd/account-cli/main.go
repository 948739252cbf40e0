// Package main is the entry point for the account-cli application.
// It offers the blocking database tooling of the service: schema migration,
// user listing and build information.
package main

import (
	"log"
	"os"

	commands "github.com/wisskirchenj/account-reactive/cmd/account-cli/internal/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
