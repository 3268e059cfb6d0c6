// Package main is the entry point for the idea-cli application.
// It registers the IDEA key generation, encryption and decryption commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	commands "github.com/ujwal-s-r/system-design/cmd/idea-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "idea-cli",
		Short: "IDEA block cipher CLI tool",
		Long: `idea-cli encrypts and decrypts single 64-bit blocks with the IDEA cipher.

Messages are exactly eight characters. Keys and ciphertexts are written as
strings of binary digits: 128 for a key, 64 for a ciphertext.`,
		SilenceUsage: true,
	}

	if err := commands.InitIDEACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize IDEA commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
