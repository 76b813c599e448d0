// Package main is the entry point for the text-vault-cli application.
// It initializes the root command and registers the text, genpass and base64 command groups,
// then executes the command-line interface.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	commands "github.com/MGTheTrain/text-vault/cmd/text-vault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "text-vault-cli",
		Short: "Text signing and encryption CLI tool",
		Long: `text-vault-cli signs, verifies, encrypts and decrypts text.
Supports BLAKE3 keyed hashes and Ed25519 signatures, ChaCha20-Poly1305 encryption,
key and password generation and base64 encoding.

Signatures and ciphertexts are printed as base64url without padding.
Use - as a path to read from standard input. Settings can be loaded from the YAML
file named by CONFIG_PATH and overridden with TEXT_VAULT_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	cfg, err := commands.LoadConfig()
	if err != nil {
		return err
	}

	if err := commands.InitTextCommands(rootCmd, cfg); err != nil {
		return fmt.Errorf("failed to initialize text commands: %w", err)
	}

	if err := commands.InitGenPassCommands(rootCmd, cfg); err != nil {
		return fmt.Errorf("failed to initialize genpass commands: %w", err)
	}

	if err := commands.InitBase64Commands(rootCmd, cfg); err != nil {
		return fmt.Errorf("failed to initialize base64 commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
