package commands

import (
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/domain/text"
	"github.com/MGTheTrain/text-vault/internal/pkg/config"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// GenPassCommandHandler encapsulates logic for generating passwords via CLI.
type GenPassCommandHandler struct {
	passwordService text.PasswordService
	logger          logger.Logger
}

// NewGenPassCommandHandler initializes and returns a GenPassCommandHandler instance
func NewGenPassCommandHandler(cfg *config.CLIConfig) (*GenPassCommandHandler, error) {
	services, loggerInstance, err := setupServices(cfg)
	if err != nil {
		return nil, err
	}

	return &GenPassCommandHandler{
		passwordService: services.PasswordService,
		logger:          loggerInstance,
	}, nil
}

// GenPassCmd prints a random password
func (commandHandler *GenPassCommandHandler) GenPassCmd(cmd *cobra.Command, _ []string) error {
	length, err := cmd.Flags().GetInt("length")
	if err != nil {
		commandHandler.logger.Error("invalid length flag ", err)
		return err
	}
	noUpper, _ := cmd.Flags().GetBool("no-upper")
	noLower, _ := cmd.Flags().GetBool("no-lower")
	noNumber, _ := cmd.Flags().GetBool("no-number")
	noSymbol, _ := cmd.Flags().GetBool("no-symbol")

	password, err := commandHandler.passwordService.Generate(cmd.Context(), length, !noUpper, !noLower, !noNumber, !noSymbol)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), password)
	return err
}

// InitGenPassCommands registers the genpass command
func InitGenPassCommands(rootCmd *cobra.Command, cfg *config.CLIConfig) error {
	handler, err := NewGenPassCommandHandler(cfg)
	if err != nil {
		return fmt.Errorf("failed to create genpass command handler %w", err)
	}

	var genPassCmd = &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		RunE:  handler.GenPassCmd,
	}
	genPassCmd.Flags().IntP("length", "l", 16, "Password length (4-128)")
	genPassCmd.Flags().Bool("no-upper", false, "Leave out uppercase letters")
	genPassCmd.Flags().Bool("no-lower", false, "Leave out lowercase letters")
	genPassCmd.Flags().Bool("no-number", false, "Leave out digits")
	genPassCmd.Flags().Bool("no-symbol", false, "Leave out symbols")
	rootCmd.AddCommand(genPassCmd)

	return nil
}
