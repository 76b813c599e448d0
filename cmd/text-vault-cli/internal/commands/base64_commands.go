package commands

import (
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/pkg/codec"
	"github.com/MGTheTrain/text-vault/internal/pkg/config"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
	"github.com/MGTheTrain/text-vault/internal/pkg/utils"

	"github.com/spf13/cobra"
)

// Base64CommandHandler encapsulates logic for base64 encoding and decoding via CLI.
type Base64CommandHandler struct {
	logger logger.Logger
}

// NewBase64CommandHandler initializes and returns a Base64CommandHandler instance
func NewBase64CommandHandler(cfg *config.CLIConfig) (*Base64CommandHandler, error) {
	loggerInstance, err := setupLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &Base64CommandHandler{logger: loggerInstance}, nil
}

// EncodeCmd prints the base64 encoding of the input
func (commandHandler *Base64CommandHandler) EncodeCmd(cmd *cobra.Command, _ []string) error {
	inputPath, format, err := commandHandler.flags(cmd)
	if err != nil {
		return err
	}

	data, err := utils.ReadInput(inputPath, cmd.InOrStdin())
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	encoded, err := codec.EncodeWith(format, data)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return err
}

// DecodeCmd writes the bytes decoded from base64 input
func (commandHandler *Base64CommandHandler) DecodeCmd(cmd *cobra.Command, _ []string) error {
	inputPath, format, err := commandHandler.flags(cmd)
	if err != nil {
		return err
	}

	data, err := utils.ReadInput(inputPath, cmd.InOrStdin())
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	decoded, err := codec.DecodeWith(format, string(data))
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = cmd.OutOrStdout().Write(decoded)
	return err
}

func (commandHandler *Base64CommandHandler) flags(cmd *cobra.Command) (string, codec.Format, error) {
	inputPath, _ := cmd.Flags().GetString("input")
	formatFlag, _ := cmd.Flags().GetString("format")

	format, err := codec.ParseFormat(formatFlag)
	if err != nil {
		commandHandler.logger.Error("invalid format flag ", err)
		return "", "", err
	}
	if err := verifyInputs(inputPath); err != nil {
		commandHandler.logger.Error(err)
		return "", "", err
	}
	return inputPath, format, nil
}

// InitBase64Commands registers the base64 command group
func InitBase64Commands(rootCmd *cobra.Command, cfg *config.CLIConfig) error {
	handler, err := NewBase64CommandHandler(cfg)
	if err != nil {
		return fmt.Errorf("failed to create base64 command handler %w", err)
	}

	var base64Cmd = &cobra.Command{
		Use:   "base64",
		Short: "Base64 encode or decode",
	}

	var encodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "Encode input to base64",
		RunE:  handler.EncodeCmd,
	}
	encodeCmd.Flags().StringP("input", "i", "-", "Input file, or - for stdin")
	encodeCmd.Flags().StringP("format", "", string(codec.FormatStandard), "Alphabet (standard, urlsafe)")
	base64Cmd.AddCommand(encodeCmd)

	var decodeCmd = &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 input",
		RunE:  handler.DecodeCmd,
	}
	decodeCmd.Flags().StringP("input", "i", "-", "Input file, or - for stdin")
	decodeCmd.Flags().StringP("format", "", string(codec.FormatStandard), "Alphabet (standard, urlsafe)")
	base64Cmd.AddCommand(decodeCmd)

	rootCmd.AddCommand(base64Cmd)
	return nil
}
