package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/keys"
	"github.com/MGTheTrain/text-vault/internal/domain/text"
	"github.com/MGTheTrain/text-vault/internal/pkg/config"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
	"github.com/MGTheTrain/text-vault/internal/pkg/utils"

	"github.com/spf13/cobra"
)

// TextCommandHandler encapsulates logic for handling text sign, verify, key generation
// and encryption via CLI.
type TextCommandHandler struct {
	textSignService      text.TextSignService
	textCipherService    text.TextCipherService
	keyGenerationService keys.KeyGenerationService
	settings             config.TextSettings
	logger               logger.Logger
}

// NewTextCommandHandler initializes and returns a TextCommandHandler instance with
// configured logger and services.
func NewTextCommandHandler(cfg *config.CLIConfig) (*TextCommandHandler, error) {
	services, loggerInstance, err := setupServices(cfg)
	if err != nil {
		return nil, err
	}

	return &TextCommandHandler{
		textSignService:      services.TextSignService,
		textCipherService:    services.TextCipherService,
		keyGenerationService: services.KeyGenerationService,
		settings:             cfg.Text,
		logger:               loggerInstance,
	}, nil
}

// SignCmd signs the input and prints the base64url signature
func (commandHandler *TextCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	keyPath, _ := cmd.Flags().GetString("key")
	format, _ := cmd.Flags().GetString("format")

	alg, err := crypto.ParseAlgorithm(format)
	if err != nil {
		commandHandler.logger.Error("invalid format flag ", err)
		return err
	}
	if err := verifyInputs(inputPath, keyPath); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	input, err := openInput(cmd, inputPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	defer closeQuietly(input, commandHandler.logger)

	key, err := openInput(cmd, keyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	defer closeQuietly(key, commandHandler.logger)

	signature, err := commandHandler.textSignService.Sign(cmd.Context(), input, key, alg)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), signature)
	return err
}

// VerifyCmd verifies a base64url signature over the input
func (commandHandler *TextCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	keyPath, _ := cmd.Flags().GetString("key")
	signature, _ := cmd.Flags().GetString("sig")
	format, _ := cmd.Flags().GetString("format")

	alg, err := crypto.ParseAlgorithm(format)
	if err != nil {
		commandHandler.logger.Error("invalid format flag ", err)
		return err
	}
	if err := verifyInputs(inputPath, keyPath); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	input, err := openInput(cmd, inputPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	defer closeQuietly(input, commandHandler.logger)

	key, err := openInput(cmd, keyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	defer closeQuietly(key, commandHandler.logger)

	verified, err := commandHandler.textSignService.Verify(cmd.Context(), input, key, signature, alg)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	if verified {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "✓ Signature verified")
	} else {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "⚠ Signature not verified")
	}
	return err
}

// GenerateCmd generates key material and writes it into the output directory
func (commandHandler *TextCommandHandler) GenerateCmd(cmd *cobra.Command, _ []string) error {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	format, _ := cmd.Flags().GetString("format")

	alg, err := crypto.ParseAlgorithm(format)
	if err != nil {
		commandHandler.logger.Error("invalid format flag ", err)
		return err
	}
	if outputDir == "" {
		outputDir = commandHandler.settings.KeyDir
	}

	set, err := commandHandler.keyGenerationService.Generate(cmd.Context(), alg)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	defer set.Zero()

	paths, err := commandHandler.keyGenerationService.Save(cmd.Context(), set, outputDir)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	for _, path := range paths {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
			return err
		}
	}
	return nil
}

// EncryptCmd encrypts the input and prints the base64url ciphertext
func (commandHandler *TextCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	keyPath, _ := cmd.Flags().GetString("key")
	format, _ := cmd.Flags().GetString("format")

	alg, err := crypto.ParseAlgorithm(format)
	if err != nil {
		commandHandler.logger.Error("invalid format flag ", err)
		return err
	}
	if err := verifyInputs(inputPath, keyPath); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	input, err := openInput(cmd, inputPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	defer closeQuietly(input, commandHandler.logger)

	key, err := openInput(cmd, keyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	defer closeQuietly(key, commandHandler.logger)

	ciphertext, err := commandHandler.textCipherService.Encrypt(cmd.Context(), input, key, alg)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
	return err
}

// DecryptCmd decrypts base64url ciphertext and writes the plaintext to stdout or the output file
func (commandHandler *TextCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	keyPath, _ := cmd.Flags().GetString("key")
	outputPath, _ := cmd.Flags().GetString("output-file")
	format, _ := cmd.Flags().GetString("format")

	alg, err := crypto.ParseAlgorithm(format)
	if err != nil {
		commandHandler.logger.Error("invalid format flag ", err)
		return err
	}
	if err := verifyInputs(inputPath, keyPath); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	ciphertext, err := utils.ReadInput(inputPath, cmd.InOrStdin())
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	key, err := openInput(cmd, keyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	defer closeQuietly(key, commandHandler.logger)

	plaintext, err := commandHandler.textCipherService.Decrypt(cmd.Context(), string(ciphertext), key, alg)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	if outputPath == "" {
		_, err = cmd.OutOrStdout().Write(plaintext)
		return err
	}

	if err := os.WriteFile(filepath.Clean(outputPath), plaintext, 0600); err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	commandHandler.logger.Info("Decrypted data saved to ", outputPath)
	return nil
}

// InitTextCommands registers the text command group
func InitTextCommands(rootCmd *cobra.Command, cfg *config.CLIConfig) error {
	handler, err := NewTextCommandHandler(cfg)
	if err != nil {
		return fmt.Errorf("failed to create text command handler %w", err)
	}

	var textCmd = &cobra.Command{
		Use:   "text",
		Short: "Sign, verify, encrypt and decrypt text",
	}

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a private/shared key",
		RunE:  handler.SignCmd,
	}
	signCmd.Flags().StringP("input", "i", crypto.StdinSentinel, "Input file, or - for stdin")
	signCmd.Flags().StringP("key", "k", "", "Key file, or - for stdin")
	signCmd.Flags().StringP("format", "", cfg.Text.DefaultSignAlgorithm, "Signature algorithm (blake3, ed25519)")
	_ = signCmd.MarkFlagRequired("key")
	textCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a signed message with a public/shared key",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("input", "i", crypto.StdinSentinel, "Input file, or - for stdin")
	verifyCmd.Flags().StringP("key", "k", "", "Key file, or - for stdin")
	verifyCmd.Flags().StringP("sig", "s", "", "Base64url signature")
	verifyCmd.Flags().StringP("format", "", cfg.Text.DefaultSignAlgorithm, "Signature algorithm (blake3, ed25519)")
	_ = verifyCmd.MarkFlagRequired("key")
	_ = verifyCmd.MarkFlagRequired("sig")
	textCmd.AddCommand(verifyCmd)

	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a new key",
		RunE:  handler.GenerateCmd,
	}
	generateCmd.Flags().StringP("output-dir", "o", "", "Directory for the key files (defaults to text.key_dir)")
	generateCmd.Flags().StringP("format", "", cfg.Text.DefaultSignAlgorithm, "Key algorithm (blake3, ed25519, chacha20poly1305)")
	textCmd.AddCommand(generateCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message with a shared key",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input", "i", crypto.StdinSentinel, "Input file, or - for stdin")
	encryptCmd.Flags().StringP("key", "k", "", "Key file, or - for stdin")
	encryptCmd.Flags().StringP("format", "", cfg.Text.DefaultCipherAlgorithm, "Cipher algorithm (chacha20poly1305)")
	_ = encryptCmd.MarkFlagRequired("key")
	textCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a base64url ciphertext with a shared key",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input", "i", crypto.StdinSentinel, "File holding the base64url ciphertext, or - for stdin")
	decryptCmd.Flags().StringP("key", "k", "", "Key file, or - for stdin")
	decryptCmd.Flags().StringP("output-file", "o", "", "Plaintext output file (defaults to stdout)")
	decryptCmd.Flags().StringP("format", "", cfg.Text.DefaultCipherAlgorithm, "Cipher algorithm (chacha20poly1305)")
	_ = decryptCmd.MarkFlagRequired("key")
	textCmd.AddCommand(decryptCmd)

	rootCmd.AddCommand(textCmd)
	return nil
}
