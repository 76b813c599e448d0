package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/MGTheTrain/text-vault/internal/app"
	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/pkg/config"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
	"github.com/MGTheTrain/text-vault/internal/pkg/utils"

	"github.com/spf13/cobra"
)

// ConfigPathEnv names the environment variable pointing at an optional CLI config file
const ConfigPathEnv = "CONFIG_PATH"

// LoadConfig reads the CLI configuration from the file named by CONFIG_PATH, if any,
// and TEXT_VAULT_* environment overrides.
func LoadConfig() (*config.CLIConfig, error) {
	cfg, err := config.InitializeCLIConfig(os.Getenv(ConfigPathEnv))
	if err != nil {
		return nil, fmt.Errorf("failed to load CLI config: %w", err)
	}
	return cfg, nil
}

func setupLogger(cfg *config.CLIConfig) (logger.Logger, error) {
	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func setupServices(cfg *config.CLIConfig) (*app.Services, logger.Logger, error) {
	loggerInstance, err := setupLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	// Key streams are opened by the commands, so the loader never reads stdin itself.
	services, err := app.NewServices(loggerInstance, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create services: %w", err)
	}

	return services, loggerInstance, nil
}

// verifyInputs checks every path exists (or is "-") and that at most one of them reads stdin.
func verifyInputs(paths ...string) error {
	stdinUsers := 0
	for _, path := range paths {
		if err := utils.VerifyFile(path); err != nil {
			return err
		}
		if path == crypto.StdinSentinel {
			stdinUsers++
		}
	}
	if stdinUsers > 1 {
		return fmt.Errorf("only one input can be read from standard input")
	}
	return nil
}

// openInput opens path against the command's input stream.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	return utils.OpenInput(path, cmd.InOrStdin())
}

func closeQuietly(c io.Closer, log logger.Logger) {
	if err := c.Close(); err != nil {
		log.Warn("failed to close input: ", err)
	}
}
