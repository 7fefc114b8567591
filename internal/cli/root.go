// Package cli implements the heartrisk command line tool.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"heart-risk-service/internal/config"
	"heart-risk-service/internal/core/domain"
	ports "heart-risk-service/internal/core/ports/output"
	"heart-risk-service/internal/provider"
)

// NewRootCommand builds a fresh command tree so tests do not share flag state.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "heartrisk",
		Short:         "Heart disease risk assessment",
		Long:          "heartrisk scores eleven clinical measurements against a pre-trained heart disease model.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("model", "", "Path to a model artifact (overrides MODEL_SOURCE and MODEL_PATH)")
	root.PersistentFlags().String("env-file", ".env", "Dotenv file loaded before reading the environment")
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newPredictCommand())
	root.AddCommand(newFeaturesCommand())
	root.AddCommand(newModelCommand())
	return root
}

func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// loadConfig resolves configuration the way the server does, then applies
// the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logger.Level = level
	}
	cfg.Logger.Format = "text"
	cfg.Logger.File = ""
	config.InitLogger(cfg.Logger)

	if path, _ := cmd.Flags().GetString("model"); path != "" {
		cfg.Model.Source = config.SourceFile
		cfg.Model.Path = path
	}
	return cfg, nil
}

func openProvider(ctx context.Context, cmd *cobra.Command) (ports.Classifier, domain.ModelInfo, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, domain.ModelInfo{}, err
	}
	return provider.Open(ctx, cfg)
}
