package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"pedidos-rapidisimos/config"
	"pedidos-rapidisimos/internal/assistant"
	"pedidos-rapidisimos/internal/assistant/delivery/terminal"
	cluRepo "pedidos-rapidisimos/internal/assistant/repository/clu"
	"pedidos-rapidisimos/internal/assistant/usecase"
	"pedidos-rapidisimos/internal/router"
	"pedidos-rapidisimos/pkg/clu"
	"pedidos-rapidisimos/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:          "pedidos",
	Short:        "Pedidos Rapidisimos terminal assistant",
	Long:         `Sends free-text food ordering queries to the CLU project and prints the detected intent, entities and action.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("plain", false, "Print replies as plain text instead of rendered markdown")
	rootCmd.PersistentFlags().Bool("verbose", false, "Write logs to stderr")
}

// newShell wires config, logger and the assistant pipeline into a terminal shell.
func newShell(cmd *cobra.Command) (*terminal.Shell, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	logger := log.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	analyzer := cluRepo.New(logger, clu.Config{
		Endpoint:       cfg.NLU.Endpoint,
		APIKey:         cfg.NLU.APIKey,
		ProjectName:    cfg.NLU.ProjectName,
		DeploymentName: cfg.NLU.DeploymentName,
		Language:       cfg.NLU.Language,
		APIVersion:     cfg.NLU.APIVersion,
		HTTPClient:     &http.Client{Timeout: cfg.NLU.Timeout},
	})
	uc := usecase.New(logger, analyzer, router.New(), nil)

	return newShellWith(cmd, logger, uc)
}

func newShellWith(cmd *cobra.Command, logger log.Logger, uc assistant.UseCase) (*terminal.Shell, error) {
	out := cmd.OutOrStdout()

	var renderer terminal.Renderer
	if plain, _ := cmd.Flags().GetBool("plain"); !plain {
		r, err := terminal.NewStyledRenderer(out)
		if err != nil {
			return nil, err
		}
		renderer = r
	}

	return terminal.New(logger, uc, cmd.InOrStdin(), out, renderer), nil
}
