// Command server runs the AG-UI streaming chat server.
package main

import (
	"fmt"
	"os"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"

	"github.com/eyalcohen4/ag-ui-tests/logging"
	"github.com/eyalcohen4/ag-ui-tests/model"
	"github.com/eyalcohen4/ag-ui-tests/model/anthropic"
	"github.com/eyalcohen4/ag-ui-tests/model/openai"
	"github.com/eyalcohen4/ag-ui-tests/runner"
	"github.com/eyalcohen4/ag-ui-tests/server"
	"github.com/eyalcohen4/ag-ui-tests/tool"
)

var rootCmd = &cobra.Command{
	Use:          "ag-ui-server",
	Short:        "Stream AG-UI protocol events from a chat model with tool calling",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := server.ConfigFromEnv()
		if err != nil {
			return err
		}

		logger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, os.Stdout)

		m, err := buildModel(cfg)
		if err != nil {
			return err
		}
		logger.Info("model.selected", "provider", m.Info().Provider, "model", m.Info().Name)

		tools := tool.NewRegistry(tool.NewCalculateTool(), tool.NewWeatherTool())

		run := runner.New(m, tools, func(o *runner.Options) {
			o.Logger = logger
		})
		srv := server.New(run, func(o *server.Options) {
			o.Logger = logger
		})
		return srv.ListenAndServe(cfg.Addr())
	},
}

// buildModel selects the provider backend from configuration.
func buildModel(cfg server.Config) (model.Model, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			if cfg.ModelName != "" {
				o.Model = cfg.ModelName
			}
		}), nil
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.ModelName != "" {
				o.Model = anthropicsdk.Model(cfg.ModelName)
			}
		}), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
