package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultLogFile = "sentigo_prompts.log"

var (
	appConfig  Config
	logger     *zap.Logger
	configPath string
	logFile    string
	verbose    bool
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "sentigo",
		Short:        "Sentiment classifier evaluation harness",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			appConfig = cfg

			path := resolveString(logFile, appConfig.LogFile)
			if path == "" {
				path = defaultLogFile
			}
			logger, err = buildLogger(path, verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "prompt log file path")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	root.AddCommand(newEvalCommand())
	root.AddCommand(newPredictCommand())
	root.AddCommand(newListCommand())

	return root
}

// buildLogger constructs the durable prompt log sink, created once per run
// and synced at exit. Entries always land in the log file; when stderr is an
// interactive terminal they are mirrored there too.
func buildLogger(path string, verbose bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	outputs := []string{path}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		outputs = append(outputs, "stderr")
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}
