package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/younwookim/quizshow/internal/domain/quiz"
	"github.com/younwookim/quizshow/internal/infrastructure/config"
	"github.com/younwookim/quizshow/internal/infrastructure/questions"
)

// options shared by every subcommand
type globalOptions struct {
	configPath string
	debug      bool
	configs    fs.FS
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	r := &runOptions{}

	cmd := &cobra.Command{
		Use:           "quiz",
		Short:         "Animated multiple-choice quiz",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is normal; QUIZ_* variables may come from the shell.
			_ = godotenv.Load()

			sub, err := fs.Sub(configFS, "configs")
			if err != nil {
				return fmt.Errorf("failed to open embedded configs: %w", err)
			}
			g.configs = sub
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd.Context(), g, r)
		},
	}

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "settings file overriding the built-in defaults")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "development logging")

	cmd.Flags().StringVar(&r.questionsPath, "questions", "", "question pool (JSON or YAML); defaults to quiz.questions_path")
	cmd.Flags().StringVar(&r.recordPath, "record", "", "record input to file (e.g. --record replay.json)")
	cmd.Flags().StringVar(&r.replayPath, "replay", "", "replay input recorded with --record")
	cmd.Flags().Int64Var(&r.seed, "seed", 0, "randomizer seed (0 = from the clock)")
	cmd.MarkFlagsMutuallyExclusive("record", "replay")

	cmd.AddCommand(newValidateCmd(g), newLogCmd(g))
	return cmd
}

func (g *globalOptions) loadSettings() (*config.Settings, error) {
	cfg, err := config.NewFSLoader(g.configs, "configs").Load(g.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func (g *globalOptions) logger(cfg *config.Settings) (*zap.Logger, error) {
	return newLogger(cfg.Log.Level, g.debug)
}

// newLogger builds a development logger for --debug, otherwise a production
// logger at the configured level.
func newLogger(level string, debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		zc.Level = lvl
	}
	return zc.Build()
}

// questionLoader resolves name on disk first, then among the embedded configs.
// It returns the loader and the name to load through it.
func (g *globalOptions) questionLoader(name string, logger *zap.Logger) (*questions.Loader, string) {
	if _, err := os.Stat(name); err == nil {
		return questions.NewLoader(filepath.Dir(name), logger), filepath.Base(name)
	}
	return questions.NewFSLoader(g.configs, logger), name
}

func (g *globalOptions) loadPool(name string, logger *zap.Logger) []quiz.RawQuestion {
	loader, file := g.questionLoader(name, logger)
	return loader.LoadOrEmpty(file)
}
