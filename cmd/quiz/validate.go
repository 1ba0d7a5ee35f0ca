package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/younwookim/quizshow/internal/infrastructure/questions"
)

func newValidateCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [questions-file]",
		Short: "Load a question pool and report what normalization repairs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadSettings()
			if err != nil {
				return err
			}
			name := cfg.Quiz.QuestionsPath
			if len(args) == 1 {
				name = args[0]
			}

			loader, file := g.questionLoader(name, zap.NewNop())
			pool, err := loader.Load(file)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), name, questions.Summarize(pool), cfg.Quiz.SessionSize)
			return nil
		},
	}
}

func printReport(w io.Writer, name string, r questions.Report, sessionSize int) {
	fmt.Fprintf(w, "%s: %d questions\n", name, r.Total)
	if r.Total == 0 {
		fmt.Fprintln(w, "  empty pool: the quiz will show the fallback question")
		return
	}

	themes := make([]string, 0, len(r.Themes))
	for _, theme := range r.ThemeNames() {
		themes = append(themes, fmt.Sprintf("%s=%d", theme, r.Themes[theme]))
	}
	fmt.Fprintf(w, "  themes: %s\n", strings.Join(themes, " "))

	if sessionSize > 0 && r.Total < sessionSize {
		fmt.Fprintf(w, "  sessions will have %d questions (configured %d)\n", r.Total, sessionSize)
	}

	fmt.Fprintf(w, "  issues: %d\n", len(r.Issues))
	for _, issue := range r.Issues {
		fmt.Fprintf(w, "    %s\n", issue)
	}
}
