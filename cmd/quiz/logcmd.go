package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/younwookim/quizshow/internal/infrastructure/sessionlog"
)

func newLogCmd(g *globalOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the session log for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadSettings()
			if err != nil {
				return err
			}

			day := time.Now()
			if date != "" {
				day, err = time.ParseInLocation(sessionlog.DayLayout, date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}

			sink := sessionlog.NewFileSink(cfg.Log.Dir, nil)
			summary, err := sink.Summary(day)
			if err != nil {
				return err
			}
			printDay(cmd.OutOrStdout(), sessionlog.DayKey(day), summary)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to show (YYYY-MM-DD, default today)")
	return cmd
}

func printDay(w io.Writer, key string, day sessionlog.Day) {
	fmt.Fprintf(w, "%s: %d sessions\n", key, day.SessionsCount)
	for _, e := range day.Sessions {
		median := "-"
		if e.MedianTimePerQuestion != nil {
			median = fmt.Sprintf("%.3fs", *e.MedianTimePerQuestion)
		}
		fmt.Fprintf(w, "  %s  %d/%d  median %s\n", e.Time, e.Score, e.Total, median)
	}
}
