package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"focus-dashboard/internal/schedule"
)

func newExtractCmd(load func() (*app, error)) *cobra.Command {
	var nowFlag, dateFlag string

	cmd := &cobra.Command{
		Use:   "extract <text>",
		Short: "Extract one schedule entry from free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return err
			}

			ref, err := a.referenceNow(nowFlag, dateFlag)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return err
			}

			out, err := a.extractor.Extract(context.Background(), schedule.ExtractInput{
				Text:         strings.Join(args, " "),
				ReferenceNow: ref,
			})
			if err != nil {
				printFailure(cmd, err)
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Extraction)
		},
	}

	cmd.Flags().StringVar(&nowFlag, "now", "", "Reference moment in RFC3339 (default: current time)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date: YYYY-MM-DD, today, tomorrow, in N days, next <weekday>")

	return cmd
}

// referenceNow resolves --now, then moves it to --date keeping the clock time.
func (a *app) referenceNow(nowFlag, dateFlag string) (time.Time, error) {
	now := a.now().In(a.parser.Location())
	if nowFlag != "" {
		t, err := time.Parse(time.RFC3339, nowFlag)
		if err != nil {
			return time.Time{}, fmt.Errorf("--now: %w", err)
		}
		now = t
	}
	if dateFlag == "" {
		return now, nil
	}

	day, err := a.parser.Parse(dateFlag, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("--date: %w", err)
	}
	clock := now.In(day.Location())
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, day.Location()), nil
}

func printFailure(cmd *cobra.Command, err error) {
	var extErr *schedule.ExtractionError
	if !errors.As(err, &extErr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "extraction failed: reason=%s", extErr.Reason)
	if extErr.Field != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), " field=%s", extErr.Field)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "\n%v\n", err)
}
