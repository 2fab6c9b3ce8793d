package main

import (
	"time"

	"github.com/spf13/cobra"

	"focus-dashboard/internal/schedule"
	"focus-dashboard/pkg/datemath"
)

type app struct {
	extractor schedule.Extractor
	parser    *datemath.Parser
	now       func() time.Time
}

func newRootCmd(load func() (*app, error)) *cobra.Command {
	root := &cobra.Command{
		Use:           "focusctl",
		Short:         "Command line tools for the focus dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newExtractCmd(load))

	return root
}
