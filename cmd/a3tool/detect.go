package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDetectCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Show the detected agent platform and OS class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			info, err := detector.Detect(ctx)
			if err != nil {
				return fmt.Errorf("detect platform: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "os:        %s\n", info.OS)
			fmt.Fprintf(out, "arch:      %s (%s)\n", info.Arch, info.ArchRaw)
			if info.Platform != "" {
				fmt.Fprintf(out, "platform:  %s %s\n", info.Platform, info.Version)
			}
			if global.verbose && info.Family != "" {
				fmt.Fprintf(out, "family:    %s\n", info.Family)
			}

			class, err := info.OSClass()
			if err != nil {
				fmt.Fprintf(out, "os class:  unsupported\n")
				return &ExitError{Code: ExitFailure, Err: err}
			}
			fmt.Fprintf(out, "os class:  %s (archive tag %s)\n", class, class.OSTag())
			return nil
		},
	}
}
