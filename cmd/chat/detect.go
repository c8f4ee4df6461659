package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDetectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <text>",
		Short: "Show which language a text is routed as, without answering it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, id, err := buildIdentifier(ctx, opts.logger())
			if err != nil {
				return err
			}

			det := id.Detect(ctx, strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), newRenderer(opts.plain).detection(det))
			return nil
		},
	}
}
