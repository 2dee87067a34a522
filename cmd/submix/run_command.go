package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"submix/internal/analyser"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool
	var assumeNo bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Scan the library and mux missing subtitles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if assumeYes && assumeNo {
				return fmt.Errorf("--assume-yes and --assume-no are mutually exclusive")
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			a, err := ctx.newAnalyser()
			if err != nil {
				return err
			}
			switch {
			case assumeYes:
				a.WithConfirmer(analyser.ConfirmFunc(func(string) bool { return true }))
			case assumeNo:
				a.WithConfirmer(analyser.ConfirmFunc(func(string) bool { return false }))
			default:
				a.WithConfirmer(newStdioConfirmer())
			}

			summary, err := a.Run(signalCtx, analyser.RunOptions{DryRun: dryRun})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summary.Results) == 0 {
				fmt.Fprintln(out, "No movies found")
				return nil
			}

			rows := make([][]string, 0, len(summary.Results))
			for _, result := range summary.Results {
				detail := result.Detail
				if result.Outcome == analyser.OutcomeMuxed {
					detail = filepath.Base(result.Output)
				}
				rows = append(rows, []string{
					displayTitle(stemOf(result.Path)),
					string(result.Outcome),
					languageList(result.Added),
					detail,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Movie", "Outcome", "Added", "Detail"},
				rows,
			))
			fmt.Fprintf(out, "Muxed %d, skipped %d, failed %d\n", summary.Muxed, summary.Skipped, summary.Failed)

			if summary.Failed > 0 {
				return fmt.Errorf("%d movie(s) failed", summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "assume-yes", "y", false, "Rebuild existing outputs without prompting")
	cmd.Flags().BoolVarP(&assumeNo, "assume-no", "n", false, "Keep existing outputs without prompting")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Build plans and log ffmpeg invocations without executing them")
	return cmd
}
