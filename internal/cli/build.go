package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/electron-kit/pkg/filesystem"
	"github.com/arthur-debert/electron-kit/pkg/pipeline"
	"github.com/arthur-debert/electron-kit/pkg/runner"
	"github.com/arthur-debert/electron-kit/pkg/ui"
)

func newBuildCmd(g *globalOptions) *cobra.Command {
	var progress string

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(progress)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(g, cmd.Flags())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			format = ui.ResolveWriter(format, out, g.noColor)

			fsys := filesystem.NewOS()
			driver := pipeline.New(
				pipeline.DefaultCollaborators(fsys, runner.New(), cfg.Tools),
				ui.NewReporter(format, out),
			)
			result := driver.Run(cmd.Context(), cfg.Options)

			if format != ui.FormatJSON {
				fmt.Fprintln(out, ui.RenderResult(result, ui.ThemeFor(format)))
			}
			if !result.Success {
				return errReported
			}
			return nil
		},
	}

	addOptionFlags(cmd.Flags())
	cmd.Flags().StringVar(&progress, "progress", "auto", MsgFlagProgress)
	return cmd
}
