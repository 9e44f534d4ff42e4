package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/electron-kit/pkg/pipeline"
)

func newLayoutCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: MsgLayoutShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g, cmd.Flags())
			if err != nil {
				return err
			}
			plan, err := pipeline.NewPlan(cfg.Options)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := plan.Paths
			if cfg.Source != "" {
				fmt.Fprintf(out, MsgLayoutConfig, cfg.Source)
			}
			fmt.Fprintf(out, MsgLayoutPlatform, plan.Platform)
			fmt.Fprintf(out, MsgLayoutResources, plan.Layout.ResourcePath)
			fmt.Fprintf(out, MsgLayoutOutput, p.Output)
			fmt.Fprintf(out, MsgLayoutRuntime, p.Runtime, p.Electron)
			if cfg.Archive {
				fmt.Fprintf(out, MsgLayoutApp, p.Input, p.StagedArchive())
			} else {
				fmt.Fprintf(out, MsgLayoutApp, p.Input, p.Resources)
			}
			fmt.Fprintf(out, MsgLayoutExe, plan.BrandedExecutablePath())
			return nil
		},
	}

	addOptionFlags(cmd.Flags())
	return cmd
}
