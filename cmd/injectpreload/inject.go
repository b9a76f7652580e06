package injectpreload

import (
	"github.com/arthur-debert/injectpreload/pkg/core"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInjectCmd(a *app) *cobra.Command {
	var (
		flags  runFlags
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "inject [dist]",
		Short:   MsgInjectShort,
		Long:    MsgInjectLong,
		Example: MsgInjectExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.loadOptions(cmd, args, &flags)
			if err != nil {
				return err
			}
			opts.DryRun = dryRun

			r, err := a.renderer(cmd, flags.format)
			if err != nil {
				return err
			}

			result, err := core.InjectPreloads(a.fs, opts)
			if err != nil {
				return err
			}

			log.Info().
				Int("tags", result.TagCount()).
				Int("changed", result.ChangedCount()).
				Msg("Injection finished")

			return r.RenderInjectResult(result)
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)

	return cmd
}
