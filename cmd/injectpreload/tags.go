package injectpreload

import (
	"github.com/arthur-debert/injectpreload/pkg/core"
	"github.com/spf13/cobra"
)

func newTagsCmd(a *app) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:     "tags [dist]",
		Short:   MsgTagsShort,
		Long:    MsgTagsLong,
		Example: MsgTagsExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.loadOptions(cmd, args, &flags)
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd, flags.format)
			if err != nil {
				return err
			}

			tags, err := core.CollectTags(a.fs, opts)
			if err != nil {
				return err
			}
			return r.RenderTags(tags)
		},
	}

	addRunFlags(cmd, &flags)

	return cmd
}
