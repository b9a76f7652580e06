package injectpreload

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/injectpreload/pkg/config"
	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/filesystem"
	"github.com/arthur-debert/injectpreload/pkg/output"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		force     bool
		printOnly bool
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			if printOnly {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := a.abs(a.global.configPath)
			if path == "" {
				path = filepath.Join(a.workDir, config.ConfigFileNames[0])
			}

			if filesystem.Exists(a.fs, path) && !force {
				return errors.Newf(errors.ErrFileExists, MsgConfigExists, path).
					WithDetail("path", path)
			}
			if err := filesystem.WriteFile(a.fs, path, []byte(content)); err != nil {
				return err
			}

			r := output.NewRenderer(cmd.OutOrStdout(), output.FormatText, a.global.noColor)
			return r.RenderMessage("Success", fmt.Sprintf(MsgConfigWritten, path))
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&printOnly, "print", false, MsgFlagPrint)

	return cmd
}
