package injectpreload

import (
	"embed"
	"fmt"
	"os"

	"github.com/arthur-debert/injectpreload/internal/version"
	"github.com/arthur-debert/injectpreload/pkg/cobrax/topics"
	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/filesystem"
	"github.com/arthur-debert/injectpreload/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configPath string
	noColor    bool
}

// app carries what commands need from their environment
type app struct {
	fs afero.Fs
	// configFS reads config files; nil reads them straight from disk
	configFS afero.Fs
	workDir  string
	global   globalOptions
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	return newRootCmd(&app{fs: filesystem.NewOS(), workDir: workDir})
}

func newRootCmd(a *app) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "injectpreload",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.global.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but still report incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommandProvided)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.global.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&a.global.configPath, "config", "c", "", MsgFlagConfig)
	flags.BoolVar(&a.global.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInjectCmd(a))
	rootCmd.AddCommand(newTagsCmd(a))
	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(!stdoutIsTerminal()),
	}
	if _, err := topics.Initialize(rootCmd, topicsFS, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil {
				return err
			}
			helpCmd.SetOut(cmd.OutOrStdout())
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
