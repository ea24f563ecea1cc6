package blockinsert

import (
	"fmt"
	"os"

	"github.com/johnmorse/rhinoinsertcommand/internal/version"
	"github.com/johnmorse/rhinoinsertcommand/pkg/config"
	"github.com/johnmorse/rhinoinsertcommand/pkg/document"
	"github.com/johnmorse/rhinoinsertcommand/pkg/logging"
	"github.com/johnmorse/rhinoinsertcommand/pkg/paths"
	"github.com/johnmorse/rhinoinsertcommand/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	tablePath  string
	configPath string
	format     string
	noColor    bool
}

// tableFile returns the definition table snapshot to use
func (g *globalOptions) tableFile() string {
	if g.tablePath != "" {
		return paths.ExpandHome(g.tablePath)
	}
	return paths.TableFilePath()
}

func (g *globalOptions) loadTable() (*document.Table, string, error) {
	path := g.tableFile()
	table, err := document.Load(path)
	if err != nil {
		return nil, path, err
	}
	log.Debug().Str("table", path).Int("records", table.Len()).Msg("Loaded definition table")
	return table, path, nil
}

func (g *globalOptions) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	return config.LoadWithOverrides(paths.ExpandHome(g.configPath), overrides)
}

// renderer creates the output renderer for cmd and applies the matching
// styling to the shared style packages
func (g *globalOptions) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrUnknownFormat, err)
	}
	if format == ui.FormatAuto {
		format = ui.FormatText
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			format = ui.DetectFormat(f)
		}
	}
	if g.noColor && format == ui.FormatTerminal {
		format = ui.FormatText
	}
	ui.ApplyStyling(format)
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "blockinsert",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(opts.verbosity, cmd.ErrOrStderr(), opts.noColor)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.tablePath, "table", "", MsgFlagTable)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newInsertCmd(opts))
	rootCmd.AddCommand(newPreviewCmd(opts))
	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	installTopics(rootCmd)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}
}
