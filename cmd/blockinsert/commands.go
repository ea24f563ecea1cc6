package blockinsert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/johnmorse/rhinoinsertcommand/pkg/document"
	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/johnmorse/rhinoinsertcommand/pkg/filesystem"
	"github.com/johnmorse/rhinoinsertcommand/pkg/paths"
	"github.com/johnmorse/rhinoinsertcommand/pkg/resolve"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/johnmorse/rhinoinsertcommand/pkg/ui/display"
	"github.com/johnmorse/rhinoinsertcommand/pkg/workflow"
	"github.com/spf13/cobra"
)

// blockNamesCompletion completes the names of the listable definitions
func blockNamesCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		table, _, err := opts.loadTable()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var names []string
		for _, rec := range table.AllRecords() {
			if rec.Listable(false) && strings.HasPrefix(strings.ToLower(rec.Name), strings.ToLower(toComplete)) {
				names = append(names, rec.Name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// linkFlags are the definition defaults a command may override
type linkFlags struct {
	updateType string
	layerStyle string
	skipNested bool
}

func (f *linkFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.updateType, "update-type", "", MsgFlagUpdateType)
	cmd.Flags().StringVar(&f.layerStyle, "layer-style", "", MsgFlagLayerStyle)
	cmd.Flags().BoolVar(&f.skipNested, "skip-nested", false, MsgFlagSkipNested)
}

// overrides returns the configuration keys of the flags given on the
// command line
func (f *linkFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	o := map[string]interface{}{}
	if cmd.Flags().Changed("update-type") {
		o["defaults.update_type"] = f.updateType
	}
	if cmd.Flags().Changed("layer-style") {
		o["defaults.layer_style"] = f.layerStyle
	}
	if cmd.Flags().Changed("skip-nested") {
		o["defaults.skip_nested_linked_definitions"] = f.skipNested
	}
	return o
}

// absPath expands ~ and makes path absolute so it compares equal to the
// paths recorded in the table
func absPath(path string) string {
	path = paths.ExpandHome(strings.TrimSpace(path))
	if path == "" {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var hidden bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			conf, err := opts.loadConfig(nil)
			if err != nil {
				return err
			}
			table, _, err := opts.loadTable()
			if err != nil {
				return err
			}

			cfg := conf.CommandConfiguration()
			cfg.ShowHiddenDefinitions = cfg.ShowHiddenDefinitions || hidden
			wf := workflow.New(workflow.Deps{Table: table}, cfg)
			return out.RenderBlocks(display.NewBlockList(wf, table.Path()))
		},
	}
	cmd.Flags().BoolVar(&hidden, "hidden", false, MsgFlagHidden)
	return cmd
}

func newResolveCmd(opts *globalOptions) *cobra.Command {
	var link linkFlags

	cmd := &cobra.Command{
		Use:     "resolve <file>",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			conf, err := opts.loadConfig(link.overrides(cmd))
			if err != nil {
				return err
			}
			table, _, err := opts.loadTable()
			if err != nil {
				return err
			}

			file := absPath(args[0])
			candidate := types.NewInsertionOptionSet()
			candidate.UpdateType = conf.Defaults.UpdateType
			candidate.LayerStyle = conf.Defaults.LayerStyle
			candidate.SkipNestedLinkedDefinitions = conf.Defaults.SkipNestedLinkedDefinitions

			res, err := resolve.NewEngine(table).ResolveNameAndMatch(file, candidate)
			if err != nil {
				return err
			}
			return out.RenderResolution(display.NewResolution(file, res))
		},
	}
	link.register(cmd)
	return cmd
}

func newInitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "init <document>",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			path := opts.tableFile()
			if filesystem.NewOSProbe().Exists(path) {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrTableExists, path).WithDetail("path", path)
			}

			doc := absPath(args[0])
			if err := document.NewTable(doc).Save(path); err != nil {
				return err
			}
			return out.RenderMessage(fmt.Sprintf(MsgTableCreated, path, doc))
		},
	}
}
