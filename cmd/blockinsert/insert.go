package blockinsert

import (
	"fmt"
	"strings"

	"github.com/johnmorse/rhinoinsertcommand/pkg/config"
	"github.com/johnmorse/rhinoinsertcommand/pkg/document"
	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/johnmorse/rhinoinsertcommand/pkg/filesystem"
	"github.com/johnmorse/rhinoinsertcommand/pkg/paths"
	"github.com/johnmorse/rhinoinsertcommand/pkg/preview"
	"github.com/johnmorse/rhinoinsertcommand/pkg/style"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/johnmorse/rhinoinsertcommand/pkg/ui"
	"github.com/johnmorse/rhinoinsertcommand/pkg/ui/confirmations"
	"github.com/johnmorse/rhinoinsertcommand/pkg/ui/display"
	"github.com/johnmorse/rhinoinsertcommand/pkg/workflow"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// target is the file argument or --block flag of a command
type target struct {
	file  string
	block string
}

func newTarget(args []string, block string) (target, error) {
	t := target{block: block}
	if len(args) > 0 {
		t.file = absPath(args[0])
	}
	switch {
	case t.file == "" && t.block == "":
		return t, errors.New(errors.ErrNoTargetSelected, MsgErrNoTarget)
	case t.file != "" && t.block != "":
		return t, errors.New(errors.ErrInvalidInput, MsgErrBothTargets)
	}
	return t, nil
}

// selectIn adds or selects the target in wf
func (t target) selectIn(wf *workflow.Workflow) error {
	if t.file != "" {
		_, err := wf.BrowseFile(t.file)
		return err
	}
	return wf.SelectByName(t.block)
}

// session holds the collaborators of one command's workflow
type session struct {
	conf      *config.Config
	table     *document.Table
	tablePath string
	probe     *filesystem.Probe
	renderer  *preview.SidecarRenderer
	store     *preview.Store
}

func (g *globalOptions) openSession(overrides map[string]interface{}) (*session, error) {
	conf, err := g.loadConfig(overrides)
	if err != nil {
		return nil, err
	}
	table, tablePath, err := g.loadTable()
	if err != nil {
		return nil, err
	}

	probe := filesystem.NewOSProbe()
	renderer := preview.NewSidecarRenderer(probe.Fs(), table, absPath(conf.Preview.ThumbnailDir))
	store, err := preview.NewStore(conf.Preview.CacheSize, renderer, probe)
	if err != nil {
		return nil, err
	}
	return &session{
		conf:      conf,
		table:     table,
		tablePath: tablePath,
		probe:     probe,
		renderer:  renderer,
		store:     store,
	}, nil
}

func newInsertCmd(opts *globalOptions) *cobra.Command {
	var (
		link     linkFlags
		insertAs string
		block    string
		name     string
		yes      bool
		accept   bool
	)

	cmd := &cobra.Command{
		Use:     "insert [file]",
		Short:   MsgInsertShort,
		Long:    MsgInsertLong,
		Example: MsgInsertExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTarget(args, block)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") && strings.TrimSpace(name) == "" {
				return errors.New(errors.ErrEmptyName, MsgErrBlankName)
			}
			out, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			overrides := link.overrides(cmd)
			if cmd.Flags().Changed("as") {
				overrides["insert.insert_as"] = insertAs
			}
			s, err := opts.openSession(overrides)
			if err != nil {
				return err
			}

			dialog := confirmations.NewConsoleDialog(cmd.InOrStdin(), cmd.ErrOrStderr())
			dialog.AssumeYes = yes
			form := confirmations.NewConsoleForm(dialog)
			form.Accept = yes || accept
			form.Name = name

			cfg := s.conf.CommandConfiguration()
			wf := workflow.New(workflow.Deps{
				Table:    s.table,
				Prompt:   dialog,
				Probe:    s.probe,
				Renderer: s.renderer,
				Form:     form,
			}, cfg, workflow.WithPreviewStore(s.store))

			if err := t.selectIn(wf); err != nil {
				return err
			}
			selected := wf.Selected()
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), style.RenderCandidate(selected, true, wf.Describe(selected)))

			outcome, err := commitInteractive(wf, form, !form.Accept)
			switch outcome {
			case workflow.OutcomeAborted:
				if err == nil || errors.IsErrorCode(err, errors.ErrOverwriteDeclined) {
					return out.RenderMessage(MsgInsertCancelled)
				}
				return err
			case workflow.OutcomeEditing:
				if errors.IsErrorCode(err, errors.ErrCancelled) {
					return out.RenderMessage(MsgInsertCancelled)
				}
				if err != nil {
					return err
				}
				return out.RenderMessage(MsgNothingInserted)
			}

			return apply(out, s, opts, wf, cfg)
		},
	}

	link.register(cmd)
	cmd.Flags().StringVar(&insertAs, "as", "", MsgFlagAs)
	cmd.Flags().StringVar(&block, "block", "", MsgFlagBlock)
	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVar(&accept, "accept", false, MsgFlagAccept)
	_ = cmd.RegisterFlagCompletionFunc("block", blockNamesCompletion(opts))
	_ = cmd.RegisterFlagCompletionFunc("as", cobra.FixedCompletions(
		[]string{"block", "group", "objects"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

// commitInteractive commits the workflow. When the user declines to replace
// an existing definition, or leaves the name empty, the properties form is
// shown again so the candidate can be renamed.
func commitInteractive(wf *workflow.Workflow, form *confirmations.ConsoleForm, interactive bool) (workflow.Outcome, error) {
	for {
		outcome, err := wf.Commit()
		if outcome != workflow.OutcomeEditing || !interactive {
			return outcome, err
		}
		if err != nil && !errors.IsErrorCode(err, errors.ErrEmptyName) {
			return outcome, err
		}

		candidate := wf.Selected()
		if candidate == nil || !candidate.InsertSourceArchive {
			return outcome, err
		}
		ok, formErr := form.Edit(candidate)
		if formErr != nil {
			return outcome, formErr
		}
		if !ok {
			return outcome, err
		}
	}
}

// apply writes the committed insert to the table and remembers the settings
func apply(out ui.Renderer, s *session, opts *globalOptions, wf *workflow.Workflow, cfg *types.CommandConfiguration) error {
	rec, err := s.table.Apply(cfg)
	if err != nil {
		return err
	}
	created := rec != nil && !cfg.Options.IsBound()
	if rec != nil {
		cfg.Options.BlockID = rec.ID
	}

	if err := s.table.Save(s.tablePath); err != nil {
		return err
	}
	s.conf.Remember(cfg)
	if err := config.Save(paths.ExpandHome(opts.configPath), s.conf); err != nil {
		return err
	}

	log.Info().
		Str("block", cfg.Options.BlockName).
		Bool("created", created).
		Str("table", s.tablePath).
		Msg("Insert applied")
	return out.RenderCommit(display.NewCommitResult(workflow.OutcomeCommitted, cfg, rec, created, wf.Confirmations()))
}
