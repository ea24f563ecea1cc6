package blockinsert

import (
	"fmt"
	"image"
	"image/png"
	"strconv"
	"strings"

	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/johnmorse/rhinoinsertcommand/pkg/workflow"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newPreviewCmd(opts *globalOptions) *cobra.Command {
	var (
		block       string
		output      string
		size        string
		projection  string
		displayMode string
	)

	cmd := &cobra.Command{
		Use:     "preview [file]",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTarget(args, block)
			if err != nil {
				return err
			}
			out, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			s, err := opts.openSession(nil)
			if err != nil {
				return err
			}

			box := s.conf.Preview.Size()
			if size != "" {
				if box, err = parseSize(size); err != nil {
					return err
				}
			}
			proj := s.conf.Preview.ParsedProjection()
			if projection != "" {
				if proj, err = types.ParseProjection(projection); err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, "invalid --projection")
				}
			}
			mode := s.conf.Preview.ParsedDisplayMode()
			if displayMode != "" {
				if mode, err = types.ParseDisplayMode(displayMode); err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, "invalid --display-mode")
				}
			}

			wf := workflow.New(workflow.Deps{
				Table:    s.table,
				Probe:    s.probe,
				Renderer: s.renderer,
			}, s.conf.CommandConfiguration(), workflow.WithPreviewStore(s.store))
			if err := t.selectIn(wf); err != nil {
				return err
			}

			selected := wf.Selected()
			img := wf.PreviewAt(selected, proj, mode, box)
			if img == nil {
				return errors.Newf(errors.ErrNotFound, MsgErrNoPreview, selected.String())
			}

			path := absPath(output)
			if err := writePNG(s.probe.Fs(), path, img); err != nil {
				return err
			}
			return out.RenderMessage(fmt.Sprintf(MsgPreviewWritten, path))
		},
	}

	cmd.Flags().StringVar(&block, "block", "", MsgFlagBlock)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVar(&size, "size", "", MsgFlagSize)
	cmd.Flags().StringVar(&projection, "projection", "", MsgFlagProjection)
	cmd.Flags().StringVar(&displayMode, "display-mode", "", MsgFlagDisplayMode)
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.RegisterFlagCompletionFunc("block", blockNamesCompletion(opts))
	return cmd
}

// parseSize parses WIDTHxHEIGHT
func parseSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return image.Point{}, errors.Newf(errors.ErrInvalidInput, MsgErrInvalidSize, s)
	}
	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return image.Point{}, errors.Newf(errors.ErrInvalidInput, MsgErrInvalidSize, s)
	}
	return image.Pt(width, height), nil
}

func writePNG(fs afero.Fs, path string, img image.Image) error {
	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "cannot create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, errors.ErrInternal, "cannot encode %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "cannot write %s", path)
	}
	return nil
}
