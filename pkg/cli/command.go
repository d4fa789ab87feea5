package cli

import (
	"github.com/spf13/cobra"
	"github.com/willbeason/escape-fractal/pkg/export"
	"github.com/willbeason/escape-fractal/pkg/render"
	"time"
)

// NewCommand returns the command drawing sets of the given kind.
func NewCommand(kind Kind) *cobra.Command {
	s := DefaultSettings(kind)

	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: short(kind),
		Args:  cobra.ExactArgs(0),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.Verify()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			// Run logs its own errors.
			cmd.SilenceErrors = true
			return Run(cmd, &s)
		},
	}

	flags := cmd.Flags()
	flags.VarP(&s.Box, "box", "b", "box bounds: bottom-left and top-right corners")
	flags.IntVarP(&s.Width, "width_pixel_number", "w", s.Width, "number of pixels of the width of the image")
	flags.IntVarP(&s.MaxIter, "max_iter", "m", s.MaxIter, "max iterations - precision indicator")
	flags.StringVarP(&s.FigPath, "fig_path", "f", s.FigPath, "path of the resulting image (.png, .bmp, .tif or .tiff)")
	if kind == JuliaKind {
		flags.VarP(&s.C, "constant", "c", "complex value defining this Julia set")
	}

	flags.IntVarP(&s.Workers, "workers", "p", s.Workers, "number of rows computed in parallel; 0 uses every CPU")
	flags.BoolVarP(&s.Verbose, "verbose", "v", false, "log debug information")
	flags.BoolVarP(&s.Quiet, "quiet", "q", false, "only log errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	return cmd
}

func short(kind Kind) string {
	if kind == JuliaKind {
		return "Build and save an image of a Julia set"
	}
	return "Build and save an image of the Mandelbrot set"
}

// Run renders the image described by s and writes it to s.FigPath. Nothing is
// written unless the whole image was computed.
func Run(cmd *cobra.Command, s *Settings) error {
	logger := newLogger(s.Kind.String(), s.Verbose, s.Quiet)
	logger.Debug(s.String())

	progress := &progressReporter{logger: &logger}

	start := time.Now()
	buf, err := render.Render(cmd.Context(), s.Fractal(), s.Viewport(), s.MaxIter, s.Width, render.Options{
		Workers:  s.Workers,
		Progress: progress.Report,
	})
	if err != nil {
		logger.Errorf("render failed: %v", err)
		return err
	}
	logger.Infof("rendered %dx%d image in %s", buf.Width, buf.Height, time.Since(start).Round(time.Millisecond))

	err = export.Save(s.FigPath, buf)
	if err != nil {
		logger.Errorf("unable to save image: %v", err)
		return err
	}
	logger.Infof("saved %s", s.FigPath)

	return nil
}
