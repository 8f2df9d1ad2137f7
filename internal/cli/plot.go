package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jetplot/jetplot/pkg/cache"
	"github.com/jetplot/jetplot/pkg/chart"
	"github.com/jetplot/jetplot/pkg/colors"
	"github.com/jetplot/jetplot/pkg/config"
	"github.com/jetplot/jetplot/pkg/dataio"
	"github.com/jetplot/jetplot/pkg/errors"
	"github.com/jetplot/jetplot/pkg/observability"
)

// watchDebounce is how long --watch waits after the last change to re-render.
const watchDebounce = 150 * time.Millisecond

// plotOpts holds the flags of the plot command. Styling fields not set on
// the command line are taken from the config file.
type plotOpts struct {
	output  string  // output path; extension picks svg, png or pdf
	x       string  // x column name or index; empty uses row numbers
	scatter bool    // draw markers instead of lines
	title   string  // axes title
	xlabel  string  // x axis label
	ylabel  string  // y axis label
	width   float64 // figure width in pixels
	height  float64 // figure height in pixels

	fontSize float64 // tick label font size
	color    string  // tick and axis label color
	tickDir  string  // tick direction: in, out, inout
	palette  string  // series color group
	breathe  bool    // offset spines from the data
	noSpines bool    // hide top and right spines
	noTicks  bool    // remove all ticks

	watch   bool // re-render when the input changes
	noCache bool // bypass the artifact cache
}

// plotCommand creates the plot command.
func (c *CLI) plotCommand() *cobra.Command {
	var opts plotOpts

	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Render a data file as a styled line plot",
		Long: `Render every column of a data file (.csv, .tsv or .json) as a line on one
set of axes, styled with jetplot's defaults.

The output format follows the extension of --output: .svg, .png or .pdf
(PNG and PDF need rsvg-convert on PATH).`,
		Example: `  jetplot plot signal.csv -o signal.svg --breathe
  jetplot plot trials.csv --x time --palette dark -o trials.png
  jetplot plot live.csv --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyConfig(cmd.Flags(), cfg, &opts)
			if opts.output == "" {
				opts.output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
			}
			if err := opts.validate(); err != nil {
				return err
			}

			p := &plotter{
				input: args[0],
				opts:  opts,
				cache: newCache(cfg, opts.noCache),
				keyer: newKeyer(),
				ttl:   cfg.Cache.TTL.Duration,
			}
			defer p.cache.Close()

			if err := p.run(cmd.Context()); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}

			printInfo("Watching %s (ctrl+c to stop)", args[0])
			return watchFile(cmd.Context(), args[0], watchDebounce, func() {
				if err := p.run(cmd.Context()); err != nil {
					printError("%s", errors.UserMessage(err))
				}
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: FILE with .svg extension)")
	f.StringVar(&opts.x, "x", "", "column to use as x values, by name or 0-based index")
	f.BoolVar(&opts.scatter, "scatter", false, "draw markers instead of lines")
	f.StringVar(&opts.title, "title", "", "plot title")
	f.StringVar(&opts.xlabel, "xlabel", "", "x axis label (default: the --x column name)")
	f.StringVar(&opts.ylabel, "ylabel", "", "y axis label")
	f.Float64Var(&opts.width, "width", 0, "figure width in pixels")
	f.Float64Var(&opts.height, "height", 0, "figure height in pixels")
	f.Float64Var(&opts.fontSize, "font-size", 0, "tick label font size")
	f.StringVar(&opts.color, "color", "", "tick and label color")
	f.StringVar(&opts.tickDir, "tick-dir", "", "tick direction: in, out, inout")
	f.StringVar(&opts.palette, "palette", "", "series colors: rainbow, bright, dark or a hue name")
	f.BoolVar(&opts.breathe, "breathe", false, "offset the spines from the data")
	f.BoolVar(&opts.noSpines, "no-spines", false, "hide the top and right spines")
	f.BoolVar(&opts.noTicks, "no-ticks", false, "remove all ticks")
	f.BoolVar(&opts.watch, "watch", false, "re-render whenever FILE changes")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	_ = cmd.RegisterFlagCompletionFunc("palette", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return colors.Groups(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("tick-dir", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(chart.TickOut), string(chart.TickIn), string(chart.TickInOut)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// applyConfig fills every styling option not given on the command line from
// cfg.
func applyConfig(flags *pflag.FlagSet, cfg *config.Config, opts *plotOpts) {
	set := func(name string, apply func()) {
		if !flags.Changed(name) {
			apply()
		}
	}
	set("width", func() { opts.width = cfg.Figure.Width })
	set("height", func() { opts.height = cfg.Figure.Height })
	set("font-size", func() { opts.fontSize = cfg.Style.FontSize })
	set("color", func() { opts.color = cfg.Style.Color })
	set("tick-dir", func() { opts.tickDir = cfg.Style.TickDirection })
	set("palette", func() { opts.palette = cfg.Style.Palette })
	set("breathe", func() { opts.breathe = cfg.Style.Breathe })
	set("no-spines", func() { opts.noSpines = cfg.Style.NoSpines })
}

func (o *plotOpts) validate() error {
	if err := errors.ValidateOutputPath(o.output); err != nil {
		return err
	}
	if _, err := chart.FormatFromPath(o.output); err != nil {
		return err
	}
	if o.width <= 0 || o.height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "figure size must be positive, got %gx%g", o.width, o.height)
	}
	if _, err := chart.ParseTickDirection(o.tickDir); err != nil {
		return err
	}
	if _, ok := colors.Group(o.palette); !ok {
		return errors.New(errors.ErrCodeInvalidInput, "unknown palette %q (want one of %s)", o.palette, strings.Join(colors.Groups(), ", "))
	}
	return errors.ValidateColor(o.color)
}

// artifactKey returns the cache key options for o.
func (o *plotOpts) artifactKey(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Width:    o.width,
		Height:   o.height,
		Palette:  o.palette,
		Color:    o.color,
		FontSize: o.fontSize,
		TickDir:  o.tickDir,
		Breathe:  o.breathe,
		NoSpines: o.noSpines,
		NoTicks:  o.noTicks,
		Title:    o.title,
		XLabel:   o.xlabel,
		YLabel:   o.ylabel,
		XColumn:  o.x,
		Scatter:  o.scatter,
	}
}

// =============================================================================
// Plotter
// =============================================================================

// plotter renders one input file, consulting the artifact cache.
type plotter struct {
	input string
	opts  plotOpts
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
}

// run renders the input once and writes the output file.
func (p *plotter) run(ctx context.Context) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	raw, err := os.ReadFile(p.input)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", p.input)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", p.input, err)
	}
	dataFormat, err := dataio.FormatFromPath(p.input)
	if err != nil {
		return err
	}
	format, err := chart.FormatFromPath(p.opts.output)
	if err != nil {
		return err
	}

	key := p.keyer.ArtifactKey(cache.Hash(raw), p.opts.artifactKey(format))
	if data, hit, err := p.cache.Get(ctx, key); err != nil {
		logger.Warn("cache read failed", "err", err)
	} else if hit {
		observability.Cache().OnCacheHit(ctx, key)
		if err := writeOutput(p.opts.output, data); err != nil {
			return err
		}
		prog.done("Rendered " + p.opts.output)
		printPlotStats(0, 0, true)
		printFile(p.opts.output)
		return nil
	} else {
		observability.Cache().OnCacheMiss(ctx, key)
	}

	t, err := dataio.Decode(bytes.NewReader(raw), dataFormat)
	if err != nil {
		observability.Render().OnLoad(ctx, p.input, 0, 0, err)
		return fmt.Errorf("%s: %w", p.input, err)
	}
	rows, cols := t.Dims()
	observability.Render().OnLoad(ctx, p.input, rows, cols, nil)

	fig, err := buildFigure(ctx, t, &p.opts)
	if err != nil {
		return err
	}
	start := time.Now()
	observability.Render().OnRenderStart(ctx, format)
	data, err := chart.Encode(fig, format)
	observability.Render().OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return err
	}
	if err := writeOutput(p.opts.output, data); err != nil {
		return err
	}
	if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
		logger.Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}

	prog.done("Rendered " + p.opts.output)
	series, points := figureStats(fig)
	printPlotStats(series, points, false)
	printFile(p.opts.output)
	return nil
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func figureStats(fig *chart.Figure) (series, points int) {
	for _, ax := range fig.Axes() {
		for _, l := range ax.Lines() {
			series++
			points += len(l.Y)
		}
	}
	return series, points
}

// buildFigure draws every non-x column of t on a fresh figure and applies
// the requested styling.
func buildFigure(ctx context.Context, t *dataio.Table, opts *plotOpts) (*chart.Figure, error) {
	logger := loggerFromContext(ctx)

	xcol, err := columnIndex(t, opts.x)
	if err != nil {
		return nil, err
	}
	palette, _ := colors.Group(opts.palette)
	dir, err := chart.ParseTickDirection(opts.tickDir)
	if err != nil {
		return nil, err
	}

	canvas := chart.NewCanvas(chart.WithSize(opts.width, opts.height))
	canvas.OnDraw(func(f *chart.Figure) error {
		logger.Debug("draw", "axes", len(f.Axes()))
		return nil
	})

	draw := chart.PlotWrapper(func(tg chart.Target) error {
		var x []float64
		if xcol >= 0 {
			x = t.Column(xcol)
			tg.Ax.SetXLabel(t.ColumnName(xcol))
		}
		add := tg.Ax.Plot
		if opts.scatter {
			add = tg.Ax.Scatter
		}

		_, cols := t.Dims()
		n := 0
		for j := 0; j < cols; j++ {
			if j == xcol {
				continue
			}
			if _, err := add(x, t.Column(j),
				chart.LineColor(palette[n%len(palette)]),
				chart.LineLabel(t.ColumnName(j)),
			); err != nil {
				return fmt.Errorf("column %s: %w", t.ColumnName(j), err)
			}
			n++
		}
		if n == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "no columns to plot besides the x column")
		}

		tg.Ax.Title = opts.title
		if opts.xlabel != "" {
			tg.Ax.SetXLabel(opts.xlabel)
		}
		tg.Ax.SetYLabel(opts.ylabel)
		return nil
	})

	ax, err := draw(chart.WithCanvas(canvas))
	if err != nil {
		return nil, err
	}

	on := []chart.Option{chart.WithAxes(ax), chart.WithCanvas(canvas)}
	steps := []func() (*chart.Axes, error){
		func() (*chart.Axes, error) { return chart.TickDir(dir, on...) },
	}
	if opts.breathe {
		steps = append(steps, func() (*chart.Axes, error) { return chart.Breathe(chart.DefaultBreatheFactor, dir, on...) })
	} else if opts.noSpines {
		steps = append(steps, func() (*chart.Axes, error) { return chart.NoSpines(on...) })
	}
	if opts.noTicks {
		steps = append(steps, func() (*chart.Axes, error) { return chart.NoTicks(on...) })
	}
	steps = append(steps,
		func() (*chart.Axes, error) { return chart.SetColor(opts.color, on...) },
		func() (*chart.Axes, error) { return chart.SetFontSize(opts.fontSize, on...) },
	)
	for _, step := range steps {
		if _, err := step(); err != nil {
			return nil, err
		}
	}
	return ax.Figure(), nil
}

// columnIndex resolves a column by name or 0-based index. An empty ref
// returns -1.
func columnIndex(t *dataio.Table, ref string) (int, error) {
	if ref == "" {
		return -1, nil
	}
	for j, name := range t.Columns {
		if name == ref {
			return j, nil
		}
	}
	_, cols := t.Dims()
	if j, err := strconv.Atoi(ref); err == nil && j >= 0 && j < cols {
		return j, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "no column %q", ref)
}
