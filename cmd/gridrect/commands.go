package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/gridrect"
	"github.com/katalvlaran/gridkit/internal/config"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath  string
	conn        int
	visit       string
	minCells    int
	format      string
	inputFormat string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   "gridrect",
		Short: "Bound the connected regions of an occupancy grid",
		Long: `gridrect reads a grid of filled and empty cells and reports one
bounding rectangle per connected region, in raster order of each
region's topmost-leftmost cell.

Grids are read from a file argument or stdin, either as text
('#'/'1' filled, '.'/'0' empty) or as YAML/JSON rows of integers.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	pf.IntVar(&f.conn, "conn", 4, "neighbor connectivity: 4 or 8")
	pf.StringVar(&f.visit, "visit", "auto", "visited-cell storage: auto, dense or sparse")
	pf.IntVar(&f.minCells, "min-cells", 1, "drop regions with fewer cells")
	pf.StringVarP(&f.format, "format", "o", config.FormatText, "output format: text, json or yaml")
	pf.StringVar(&f.inputFormat, "input-format", inputAuto, "input format: auto, text or yaml")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log each region at debug level")

	root.AddCommand(
		newDecomposeCmd(f),
		newComponentsCmd(f),
		newBridgeCmd(f),
	)
	return root
}

// resolve merges defaults, the config file and explicitly set flags, in that order.
func (f *rootFlags) resolve(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return cfg, nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("conn") {
		cfg.Connectivity = f.conn
	}
	if flags.Changed("visit") {
		cfg.Visit = f.visit
	}
	if flags.Changed("min-cells") {
		cfg.MinCells = f.minCells
	}
	if flags.Changed("format") {
		cfg.Format = f.format
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	return cfg, logger, nil
}

// prepare resolves configuration and loads the grid named by args.
func (f *rootFlags) prepare(cmd *cobra.Command, args []string) (*gridrect.Dense, config.Config, []gridrect.Option, error) {
	cfg, logger, err := f.resolve(cmd)
	if err != nil {
		return nil, cfg, nil, err
	}
	g, source, err := loadGrid(cmd.InOrStdin(), args, f.inputFormat)
	if err != nil {
		return nil, cfg, nil, err
	}
	logger.Debug("grid loaded",
		slog.String("source", source),
		slog.Int("width", g.Width()),
		slog.Int("height", g.Height()),
		slog.Int("occupied", g.Count()),
	)
	return g, cfg, cfg.GridOptions(logger), nil
}

func newDecomposeCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decompose [file|-]",
		Short: "Print one bounding rectangle per connected region",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, cfg, opts, err := f.prepare(cmd, args)
			if err != nil {
				return err
			}
			rects, err := gridrect.DecomposeGrid(g, opts...)
			if err != nil {
				return err
			}
			return writeRects(cmd.OutOrStdout(), cfg.Format, rects)
		},
	}
}

func newComponentsCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "components [file|-]",
		Aliases: []string{"regions"},
		Short:   "Print bounds, seed cell and size of each connected region",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, cfg, opts, err := f.prepare(cmd, args)
			if err != nil {
				return err
			}
			regions, err := gridrect.Regions(g, opts...)
			if err != nil {
				return err
			}
			return writeRegions(cmd.OutOrStdout(), cfg.Format, regions)
		},
	}
}

func newBridgeCmd(f *rootFlags) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "bridge [file|-]",
		Short: "Find the fewest empty cells joining two regions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, cfg, opts, err := f.prepare(cmd, args)
			if err != nil {
				return err
			}
			path, cost, err := gridrect.Bridge(g, from, to, opts...)
			if err != nil {
				return err
			}
			return writeBridge(cmd.OutOrStdout(), cfg.Format, path, cost)
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "source region index")
	cmd.Flags().IntVar(&to, "to", 1, "destination region index")
	return cmd
}
