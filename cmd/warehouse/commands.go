package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/warehouse/config"
	"github.com/katalvlaran/warehouse/grid"
	"github.com/katalvlaran/warehouse/search"
	"github.com/katalvlaran/warehouse/validate"
)

// errNoPath is returned by solve when the strategy finds no route.
var errNoPath = errors.New("no path to target")

// flags shared by every subcommand
type rootFlags struct {
	configPath string
	envFile    string
	logLevel   string
	turns      int
}

// flags of the solve subcommand
type solveFlags struct {
	strategy       string
	recursive      bool
	shuffle        bool
	seed           int64
	recursionLimit int
	printPath      bool
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	root := &cobra.Command{
		Use:   "warehouse",
		Short: "Route a robot through a warehouse grid",
		Long:  `warehouse reads a grid where '@' is the robot, '+' a target and '#' a wall, searches for a route and replays it through the validator.`,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&rf.configPath, "config", "c", "", "YAML run configuration")
	pf.StringVar(&rf.envFile, "env-file", ".env", "dotenv file with WAREHOUSE_* overrides")
	pf.StringVar(&rf.logLevel, "log-level", "", "log level (overrides config)")
	pf.IntVar(&rf.turns, "turns", 0, "turn budget for the validator (0 = width*height)")

	root.AddCommand(newSolveCmd(&rf), newCompareCmd(&rf))

	return root
}

func newSolveCmd(rf *rootFlags) *cobra.Command {
	var sf solveFlags
	cmd := &cobra.Command{
		Use:   "solve [grid-file]",
		Short: "Search a route with one strategy and validate it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, rf)
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("strategy") {
				cfg.Strategy = sf.strategy
			}
			if fs.Changed("recursive") {
				cfg.DFS.Recursive = sf.recursive
			}
			if fs.Changed("recursion-limit") {
				cfg.DFS.RecursionLimit = sf.recursionLimit
			}
			if fs.Changed("shuffle") {
				cfg.DFS.Shuffle = sf.shuffle
			}
			if fs.Changed("seed") {
				cfg.DFS.Shuffle = true
				cfg.DFS.Seed = sf.seed
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			g, err := readGrid(cmd, args)
			if err != nil {
				return err
			}

			return solve(cmd.OutOrStdout(), logger, cfg, g, sf.printPath)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&sf.strategy, "strategy", "s", "", "bfs | dfs | ucs | astar (overrides config)")
	f.BoolVar(&sf.recursive, "recursive", false, "use the depth-bounded recursive DFS")
	f.BoolVar(&sf.shuffle, "shuffle", false, "shuffle the DFS move order at every expansion")
	f.Int64Var(&sf.seed, "seed", 0, "seed for --shuffle (implies --shuffle)")
	f.IntVar(&sf.recursionLimit, "recursion-limit", search.DefaultRecursionLimit, "recursion budget of the recursive DFS")
	f.BoolVarP(&sf.printPath, "print-path", "p", false, "print the grid with the route drawn in arrows")

	return cmd
}

func newCompareCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [grid-file]",
		Short: "Run every strategy on the same grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, rf)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			logger, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			g, err := readGrid(cmd, args)
			if err != nil {
				return err
			}

			return compare(cmd.OutOrStdout(), logger, cfg, g)
		},
	}
}

// loadConfig builds the effective configuration: defaults, then the YAML
// file, then the environment, then the persistent flags.
func loadConfig(cmd *cobra.Command, rf *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if rf.configPath != "" {
		loaded, err := config.Load(rf.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(rf.envFile); err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = rf.logLevel
	}
	if cmd.Flags().Changed("turns") {
		cfg.TurnBudget = rf.turns
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) (*logrus.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return logger, nil
}

// readGrid parses the named file, or stdin when args is empty.
func readGrid(cmd *cobra.Command, args []string) (*grid.Grid, error) {
	if len(args) == 0 {
		return grid.Read(cmd.InOrStdin())
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := grid.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", args[0], err)
	}

	return g, nil
}

func solve(out io.Writer, logger *logrus.Logger, cfg config.Config, g *grid.Grid, printPath bool) error {
	eng, err := cfg.NewEngine()
	if err != nil {
		return err
	}
	lg := logger.WithField("strategy", eng.Kind())
	lg.WithFields(logrus.Fields{"width": g.Width, "height": g.Height}).Debug("searching")

	res, err := eng.FindMoves(g)
	if err != nil {
		return err
	}
	lg.WithFields(logrus.Fields{
		"found":    res.Found,
		"moves":    len(res.Moves),
		"explored": res.Explored,
	}).Info("search finished")
	if !res.Found {
		return fmt.Errorf("%s: %w from %v to %v", eng.Kind(), errNoPath, g.Start(), g.Target())
	}

	rep, err := validate.Check(g, res.Moves, cfg.ValidatorOptions(lg)...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "strategy: %s\n", eng.Kind())
	fmt.Fprintf(out, "moves:    %d %s\n", len(res.Moves), arrows(res.Moves))
	fmt.Fprintf(out, "cost:     %g\n", rep.Cost)
	fmt.Fprintf(out, "explored: %d\n", res.Explored)
	if printPath {
		fmt.Fprintln(out, strings.Join(rep.Path, "\n"))
	}

	return nil
}

// compare runs every strategy and tabulates the outcome. A strategy that
// fails does not stop the others; the first failure is returned at the end.
func compare(out io.Writer, logger *logrus.Logger, cfg config.Config, g *grid.Grid) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tFOUND\tMOVES\tCOST\tEXPLORED\tVALID")

	var first error
	for _, k := range search.Kinds() {
		lg := logger.WithField("strategy", k)
		eng, err := cfg.NewEngine(k)
		if err != nil {
			return err
		}
		res, err := eng.FindMoves(g)
		if err != nil {
			lg.WithError(err).Warn("search failed")
			first = firstErr(first, err)
			explored := 0
			if res != nil {
				explored = res.Explored
			}
			fmt.Fprintf(tw, "%s\t%t\t-\t-\t%d\t-\n", k, false, explored)
			continue
		}

		valid := "-"
		if res.Found {
			if _, err = validate.Check(g, res.Moves, cfg.ValidatorOptions(lg)...); err != nil {
				first = firstErr(first, err)
				valid = "no"
			} else {
				valid = "yes"
			}
		}
		lg.WithFields(logrus.Fields{
			"cost":     res.Cost,
			"moves":    len(res.Moves),
			"explored": res.Explored,
		}).Info("compared")
		fmt.Fprintf(tw, "%s\t%t\t%d\t%g\t%d\t%s\n", k, res.Found, len(res.Moves), res.Cost, res.Explored, valid)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return first
}

func firstErr(first, err error) error {
	if first != nil {
		return first
	}
	return err
}

func arrows(moves []grid.Move) string {
	var b strings.Builder
	for _, m := range moves {
		b.WriteRune(m.Symbol())
	}

	return b.String()
}
