// Command recipes replays the combinator recipes.
//
//	recipes list
//	recipes run tap once --parallel 2
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/charmingruby/recipes/internal/config"
	"github.com/charmingruby/recipes/internal/recipe"
	"github.com/charmingruby/recipes/internal/runner"
)

type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func (a *app) sync() {
	_ = a.logger.Sync()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. The logger is
// flushed whether or not the command succeeded.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{logger: zap.NewNop()}
	defer a.sync()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Debug("command failed", zap.Error(err))
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "recipes",
		Short:        "Replay the function combinator recipes",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "recipes.yaml", "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newListCmd(), newRunCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Log, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func newLogger(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Format == config.FormatConsole {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := cfg.ParsedLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, r := range recipe.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Name, r.Title); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	var (
		parallel int
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "run [recipe...]",
		Short: "Run recipes and print what they produce",
		Long: `Runs the named recipes, or the config's run.recipes, or every recipe
when neither names any. Output is printed in the order the recipes were named.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = a.cfg.Run.Recipes
			}
			selected, err := recipe.Select(names)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("parallel") {
				a.cfg.Run.Parallel = parallel
			}
			if cmd.Flags().Changed("timeout") {
				a.cfg.Run.Timeout = timeout
			}
			a.logger.Debug("running recipes",
				zap.Strings("recipes", recipeNames(selected)),
				zap.Int("parallel", a.cfg.Run.Parallel),
				zap.Duration("timeout", a.cfg.Run.Timeout),
			)
			r := runner.New(a.logger, a.cfg.Run.Parallel, a.cfg.Run.Timeout)
			return r.Run(cmd.Context(), selected, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "maximum recipes running at once (overrides config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-recipe timeout (overrides config)")
	return cmd
}

func recipeNames(rs []recipe.Recipe) []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}
