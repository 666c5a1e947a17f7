// Command valvenet reads a valve report and prints the best reward one
// agent, and two cooperating agents, can release before the deadline.
//
// Usage:
//
//	valvenet -input report.txt [-config run.yaml] [-start AA] [-budget 30]
//	         [-setup-delay 4] [-verify] [-log-level info] [-log-format text]
//
// Flags given on the command line override values from the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valvenet/descent"
	"github.com/katalvlaran/valvenet/dual"
	"github.com/katalvlaran/valvenet/frontier"
	"github.com/katalvlaran/valvenet/internal/config"
	"github.com/katalvlaran/valvenet/internal/logging"
	"github.com/katalvlaran/valvenet/network"
)

// errMismatch is returned when -verify finds the two solvers disagreeing.
var errMismatch = errors.New("valvenet: solvers disagree")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// answer is what run prints.
type answer struct {
	single int64
	pair   int64
	plan   []string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}
	lvl, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log, err := logging.New(stderr, cfg.LogFormat, lvl)
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("valvenet: open report: %w", err)
	}
	defer f.Close()
	nw, err := network.Parse(f)
	if err != nil {
		return fmt.Errorf("valvenet: parse %s: %w", cfg.Input, err)
	}
	start, err := nw.ID(cfg.Start)
	if err != nil {
		return fmt.Errorf("valvenet: start: %w", err)
	}
	log.InfoContext(ctx, "network loaded",
		"nodes", nw.Order(),
		"activatable", nw.Activatable().Len(),
		"start", cfg.Start,
	)

	ans, err := solve(ctx, log, nw, start, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "single: %d\n", ans.single)
	fmt.Fprintf(stdout, "pair:   %d\n", ans.pair)
	if cfg.Verify {
		fmt.Fprintf(stdout, "plan:   %s\n", strings.Join(ans.plan, " "))
	}
	return nil
}

// solve runs the one- and two-agent searches concurrently, plus the
// descent cross-check when cfg.Verify is set.
func solve(ctx context.Context, log *logging.Logger, nw *network.Network, start int, cfg config.Config) (answer, error) {
	var ans answer
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l := log.WithAgents(1)
		began := time.Now()
		tbl, err := frontier.BestPerSet(nw, start, cfg.Budget,
			frontier.WithContext(gctx),
			frontier.WithOnLevel(func(m, live int) { l.LogLevel(gctx, m, live) }),
		)
		if err == nil {
			ans.single = frontier.BestSingle(tbl)
		}
		l.LogSolve(gctx, cfg.Budget, ans.single, time.Since(began), err)
		return err
	})

	g.Go(func() error {
		l := log.WithAgents(2)
		began := time.Now()
		v, err := dual.Solve(nw, start, cfg.Budget, cfg.SetupDelay,
			frontier.WithContext(gctx),
			frontier.WithOnLevel(func(m, live int) { l.LogLevel(gctx, m, live) }),
		)
		ans.pair = v
		l.LogSolve(gctx, max(cfg.Budget-cfg.SetupDelay, 0), v, time.Since(began), err)
		return err
	})

	var plan descent.Plan
	if cfg.Verify {
		g.Go(func() error {
			var err error
			plan, err = descent.Best(nw, start, cfg.Budget)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return answer{}, err
	}
	if cfg.Verify {
		if plan.Reward != ans.single {
			return answer{}, fmt.Errorf("%w: frontier=%d descent=%d", errMismatch, ans.single, plan.Reward)
		}
		for _, v := range plan.Order {
			ans.plan = append(ans.plan, nw.Label(v))
		}
	}
	return ans, nil
}

// loadConfig parses flags, loads the config file they name and applies the
// explicitly set flags on top.
func loadConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("valvenet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		path      = fs.String("config", "", "YAML or TOML config file")
		input     = fs.String("input", "", "valve report file")
		start     = fs.String("start", "", "start label")
		budget    = fs.Int("budget", 0, "time budget in minutes")
		delay     = fs.Int("setup-delay", 0, "minutes deducted before the two-agent search")
		verify    = fs.Bool("verify", false, "cross-check with the exhaustive descent solver")
		logLevel  = fs.String("log-level", "", "debug, info, warn or error")
		logFormat = fs.String("log-format", "", "text or json")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "start":
			cfg.Start = *start
		case "budget":
			cfg.Budget = *budget
		case "setup-delay":
			cfg.SetupDelay = *delay
		case "verify":
			cfg.Verify = *verify
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})
	return cfg, cfg.Validate()
}
