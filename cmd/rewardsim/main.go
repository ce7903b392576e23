package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/xtding233/survival-rewards/internal/gacha"
	"github.com/xtding233/survival-rewards/internal/game"
	"github.com/xtding233/survival-rewards/internal/reward"
	"github.com/xtding233/survival-rewards/internal/run"
	"github.com/xtding233/survival-rewards/internal/stats"
)

type options struct {
	configDir string
	mode      string
	level     int
	luck      float64
	trials    int
	workers   int
	seed      uint64
	logLevel  string
	demo      bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configDir, "config", "config", "tuning config base directory")
	flag.StringVar(&o.mode, "mode", "solo", "game mode (modes/<mode>.yaml)")
	flag.IntVar(&o.level, "level", 1, "player level")
	flag.Float64Var(&o.luck, "luck", 0, "luck stat")
	flag.IntVar(&o.trials, "trials", 100000, "Monte Carlo trials")
	flag.IntVar(&o.workers, "workers", 4, "parallel workers")
	flag.Uint64Var(&o.seed, "seed", 42, "base RNG seed")
	flag.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.BoolVar(&o.demo, "demo", false, "play a scripted team selection instead of simulating")
	flag.Parse()
	return o
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func main() {
	o := parseFlags()
	logger := newLogger(o.logLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader := game.NewLoader(o.configDir).WithLogger(logger)
	_, params, err := loader.Resolve(o.mode)
	if err != nil {
		logger.Error("load tuning config", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := params.RunConfig()

	if o.demo {
		demo(cfg, o, logger)
		return
	}
	if err := simulate(ctx, cfg, o); err != nil {
		logger.Error("simulation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func simulate(ctx context.Context, cfg run.Config, o options) error {
	sim := gacha.SimParams{Trials: o.trials, Workers: o.workers, Seed: o.seed}

	rs, err := gacha.RunRarityMonteCarlo(ctx, o.luck, sim)
	if err != nil {
		return fmt.Errorf("rarity simulation: %w", err)
	}
	fmt.Printf("rarity at luck %.2f (%d trials)\n", o.luck, rs.Trials)
	for _, r := range gacha.AllRarities() {
		fmt.Printf("  %-10s %6.2f%%\n", r, rs.Share(r)*100)
	}

	for _, c := range reward.Categories() {
		rep, err := reward.Simulate(ctx, c, o.level, o.luck, cfg.Exclusions, sim)
		if err != nil {
			return fmt.Errorf("simulate %s: %w", c, err)
		}
		st := rep.ByCategory[c]
		fmt.Printf("%s at level %d: mean %.3f sd %.3f p50 %.3f p90 %.3f p99 %.3f max %.3f\n",
			c, o.level, st.Mean, st.StdDev, st.P50, st.P90, st.P99, st.Max)
	}
	return nil
}

// logAutomation stands in for the combat loop.
type logAutomation struct{ logger *slog.Logger }

func (a logAutomation) StopAutomation(id string) {
	a.logger.Info("automation stopped", slog.String("member", id))
}

func (a logAutomation) StartAutomation(id string) {
	a.logger.Info("automation started", slog.String("member", id))
}

func demo(cfg run.Config, o options, logger *slog.Logger) {
	gen := reward.NewGenerator(gacha.NewSeededRNG(o.seed), reward.WithLogger(logger))
	team, err := run.NewTeamRun([]string{"alice", "bob"}, cfg,
		run.WithAutomation(logAutomation{logger: logger}),
		run.WithLogger(logger),
	)
	if err != nil {
		logger.Error("start team run", slog.Any("error", err))
		os.Exit(1)
	}

	a := team.EnterSelection("alice")
	b := team.EnterSelection("bob")

	menu := team.Offer(gen, reward.LevelUp)
	printMenu("alice", menu)
	a.Choose(menu[0])

	menu = team.Offer(gen, reward.Chest)
	printMenu("bob", menu)
	b.Choose(menu[len(menu)-1])

	fmt.Printf("paused=%v rewards=%d health=%.2f\n",
		team.Paused(), len(team.Rewards()), team.Ledger().Get(stats.Health))
}

func printMenu(member string, menu []reward.Reward) {
	lines := make([]string, len(menu))
	for i, r := range menu {
		lines[i] = fmt.Sprintf("  %d. %s", i+1, r)
	}
	fmt.Printf("%s chooses from:\n%s\n", member, strings.Join(lines, "\n"))
}
