package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/db"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/rng"
)

const ConfigPath = "config/skirmish.yaml"

// loadoutStream is the derived stream used for random equipment picks.
// Battles use the seed itself or streams 0..3, so loadouts do not depend
// on which battles run.
const loadoutStream = -1

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfgPath := ConfigPath
	if p := os.Getenv("SKIRMISH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	seed := rng.Seed(cfg.Seed)
	slog.Info("skirmish starting",
		"log_level", cfg.LogLevel,
		"scenario", cfg.ScenarioPath,
		"rounds", cfg.Rounds,
		"strategy", cfg.Strategy,
		"seed", seed)

	sc, err := data.LoadScenario(cfg.ScenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	group1, group2, err := sc.Build(rng.New(rng.Derive(seed, loadoutStream)))
	if err != nil {
		return fmt.Errorf("building groups: %w", err)
	}
	for i, g := range [][]*model.Combatant{group1, group2} {
		for _, c := range g {
			slog.Info("combatant", "group", i+1, "stats", c.String())
		}
	}

	opts := []combat.Option{combat.WithRestoreMana(cfg.RestoreManaEachRound)}
	if cfg.ShowLog {
		opts = append(opts, combat.WithObserver(func(e combat.Event) {
			slog.Debug(e.String(), "round", e.Round, "kind", e.Kind)
		}))
	}

	var results []combat.BattleResult
	if cfg.CompareStrategies {
		results, err = combat.CompareStrategies(ctx, group1, group2, cfg.Rounds, seed, opts...)
		if err != nil {
			return fmt.Errorf("comparing strategies: %w", err)
		}
	} else {
		sim := combat.NewSimulator(rng.New(seed), opts...)
		res, err := sim.RunBattle(group1, group2, cfg.Strategy, cfg.Rounds)
		if err != nil {
			return fmt.Errorf("running battle: %w", err)
		}
		results = []combat.BattleResult{res}
	}

	names := [2]string{sc.Groups[0].Name, sc.Groups[1].Name}
	for _, res := range results {
		printSummary(out, names, res)
		slog.Info("battle result",
			"strategy", res.Strategy,
			"group1_wins", res.Group1Wins,
			"group2_wins", res.Group2Wins)
	}

	if !cfg.Database.Enabled {
		return nil
	}
	return archive(ctx, cfg.Database, seed, results, group1, group2)
}

func archive(ctx context.Context, cfg config.DatabaseConfig, seed uint64, results []combat.BattleResult, group1, group2 []*model.Combatant) error {
	if err := db.RunMigrations(ctx, cfg.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	database, err := db.New(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	repo := db.NewBattleRepository(database.Pool())
	g, gctx := errgroup.WithContext(ctx)
	for _, res := range results {
		rec := db.NewBattleRecord(seed, res, group1, group2)
		g.Go(func() error {
			if err := repo.Save(gctx, rec); err != nil {
				return err
			}
			slog.Info("battle archived", "id", rec.ID, "strategy", rec.Strategy)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("archiving results: %w", err)
	}
	return nil
}

func printSummary(w io.Writer, names [2]string, res combat.BattleResult) {
	fmt.Fprintf(w, "Strategy %s, %d rounds\n", res.Strategy, res.Rounds)
	fmt.Fprintf(w, "  %-20s %5d wins  %6.2f%%\n", names[0], res.Group1Wins, res.WinPct1)
	fmt.Fprintf(w, "  %-20s %5d wins  %6.2f%%\n", names[1], res.Group2Wins, res.WinPct2)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
