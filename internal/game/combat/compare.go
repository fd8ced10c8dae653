package combat

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/rng"
)

// CompareStrategies runs one battle per focus strategy, concurrently, and
// returns the results in Strategies() order.
//
// Each battle gets its own copy of both groups and its own random stream
// derived from seed, so the result only depends on the inputs. The caller's
// groups are not modified. An observer passed via opts is invoked from
// several goroutines and must be safe for concurrent use.
func CompareStrategies(ctx context.Context, group1, group2 []*model.Combatant, rounds int, seed uint64, opts ...Option) ([]BattleResult, error) {
	if err := ValidateBattle(group1, group2, StrategyLowestHP, rounds); err != nil {
		return nil, fmt.Errorf("validating comparison: %w", err)
	}

	strategies := Strategies()
	results := make([]BattleResult, len(strategies))

	g, ctx := errgroup.WithContext(ctx)
	for i, strategy := range strategies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sim := NewSimulator(rng.New(rng.Derive(seed, i)), opts...)
			res, err := sim.RunBattle(CloneGroup(group1), CloneGroup(group2), strategy, rounds)
			if err != nil {
				return fmt.Errorf("strategy %s: %w", strategy, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
