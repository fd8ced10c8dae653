package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/model"
)

var ErrBattleNotFound = errors.New("battle not found")

// BattleRecord is an archived battle summary. Only finished tallies and the
// rosters are stored; round state is never persisted.
type BattleRecord struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	Seed       uint64
	Strategy   string
	Rounds     int
	Group1Wins int
	Group2Wins int
	WinPct1    float64
	WinPct2    float64
	Roster     []RosterEntry // empty in Recent listings
}

// RosterEntry is one combatant of an archived battle.
type RosterEntry struct {
	Side   int
	Slot   int
	Name   string
	Class  string
	Level  int32
	Weapon string
	Armor  string
}

// NewBattleRecord builds a record with a fresh ID from a finished battle.
func NewBattleRecord(seed uint64, res combat.BattleResult, group1, group2 []*model.Combatant) BattleRecord {
	rec := BattleRecord{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		Seed:       seed,
		Strategy:   res.Strategy.String(),
		Rounds:     res.Rounds,
		Group1Wins: res.Group1Wins,
		Group2Wins: res.Group2Wins,
		WinPct1:    res.WinPct1,
		WinPct2:    res.WinPct2,
	}
	for side, g := range [][]*model.Combatant{group1, group2} {
		for slot, c := range g {
			e := RosterEntry{
				Side:  side + 1,
				Slot:  slot,
				Name:  c.Name(),
				Class: c.Class().String(),
				Level: c.Level(),
			}
			if w := c.Weapon(); w != nil {
				e.Weapon = w.Name
			}
			if a := c.Armor(); a != nil {
				e.Armor = a.Name
			}
			rec.Roster = append(rec.Roster, e)
		}
	}
	return rec
}

// BattleRepository provides access to the battle archive tables.
type BattleRepository struct {
	pool *pgxpool.Pool
}

// NewBattleRepository creates a new BattleRepository.
func NewBattleRepository(pool *pgxpool.Pool) *BattleRepository {
	return &BattleRepository{pool: pool}
}

// Save inserts the record and its roster in a single transaction.
func (r *BattleRepository) Save(ctx context.Context, rec BattleRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for battle %s: %w", rec.ID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "battleID", rec.ID, "error", err)
		}
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO battle_results
		   (id, created_at, seed, strategy, rounds, group1_wins, group2_wins, win_pct1, win_pct2)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.CreatedAt, int64(rec.Seed), rec.Strategy, rec.Rounds,
		rec.Group1Wins, rec.Group2Wins, rec.WinPct1, rec.WinPct2)
	if err != nil {
		return fmt.Errorf("insert battle_results %s: %w", rec.ID, err)
	}

	batch := &pgx.Batch{}
	for _, e := range rec.Roster {
		batch.Queue(
			`INSERT INTO battle_combatants (battle_id, side, slot, name, class, level, weapon, armor)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			rec.ID, e.Side, e.Slot, e.Name, e.Class, e.Level, e.Weapon, e.Armor)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert battle_combatants %s: %w", rec.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit battle %s: %w", rec.ID, err)
	}
	return nil
}

// Get loads one record with its roster.
// Returns ErrBattleNotFound if the ID is unknown.
func (r *BattleRepository) Get(ctx context.Context, id uuid.UUID) (BattleRecord, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx,
		`SELECT id, created_at, seed, strategy, rounds, group1_wins, group2_wins, win_pct1, win_pct2
		 FROM battle_results WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return BattleRecord{}, fmt.Errorf("battle %s: %w", id, ErrBattleNotFound)
		}
		return BattleRecord{}, fmt.Errorf("query battle_results %s: %w", id, err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT side, slot, name, class, level, weapon, armor
		 FROM battle_combatants WHERE battle_id = $1 ORDER BY side, slot`, id)
	if err != nil {
		return BattleRecord{}, fmt.Errorf("query battle_combatants %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var e RosterEntry
		if err := rows.Scan(&e.Side, &e.Slot, &e.Name, &e.Class, &e.Level, &e.Weapon, &e.Armor); err != nil {
			return BattleRecord{}, fmt.Errorf("scan battle_combatants %s: %w", id, err)
		}
		rec.Roster = append(rec.Roster, e)
	}
	return rec, rows.Err()
}

// Recent returns up to limit records, newest first, without rosters.
func (r *BattleRepository) Recent(ctx context.Context, limit int) ([]BattleRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, created_at, seed, strategy, rounds, group1_wins, group2_wins, win_pct1, win_pct2
		 FROM battle_results ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query battle_results: %w", err)
	}
	defer rows.Close()

	var result []BattleRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan battle_results: %w", err)
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func scanRecord(row pgx.Row) (BattleRecord, error) {
	var rec BattleRecord
	var seed int64
	err := row.Scan(&rec.ID, &rec.CreatedAt, &seed, &rec.Strategy, &rec.Rounds,
		&rec.Group1Wins, &rec.Group2Wins, &rec.WinPct1, &rec.WinPct2)
	rec.Seed = uint64(seed)
	return rec, err
}
