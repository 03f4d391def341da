//nolint:funlen // ok for tests
package tzmiss

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/f1board/f1board/pkg/schedule"
	"github.com/f1board/f1board/testsupport/testdb"
)

var sampleUnresolved = schedule.Unresolved{
	RaceID:      42,
	RoundNumber: 9,
	Country:     "Atlantis",
	Location:    "Lost City",
	CircuitName: "Poseidon Ring",
	Candidates:  []string{"Lost City", "Atlantis", "Poseidon Ring"},
}

var t0 = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

func TestUpsert(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()

	first, err := Upsert(ctx, pool, sampleUnresolved, t0)
	assert.NilError(t, err)
	assert.Equal(t, first.SeenCount, 1)
	assert.Equal(t, first.Country, "Atlantis")
	assert.DeepEqual(t, first.Candidates, sampleUnresolved.Candidates)
	assert.Assert(t, first.FirstSeen.Equal(t0))

	later := sampleUnresolved
	later.RaceID = 43
	second, err := Upsert(ctx, pool, later, t0.Add(time.Hour))
	assert.NilError(t, err)
	assert.Equal(t, second.ID, first.ID)
	assert.Equal(t, second.SeenCount, 2)
	assert.Equal(t, second.RaceID, 43)
	assert.Assert(t, second.FirstSeen.Equal(t0))
	assert.Assert(t, second.LastSeen.Equal(t0.Add(time.Hour)))

	// an older sighting does not move last_seen back
	third, err := Upsert(ctx, pool, sampleUnresolved, t0.Add(-time.Hour))
	assert.NilError(t, err)
	assert.Equal(t, third.SeenCount, 3)
	assert.Assert(t, third.LastSeen.Equal(t0.Add(time.Hour)))
}

func TestUpsertInTx(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()

	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		_, err := Upsert(ctx, tx, schedule.Unresolved{Country: "Nowhere"}, t0)
		return err
	})
	assert.NilError(t, err)

	items, err := LoadAll(ctx, pool)
	assert.NilError(t, err)
	assert.Assert(t, is.Len(items, 1))
	assert.DeepEqual(t, items[0].Candidates, []string{})
}

func TestLoadAll(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()

	items, err := LoadAll(ctx, pool)
	assert.NilError(t, err)
	assert.Assert(t, is.Len(items, 0))

	other := schedule.Unresolved{Country: "Lemuria", Candidates: []string{"Lemuria"}}
	_, err = Upsert(ctx, pool, sampleUnresolved, t0)
	assert.NilError(t, err)
	_, err = Upsert(ctx, pool, other, t0.Add(time.Minute))
	assert.NilError(t, err)

	items, err = LoadAll(ctx, pool)
	assert.NilError(t, err)
	assert.Assert(t, is.Len(items, 2))
	assert.Equal(t, items[0].Country, "Lemuria")
	assert.Equal(t, items[1].Country, "Atlantis")
}

func TestDeleteByID(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()

	item, err := Upsert(ctx, pool, sampleUnresolved, t0)
	assert.NilError(t, err)

	loaded, err := LoadByID(ctx, pool, item.ID)
	assert.NilError(t, err)
	assert.Equal(t, loaded.Location, "Lost City")

	assert.NilError(t, DeleteByID(ctx, pool, item.ID))
	err = DeleteByID(ctx, pool, item.ID)
	assert.Assert(t, errors.Is(err, ErrNotFound))
	_, err = LoadByID(ctx, pool, item.ID)
	assert.Assert(t, errors.Is(err, ErrNotFound))
}
