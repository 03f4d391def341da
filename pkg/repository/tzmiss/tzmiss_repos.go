//nolint:whitespace // can't make both editor and linter happy
package tzmiss

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/f1board/f1board/pkg/repository"
	"github.com/f1board/f1board/pkg/schedule"
)

var ErrNotFound = errors.New("entry not found")

// Entry is a stored unresolved-timezone diagnostic. Entries are unique per
// (country, location, circuit name, event name).
type Entry struct {
	ID          int       `json:"id"`
	Country     string    `json:"country"`
	Location    string    `json:"location"`
	CircuitName string    `json:"circuitName"`
	EventName   string    `json:"eventName"`
	RaceID      int       `json:"raceId"`
	RoundNumber int       `json:"roundNumber"`
	Candidates  []string  `json:"candidates"`
	SeenCount   int       `json:"seenCount"`
	FirstSeen   time.Time `json:"firstSeen"`
	LastSeen    time.Time `json:"lastSeen"`
}

const selectColumns = `
	id, country, location, circuit_name, event_name, race_id, round_number,
	candidates, seen_count, first_seen, last_seen
`

// Upsert stores u or increments the seen counter of an existing entry.
func Upsert(
	ctx context.Context,
	conn repository.Querier,
	u schedule.Unresolved,
	seen time.Time,
) (*Entry, error) {
	candidates := u.Candidates
	if candidates == nil {
		candidates = []string{}
	}
	row := conn.QueryRow(ctx, `
	insert into tz_unresolved (
		country, location, circuit_name, event_name, race_id, round_number,
		candidates, seen_count, first_seen, last_seen
	) values ($1,$2,$3,$4,$5,$6,$7,1,$8,$8)
	on conflict on constraint tz_unresolved_key do update set
		race_id = excluded.race_id,
		round_number = excluded.round_number,
		candidates = excluded.candidates,
		seen_count = tz_unresolved.seen_count + 1,
		last_seen = greatest(tz_unresolved.last_seen, excluded.last_seen)
	returning `+selectColumns,
		u.Country, u.Location, u.CircuitName, u.EventName, u.RaceID, u.RoundNumber,
		candidates, seen,
	)
	return scanEntry(row)
}

// LoadAll returns all entries, most recently seen first.
func LoadAll(ctx context.Context, conn repository.Querier) ([]*Entry, error) {
	rows, err := conn.Query(ctx, `
	select `+selectColumns+`
	from tz_unresolved order by last_seen desc, id asc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ret := []*Entry{}
	for rows.Next() {
		item, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (*Entry, error) {
	row := conn.QueryRow(ctx, `
	select `+selectColumns+`
	from tz_unresolved where id=$1
	`, id)
	ret, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return ret, err
}

// DeleteByID removes an entry, e.g. after the lookup table was fixed.
func DeleteByID(ctx context.Context, conn repository.Querier, id int) error {
	cmdTag, err := conn.Exec(ctx, "delete from tz_unresolved where id=$1", id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var item Entry
	if err := row.Scan(
		&item.ID,
		&item.Country, &item.Location, &item.CircuitName, &item.EventName,
		&item.RaceID, &item.RoundNumber,
		&item.Candidates,
		&item.SeenCount, &item.FirstSeen, &item.LastSeen,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
