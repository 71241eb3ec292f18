package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/virus84787/f1-fan-bot/internal/domain"
)

// Race data cache warmed by the periodic refresh job. Handlers read it
// only when the live feed is down.

// ReplaceRaces upserts the season's calendar into the cache.
func (r *SQLiteRepo) ReplaceRaces(ctx context.Context, season int, races []domain.Race) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("replace races", err)
	}
	for _, race := range races {
		_, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO races
				(race_id, name, start_at, locality, country, circuit_id, circuit_name,
				 round, season, fp1_at, fp2_at, fp3_at, sprint_at, quali_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			race.EventID(), race.Name, race.Start.UTC().Unix(),
			race.Locality, race.Country, race.CircuitID, race.CircuitName,
			race.Round, season,
			toNullUnix(race.FP1), toNullUnix(race.FP2), toNullUnix(race.FP3),
			toNullUnix(race.Sprint), toNullUnix(race.Qualifying),
		)
		if err != nil {
			_ = tx.Rollback()
			return storageErr("replace races", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storageErr("replace races", err)
	}
	return nil
}

// ListRaces returns the cached calendar for a season, ordered by round.
func (r *SQLiteRepo) ListRaces(ctx context.Context, season int) ([]domain.Race, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, start_at, locality, country, circuit_id, circuit_name,
		       round, season, fp1_at, fp2_at, fp3_at, sprint_at, quali_at
		FROM races
		WHERE season = ?
		ORDER BY round`,
		season,
	)
	if err != nil {
		return nil, storageErr("list races", err)
	}
	defer rows.Close()

	var res []domain.Race
	for rows.Next() {
		var (
			race                        domain.Race
			startAt                     int64
			fp1, fp2, fp3, sprint, qual sql.NullInt64
		)
		if err := rows.Scan(
			&race.Name, &startAt, &race.Locality, &race.Country,
			&race.CircuitID, &race.CircuitName, &race.Round, &race.Season,
			&fp1, &fp2, &fp3, &sprint, &qual,
		); err != nil {
			return nil, storageErr("list races", err)
		}
		race.Start = time.Unix(startAt, 0).UTC()
		race.FP1 = fromNullUnix(fp1)
		race.FP2 = fromNullUnix(fp2)
		race.FP3 = fromNullUnix(fp3)
		race.Sprint = fromNullUnix(sprint)
		race.Qualifying = fromNullUnix(qual)
		res = append(res, race)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list races", err)
	}
	return res, nil
}

// ReplaceDriverStandings swaps the cached driver table for a season.
func (r *SQLiteRepo) ReplaceDriverStandings(ctx context.Context, season int, standings []domain.DriverStanding) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("replace driver standings", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM driver_standings WHERE season = ?`, season); err != nil {
		_ = tx.Rollback()
		return storageErr("replace driver standings", err)
	}
	for _, s := range standings {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO driver_standings
				(driver_id, position, driver_name, points, wins, team, season)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.DriverID, s.Position, s.FullName(), s.Points, s.Wins, s.Team, season,
		)
		if err != nil {
			_ = tx.Rollback()
			return storageErr("replace driver standings", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storageErr("replace driver standings", err)
	}
	return nil
}

// ListDriverStandings returns the cached driver table for a season,
// ordered by position. The cached full name is split back into given
// and family parts on the first space.
func (r *SQLiteRepo) ListDriverStandings(ctx context.Context, season int) ([]domain.DriverStanding, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT driver_id, position, driver_name, points, wins, team
		FROM driver_standings
		WHERE season = ?
		ORDER BY position`,
		season,
	)
	if err != nil {
		return nil, storageErr("list driver standings", err)
	}
	defer rows.Close()

	var res []domain.DriverStanding
	for rows.Next() {
		var (
			s    domain.DriverStanding
			name string
		)
		if err := rows.Scan(&s.DriverID, &s.Position, &name, &s.Points, &s.Wins, &s.Team); err != nil {
			return nil, storageErr("list driver standings", err)
		}
		s.GivenName, s.FamilyName = splitName(name)
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list driver standings", err)
	}
	return res, nil
}

func splitName(full string) (given, family string) {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i], full[i+1:]
	}
	return "", full
}

// ReplaceConstructorStandings swaps the cached constructor table for a season.
func (r *SQLiteRepo) ReplaceConstructorStandings(ctx context.Context, season int, standings []domain.ConstructorStanding) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("replace constructor standings", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM constructor_standings WHERE season = ?`, season); err != nil {
		_ = tx.Rollback()
		return storageErr("replace constructor standings", err)
	}
	for _, s := range standings {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO constructor_standings
				(constructor_id, position, team_name, points, wins, season)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.ConstructorID, s.Position, s.Name, s.Points, s.Wins, season,
		)
		if err != nil {
			_ = tx.Rollback()
			return storageErr("replace constructor standings", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storageErr("replace constructor standings", err)
	}
	return nil
}

// ListConstructorStandings returns the cached constructor table for a
// season, ordered by position.
func (r *SQLiteRepo) ListConstructorStandings(ctx context.Context, season int) ([]domain.ConstructorStanding, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT constructor_id, position, team_name, points, wins
		FROM constructor_standings
		WHERE season = ?
		ORDER BY position`,
		season,
	)
	if err != nil {
		return nil, storageErr("list constructor standings", err)
	}
	defer rows.Close()

	var res []domain.ConstructorStanding
	for rows.Next() {
		var s domain.ConstructorStanding
		if err := rows.Scan(&s.ConstructorID, &s.Position, &s.Name, &s.Points, &s.Wins); err != nil {
			return nil, storageErr("list constructor standings", err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list constructor standings", err)
	}
	return res, nil
}
