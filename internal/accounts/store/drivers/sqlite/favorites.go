package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/passport/internal/accounts/store"
)

// AddFavorite relies on the (user_id, country_id) primary key: the insert is
// a no-op when the pair exists, which the affected-row count reports.
func (r *usersRepo) AddFavorite(ctx context.Context, id, countryID string) error {
	return r.s.withTx(ctx, func(tx *sql.Tx) error {
		if err := userExists(ctx, tx, id); err != nil {
			return err
		}

		now := time.Now().UTC()
		res, err := tx.ExecContext(ctx,
			`INSERT INTO user_favorites (user_id, country_id, added_at) VALUES (?, ?, ?)
			 ON CONFLICT (user_id, country_id) DO NOTHING`,
			id, countryID, now,
		)
		if err != nil {
			return err
		}
		if err := requireAffected(res, store.ErrFavoriteExists); err != nil {
			return err
		}
		return touch(ctx, tx, id, now)
	})
}

func (r *usersRepo) RemoveFavorite(ctx context.Context, id, countryID string) error {
	return r.s.withTx(ctx, func(tx *sql.Tx) error {
		if err := userExists(ctx, tx, id); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`DELETE FROM user_favorites WHERE user_id = ? AND country_id = ?`, id, countryID)
		if err != nil {
			return err
		}
		if err := requireAffected(res, store.ErrFavoriteNotFound); err != nil {
			return err
		}
		return touch(ctx, tx, id, time.Now().UTC())
	})
}

func (r *usersRepo) ListFavorites(ctx context.Context, id string) ([]string, error) {
	if err := userExists(ctx, r.s.db, id); err != nil {
		return nil, err
	}
	return listFavorites(ctx, r.s.db, id)
}

func listFavorites(ctx context.Context, q dbtx, id string) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT country_id FROM user_favorites WHERE user_id = ? ORDER BY added_at, rowid`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func touch(ctx context.Context, tx *sql.Tx, id string, at time.Time) error {
	_, err := tx.ExecContext(ctx, `UPDATE users SET updated_at = ? WHERE id = ?`, at, id)
	return err
}
