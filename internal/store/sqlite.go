package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/virus84787/f1-fan-bot/internal/domain"
)

// SQLiteRepo implements Repo using an embedded SQLite database.
type SQLiteRepo struct{ db *sql.DB }

// OpenSQLite opens (or creates) the SQLite database at the given path,
// applies recommended PRAGMAs, runs SQL migrations, and returns a repository.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepo, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Reasonable pooling for SQLite; it's a single-writer engine.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

// applyPragmas configures the SQLite connection for durability and concurrency.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// storageErr wraps a persistence failure into the shared taxonomy.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorage, op, err)
}

// --- Users ---

// EnsureUser registers a chat if it is not known yet. Existing rows keep
// their timezone and language.
func (r *SQLiteRepo) EnsureUser(ctx context.Context, userID, chatID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO users (id, chat_id) VALUES (?, ?)`,
		userID, chatID,
	)
	if err != nil {
		return storageErr("ensure user", err)
	}
	return nil
}

// GetUser returns a user's preferences by chat id, or domain.ErrNotFound.
func (r *SQLiteRepo) GetUser(ctx context.Context, chatID int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, chat_id, timezone, language, created_at
		FROM users
		WHERE chat_id = ?`,
		chatID,
	)

	var (
		u       domain.User
		created int64
	)
	if err := row.Scan(&u.ID, &u.ChatID, &u.Timezone, &u.Language, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("get user", err)
	}
	u.CreatedAt = time.Unix(created, 0).UTC()
	return &u, nil
}

// SetTimezone updates the stored IANA timezone for a chat.
func (r *SQLiteRepo) SetTimezone(ctx context.Context, chatID int64, tz string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET timezone = ? WHERE chat_id = ?`, tz, chatID)
	if err != nil {
		return storageErr("set timezone", err)
	}
	return nil
}

// SetLanguage updates the stored language code for a chat.
func (r *SQLiteRepo) SetLanguage(ctx context.Context, chatID int64, lang string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET language = ? WHERE chat_id = ?`, lang, chatID)
	if err != nil {
		return storageErr("set language", err)
	}
	return nil
}

// --- Reminders ---

// UpsertReminder inserts a reminder for (userID, eventID) or, when one
// already exists, overwrites its remind_before. Last write wins; the
// resulting row id is returned either way.
func (r *SQLiteRepo) UpsertReminder(ctx context.Context, userID, chatID int64, eventID string, remindBefore int) (int64, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (user_id, chat_id, event_id, remind_before)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, event_id) DO UPDATE SET
			remind_before = excluded.remind_before,
			chat_id       = excluded.chat_id`,
		userID, chatID, eventID, remindBefore,
	)
	if err != nil {
		return 0, storageErr("upsert reminder", err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx,
		`SELECT id FROM reminders WHERE user_id = ? AND event_id = ?`,
		userID, eventID,
	).Scan(&id)
	if err != nil {
		return 0, storageErr("upsert reminder", err)
	}
	return id, nil
}

func (r *SQLiteRepo) scanReminders(rows *sql.Rows) ([]domain.Reminder, error) {
	defer rows.Close()
	var res []domain.Reminder
	for rows.Next() {
		var rem domain.Reminder
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.ChatID, &rem.EventID, &rem.RemindBefore); err != nil {
			return nil, storageErr("scan reminder", err)
		}
		res = append(res, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("scan reminders", err)
	}
	return res, nil
}

const reminderCols = `id, user_id, chat_id, event_id, remind_before`

// ListRemindersByEvent returns all reminders registered for one event.
func (r *SQLiteRepo) ListRemindersByEvent(ctx context.Context, eventID string) ([]domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reminderCols+` FROM reminders WHERE event_id = ?`, eventID)
	if err != nil {
		return nil, storageErr("list reminders by event", err)
	}
	return r.scanReminders(rows)
}

// ListRemindersByUser returns all reminders owned by one user.
func (r *SQLiteRepo) ListRemindersByUser(ctx context.Context, userID int64) ([]domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reminderCols+` FROM reminders WHERE user_id = ? ORDER BY event_id`, userID)
	if err != nil {
		return nil, storageErr("list reminders by user", err)
	}
	return r.scanReminders(rows)
}

// ListAllReminders returns the full reminder table, used once per
// scheduler tick.
func (r *SQLiteRepo) ListAllReminders(ctx context.Context) ([]domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+reminderCols+` FROM reminders`)
	if err != nil {
		return nil, storageErr("list all reminders", err)
	}
	return r.scanReminders(rows)
}

// DeleteReminder removes a reminder by id. Deleting an absent row is a
// no-op: the user may have removed it between the scheduler reading and
// delivering it.
func (r *SQLiteRepo) DeleteReminder(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id); err != nil {
		return storageErr("delete reminder", err)
	}
	return nil
}

// DeleteReminderByUser removes a reminder only when it belongs to
// userID, so one user cannot delete another's reminders by guessing ids.
func (r *SQLiteRepo) DeleteReminderByUser(ctx context.Context, id, userID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM reminders WHERE id = ? AND user_id = ?`, id, userID); err != nil {
		return storageErr("delete reminder by user", err)
	}
	return nil
}
