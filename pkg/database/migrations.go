package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express. These must match the constraints in
// migrations/20260810090000_init.up.sql.
//
// games_chat_id_running keeps at most one non-terminal game per chat; the
// accessor's running-game lookup relies on that single-row guarantee.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS games_chat_id_running
		ON games (chat_id)
		WHERE state <> 'game_finished'`)
	if err != nil {
		return fmt.Errorf("failed to create running-game index: %w", err)
	}

	return nil
}
