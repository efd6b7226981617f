package services

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// movesSchema creates the move log table if needed.
const movesSchema = `
	CREATE TABLE IF NOT EXISTS moves (
		id         BIGSERIAL PRIMARY KEY,
		game_id    UUID,
		player     SMALLINT NOT NULL,
		move_row   SMALLINT NOT NULL,
		move_col   SMALLINT NOT NULL,
		flipped    SMALLINT NOT NULL,
		difficulty SMALLINT,
		disc_count SMALLINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// InitPostgres connects to Postgres and makes sure the schema exists.
func InitPostgres(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if _, err = db.Exec(movesSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return db, nil
}
