package database

import (
	"context"
	"database/sql"
)

// statements executed by EnsureSchema, in order. The overlap invariant
// itself is enforced at write time inside a transaction (see the
// reservation repository); the index keeps the conflict probe cheap.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS rooms (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(64) NOT NULL,
		label VARCHAR(128) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_rooms_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		room_id BIGINT UNSIGNED NOT NULL,
		requester VARCHAR(128) NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_reservations_room_time (room_id, start_time, end_time),
		CONSTRAINT fk_reservations_room FOREIGN KEY (room_id) REFERENCES rooms (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// seedRooms is the fixed bookable room set. Seeding is idempotent via
// INSERT IGNORE against the unique name key; the set is never mutated
// at runtime.
var seedRooms = []struct {
	Name  string
	Label string
}{
	{"Delhi", "델리 회의실"},
	{"Mumbai", "뭄바이 회의실"},
	{"Chennai", "첸나이 회의실"},
}

// EnsureSchema creates the rooms and reservations tables when they do
// not exist and seeds the default room set. It is safe to call on
// every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	const seed = `INSERT IGNORE INTO rooms (name, label) VALUES (?, ?)`
	for _, r := range seedRooms {
		if _, err := db.ExecContext(ctx, seed, r.Name, r.Label); err != nil {
			return err
		}
	}
	return nil
}
