package repository

import (
    "context"
    "database/sql"

    "github.com/jackyoon/meeting-room-reservation/internal/model"
)

// RoomRepo provides read access to the fixed rooms table.  Rooms are
// immutable reference data seeded at startup; this repository exposes
// only lookups.
type RoomRepo struct {
    db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// GetByName resolves a room by its canonical name.  The match is
// case-insensitive so that "delhi" and "Delhi" refer to the same
// room.  It returns ErrRoomNotFound when no room with the given
// name exists.
func (r *RoomRepo) GetByName(ctx context.Context, name string) (*model.Room, error) {
    const q = `SELECT id, name, label FROM rooms WHERE LOWER(name) = LOWER(?)`
    var room model.Room
    err := r.db.QueryRowContext(ctx, q, name).Scan(&room.ID, &room.Name, &room.Label)
    if err == sql.ErrNoRows {
        return nil, ErrRoomNotFound
    }
    if err != nil {
        return nil, err
    }
    return &room, nil
}

// ListAll returns every room ordered by name ascending.  The weekly
// status view iterates this list so that rooms without reservations
// still render as empty groups.
func (r *RoomRepo) ListAll(ctx context.Context) ([]model.Room, error) {
    const q = `SELECT id, name, label FROM rooms ORDER BY name`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    rooms := make([]model.Room, 0, 3)
    for rows.Next() {
        var room model.Room
        if err := rows.Scan(&room.ID, &room.Name, &room.Label); err != nil {
            return nil, err
        }
        rooms = append(rooms, room)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return rooms, nil
}
