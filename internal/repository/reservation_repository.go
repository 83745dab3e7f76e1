package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/jackyoon/meeting-room-reservation/internal/model"
)

// ReservationRepo provides conflict-checked creation and range queries
// for reservations.  All timestamp fields are stored as DATETIME and
// handled in a single consistent location (the DSN pins the session to
// UTC); the repository never attempts DST-crossing arithmetic.
//
// The repository exclusively owns the reservations table: no other
// component reads or writes it directly.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// Create validates the request and then, as a single atomic unit,
// checks for an overlapping reservation on the same room and inserts
// the new row.  The check-then-insert sequence is serialized per room
// by locking the room's row with SELECT ... FOR UPDATE inside the
// transaction; two concurrent creates for overlapping intervals on
// one room therefore cannot both succeed.  Locking the parent row
// rather than the overlap candidates also closes the phantom window
// where two inserts each see an empty candidate set.
//
// On success the persisted reservation is returned with its generated
// ID and creation timestamp.  Failure modes:
//   ErrInvalidInterval – start is not strictly before end.
//   ErrRoomNotFound    – roomName does not resolve to a seeded room.
//   *ConflictError     – an existing reservation overlaps [start, end);
//                        the store is left unchanged and the error
//                        carries the full blocking record.
// Any other error is a storage fault; the transaction is rolled back
// and no partial state is applied.
func (r *ReservationRepo) Create(ctx context.Context, roomName, requester string, start, end time.Time) (*model.Reservation, error) {
    if !start.Before(end) {
        return nil, ErrInvalidInterval
    }
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    // Resolve and lock the room row.  The lock is the per-room
    // serialization point for every concurrent create.
    const roomQ = `SELECT id, name FROM rooms WHERE LOWER(name) = LOWER(?) FOR UPDATE`
    var roomID uint64
    var canonical string
    if err := tx.QueryRowContext(ctx, roomQ, roomName).Scan(&roomID, &canonical); err != nil {
        if err == sql.ErrNoRows {
            return nil, ErrRoomNotFound
        }
        return nil, err
    }
    // Probe for a conflicting reservation under half-open semantics:
    // (new.start < existing.end) AND (new.end > existing.start).
    const overlapQ = `SELECT r.id, r.room_id, r.requester, r.start_time, r.end_time, r.created_at
                      FROM reservations r
                      WHERE r.room_id = ? AND r.start_time < ? AND r.end_time > ?
                      ORDER BY r.start_time
                      LIMIT 1`
    var blocking model.Reservation
    err = tx.QueryRowContext(ctx, overlapQ, roomID, end, start).Scan(
        &blocking.ID, &blocking.RoomID, &blocking.Requester,
        &blocking.Start, &blocking.End, &blocking.CreatedAt,
    )
    switch {
    case err == nil:
        blocking.RoomName = canonical
        return nil, &ConflictError{Blocking: &blocking}
    case err != sql.ErrNoRows:
        return nil, err
    }
    const insQ = `INSERT INTO reservations (room_id, requester, start_time, end_time) VALUES (?, ?, ?, ?)`
    result, err := tx.ExecContext(ctx, insQ, roomID, requester, start, end)
    if err != nil {
        return nil, err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return nil, err
    }
    // Query back the full row to populate the creation timestamp.
    const selQ = `SELECT id, room_id, requester, start_time, end_time, created_at FROM reservations WHERE id = ?`
    var res model.Reservation
    if err := tx.QueryRowContext(ctx, selQ, uint64(id)).Scan(
        &res.ID, &res.RoomID, &res.Requester, &res.Start, &res.End, &res.CreatedAt,
    ); err != nil {
        return nil, err
    }
    if err := tx.Commit(); err != nil {
        return nil, err
    }
    committed = true
    res.RoomName = canonical
    return &res, nil
}

// QueryRange returns all reservations whose interval intersects the
// half-open range [from, to), optionally filtered to a single room
// when roomName is non-empty.  Results are ordered by room name then
// start time ascending.  An empty slice is a valid result and means
// "no reservations", not an error.
func (r *ReservationRepo) QueryRange(ctx context.Context, roomName string, from, to time.Time) ([]model.Reservation, error) {
    q := `SELECT r.id, r.room_id, rm.name, r.requester, r.start_time, r.end_time, r.created_at
          FROM reservations r
          JOIN rooms rm ON rm.id = r.room_id
          WHERE r.start_time < ? AND r.end_time > ?`
    args := []interface{}{to, from}
    if roomName != "" {
        q += ` AND LOWER(rm.name) = LOWER(?)`
        args = append(args, roomName)
    }
    q += ` ORDER BY rm.name, r.start_time`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Reservation, 0)
    for rows.Next() {
        var res model.Reservation
        if err := rows.Scan(
            &res.ID, &res.RoomID, &res.RoomName, &res.Requester,
            &res.Start, &res.End, &res.CreatedAt,
        ); err != nil {
            return nil, err
        }
        out = append(out, res)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// ListUpcomingByRequester returns the requester's reservations that
// have not yet ended as of the given instant, ordered by start time
// ascending.  It backs the "my reservations" query.
func (r *ReservationRepo) ListUpcomingByRequester(ctx context.Context, requester string, now time.Time) ([]model.Reservation, error) {
    const q = `SELECT r.id, r.room_id, rm.name, r.requester, r.start_time, r.end_time, r.created_at
               FROM reservations r
               JOIN rooms rm ON rm.id = r.room_id
               WHERE r.requester = ? AND r.end_time > ?
               ORDER BY r.start_time`
    rows, err := r.db.QueryContext(ctx, q, requester, now)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Reservation, 0)
    for rows.Next() {
        var res model.Reservation
        if err := rows.Scan(
            &res.ID, &res.RoomID, &res.RoomName, &res.Requester,
            &res.Start, &res.End, &res.CreatedAt,
        ); err != nil {
            return nil, err
        }
        out = append(out, res)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}
