package model

import "time"

// Reservation records a booking of one room for a half-open time
// interval [Start, End) by a single requester.  Reservations are
// created only through the conflict-checked insert in the
// repository layer and are never updated in place.
//
// Fields:
//  ID        – primary key identifier.
//  RoomID    – room being reserved.
//  RoomName  – canonical name of the room (joined from rooms).
//  Requester – opaque requester identity supplied by the caller.
//  Start     – start instant (inclusive).
//  End       – end instant (exclusive); always after Start.
//  CreatedAt – creation timestamp, set once at persistence.
type Reservation struct {
    ID        uint64    `json:"id"`         // reservations.id
    RoomID    uint64    `json:"room_id"`    // reservations.room_id
    RoomName  string    `json:"room_name"`  // rooms.name
    Requester string    `json:"requester"`  // reservations.requester
    Start     time.Time `json:"start_time"` // reservations.start_time
    End       time.Time `json:"end_time"`   // reservations.end_time
    CreatedAt time.Time `json:"created_at"` // reservations.created_at
}

// Overlaps reports whether the reservation's interval intersects
// [start, end) under half-open semantics.  Touching endpoints do
// not overlap: a reservation ending at 16:00 does not conflict
// with one starting at 16:00.
func (r *Reservation) Overlaps(start, end time.Time) bool {
    return start.Before(r.End) && end.After(r.Start)
}
