// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published after a reservation is
// successfully inserted. It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type ReservationCreatedEvent struct {
    ReservationID uint64 `json:"reservation_id"`
    RoomName      string `json:"room_name"`
    Requester     string `json:"requester"`
    StartTime     string `json:"start_time"`
    EndTime       string `json:"end_time"`
    CreatedAt     string `json:"created_at"`
}
