// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// engine and handlers to distinguish between different failure
// scenarios: a caller error (unknown room, non-positive interval) is
// reported immediately and never retried, while a conflict is an
// expected outcome that carries the blocking reservation so callers
// can surface a precise rejection.
package repository

import (
    "errors"
    "fmt"

    "github.com/jackyoon/meeting-room-reservation/internal/model"
)

// ErrRoomNotFound is returned when a room name does not resolve to a
// seeded room. Handlers should translate this into an HTTP 400
// response.
var ErrRoomNotFound = errors.New("room not found")

// ErrInvalidInterval is returned when a reservation request does not
// satisfy start < end. Handlers should translate this into an HTTP
// 400 response.
var ErrInvalidInterval = errors.New("invalid interval: start must be before end")

// ConflictError signals that a create could not proceed because an
// existing reservation on the same room overlaps the requested
// interval. Blocking carries the full conflicting record so the
// caller can present it verbatim. Handlers should translate this
// into an HTTP 409 response.
type ConflictError struct {
    Blocking *model.Reservation
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
    return fmt.Sprintf("room %s already reserved %s-%s by %s",
        e.Blocking.RoomName,
        e.Blocking.Start.Format("2006-01-02 15:04"),
        e.Blocking.End.Format("15:04"),
        e.Blocking.Requester,
    )
}
