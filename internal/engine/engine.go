// Package engine implements the reservation engine facade: it parses
// an inbound text, dispatches to the reservation store, and shapes the
// outcome for the messaging adapter.  The engine performs no retries
// (a conflict is a terminal outcome for the call) and owns no clock;
// the caller supplies the reference instant for every request.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/jackyoon/meeting-room-reservation/internal/model"
	"github.com/jackyoon/meeting-room-reservation/internal/parser"
	"github.com/jackyoon/meeting-room-reservation/internal/repository"
)

// AsConflict unwraps a repository.ConflictError and returns the
// blocking reservation.  Stores other than the MySQL repository can
// participate by returning the same error type.
func AsConflict(err error) (*model.Reservation, bool) {
	var ce *repository.ConflictError
	if errors.As(err, &ce) {
		return ce.Blocking, true
	}
	return nil, false
}

// Store is the write/read surface of the reservation store consumed
// by the engine.  *repository.ReservationRepo satisfies it.
type Store interface {
	Create(ctx context.Context, roomName, requester string, start, end time.Time) (*model.Reservation, error)
	QueryRange(ctx context.Context, roomName string, from, to time.Time) ([]model.Reservation, error)
	ListUpcomingByRequester(ctx context.Context, requester string, now time.Time) ([]model.Reservation, error)
}

// RoomCatalog lists the fixed room set.  *repository.RoomRepo
// satisfies it.  The catalog is consulted on queries so that rooms
// without reservations still appear as empty groups.
type RoomCatalog interface {
	ListAll(ctx context.Context) ([]model.Room, error)
}

// ResultKind tags the outcome of HandleText.
type ResultKind int

const (
	// ResultUnrecognized – the parser could not extract a usable intent.
	ResultUnrecognized ResultKind = iota
	// ResultBooked – the reservation was created.
	ResultBooked
	// ResultRejected – a conflicting reservation blocked the create.
	ResultRejected
	// ResultQuery – a status query over a date range.
	ResultQuery
	// ResultMine – the requester's own upcoming reservations.
	ResultMine
)

// RoomGroup pairs a room with its reservations inside the queried
// window.  An empty Reservations slice means "no reservations" for
// that room and must be rendered as such, not omitted.
type RoomGroup struct {
	Room         model.Room          `json:"room"`
	Reservations []model.Reservation `json:"reservations"`
}

// Result is the engine's answer to one inbound text.  Kind selects
// which fields are meaningful:
//
//	ResultBooked       – Reservation.
//	ResultRejected     – Conflict (the blocking reservation, in full).
//	ResultQuery        – Groups ordered by room name, plus From/To.
//	ResultMine         – Mine ordered by start time.
//	ResultUnrecognized – Text (the original input, for clarification).
type Result struct {
	Kind        ResultKind          `json:"-"`
	Reservation *model.Reservation  `json:"reservation,omitempty"`
	Conflict    *model.Reservation  `json:"conflict,omitempty"`
	Groups      []RoomGroup         `json:"groups,omitempty"`
	Mine        []model.Reservation `json:"mine,omitempty"`
	From        time.Time           `json:"from,omitempty"`
	To          time.Time           `json:"to,omitempty"`
	Text        string              `json:"text,omitempty"`
}

// Engine wires the intent parser to the reservation store.
type Engine struct {
	parser *parser.Parser
	store  Store
	rooms  RoomCatalog
}

// New constructs an Engine.  All dependencies must be non-nil.
func New(p *parser.Parser, store Store, rooms RoomCatalog) *Engine {
	if p == nil || store == nil || rooms == nil {
		panic("nil dependency passed to engine.New")
	}
	return &Engine{parser: p, store: store, rooms: rooms}
}

// HandleText parses text against the caller-supplied reference
// instant and dispatches to the store.  A conflict comes back as a
// ResultRejected, not an error; the returned error is reserved for
// caller errors surfaced by the store (unknown room, non-positive
// interval) and for storage faults, in which case no partial state
// has been applied.
func (e *Engine) HandleText(ctx context.Context, text, requester string, now time.Time) (*Result, error) {
	req := e.parser.Parse(text, now)
	switch req.Kind {
	case model.KindBooking:
		return e.book(ctx, req.Booking, requester)
	case model.KindQuery:
		return e.query(ctx, req.Query)
	case model.KindMyReservations:
		return e.mine(ctx, requester, now)
	default:
		return &Result{Kind: ResultUnrecognized, Text: req.Text}, nil
	}
}

func (e *Engine) book(ctx context.Context, b *model.BookingRequest, requester string) (*Result, error) {
	res, err := e.store.Create(ctx, b.RoomName, requester, b.Start, b.End)
	if err != nil {
		if conflict, ok := AsConflict(err); ok {
			return &Result{Kind: ResultRejected, Conflict: conflict}, nil
		}
		return nil, err
	}
	return &Result{Kind: ResultBooked, Reservation: res}, nil
}

// query loads every reservation intersecting the window and groups
// it per room, keeping rooms with no bookings as empty groups.  The
// room catalog is ordered by name, so groups come out ordered the
// same way; reservations inside each group are already ordered by
// start time by the store.
func (e *Engine) query(ctx context.Context, q *model.QueryRequest) (*Result, error) {
	rooms, err := e.rooms.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := e.store.QueryRange(ctx, "", q.From, q.To)
	if err != nil {
		return nil, err
	}
	byRoom := make(map[string][]model.Reservation, len(rooms))
	for _, res := range reservations {
		byRoom[res.RoomName] = append(byRoom[res.RoomName], res)
	}
	groups := make([]RoomGroup, 0, len(rooms))
	for _, room := range rooms {
		grouped := byRoom[room.Name]
		if grouped == nil {
			grouped = []model.Reservation{}
		}
		groups = append(groups, RoomGroup{Room: room, Reservations: grouped})
	}
	return &Result{Kind: ResultQuery, Groups: groups, From: q.From, To: q.To}, nil
}

func (e *Engine) mine(ctx context.Context, requester string, now time.Time) (*Result, error) {
	list, err := e.store.ListUpcomingByRequester(ctx, requester, now)
	if err != nil {
		return nil, err
	}
	return &Result{Kind: ResultMine, Mine: list}, nil
}
