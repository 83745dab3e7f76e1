package handler

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/jackyoon/meeting-room-reservation/internal/engine"
    "github.com/jackyoon/meeting-room-reservation/internal/middleware"
    "github.com/jackyoon/meeting-room-reservation/internal/queue"
    "github.com/jackyoon/meeting-room-reservation/internal/repository"
    queue_publisher "github.com/jackyoon/meeting-room-reservation/internal/service"
)

// MessageHandler exposes the engine's handle-text operation over HTTP.
// The messaging adapter posts each inbound text here together with the
// requester identity (X-Requester header) and receives the engine's
// verdict as JSON.  The handler owns the translation from engine
// results to HTTP status codes; the engine itself knows nothing about
// HTTP.
type MessageHandler struct {
    Engine *engine.Engine
}

// NewMessageHandler constructs a MessageHandler and panics when the
// engine is nil.
func NewMessageHandler(e *engine.Engine) *MessageHandler {
    if e == nil {
        panic("nil engine passed to NewMessageHandler")
    }
    return &MessageHandler{Engine: e}
}

// resultKindNames maps engine result kinds to the stable strings the
// adapter switches on.
var resultKindNames = map[engine.ResultKind]string{
    engine.ResultBooked:       "booked",
    engine.ResultRejected:     "rejected",
    engine.ResultQuery:        "query_result",
    engine.ResultMine:         "my_reservations",
    engine.ResultUnrecognized: "unrecognized",
}

// HandleMessage handles POST /v1/messages.  The body carries the raw
// text and an optional reference instant; when the adapter omits
// reference_now the server clock is used.  Parsing stays a pure
// function of (text, reference_now) either way: the clock is read
// here, at the boundary, never inside the engine.
//
// Status codes: 201 for a booking, 409 for a conflict rejection, 200
// for query results and unrecognized texts, 400 for malformed input,
// 500 for storage faults.
func (h *MessageHandler) HandleMessage(c echo.Context) error {
    var body struct {
        Text         string `json:"text"`
        ReferenceNow string `json:"reference_now"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.Text == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "text is required"})
    }
    now := time.Now()
    if body.ReferenceNow != "" {
        parsed, err := time.Parse(time.RFC3339, body.ReferenceNow)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "reference_now must be RFC3339"})
        }
        now = parsed
    }
    requester := middleware.Requester(c)

    result, err := h.Engine.HandleText(c.Request().Context(), body.Text, requester, now)
    if err != nil {
        if errors.Is(err, repository.ErrRoomNotFound) || errors.Is(err, repository.ErrInvalidInterval) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    status := http.StatusOK
    switch result.Kind {
    case engine.ResultBooked:
        status = http.StatusCreated
        // Fire the domain event after the reservation is committed.  A
        // broker failure is logged inside the publisher and ignored here.
        res := result.Reservation
        _ = queue_publisher.PublishReservationCreated(c.Request().Context(), queue.ReservationCreatedEvent{
            ReservationID: res.ID,
            RoomName:      res.RoomName,
            Requester:     res.Requester,
            StartTime:     res.Start.Format(time.RFC3339),
            EndTime:       res.End.Format(time.RFC3339),
            CreatedAt:     res.CreatedAt.UTC().Format(time.RFC3339),
        })
    case engine.ResultRejected:
        status = http.StatusConflict
    }

    return c.JSON(status, echo.Map{
        "kind":   resultKindNames[result.Kind],
        "result": result,
    })
}
