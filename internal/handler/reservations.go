package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/jackyoon/meeting-room-reservation/internal/parser"
    "github.com/jackyoon/meeting-room-reservation/internal/repository"
)

// ReservationHandler exposes read-only range queries over the
// reservation store for the calendar front-end.  Creation happens
// only through the message endpoint; there is no direct write route.
type ReservationHandler struct {
    ReservationRepo *repository.ReservationRepo
    RoomRepo        *repository.RoomRepo
}

// NewReservationHandler constructs a ReservationHandler and panics
// when a repository is nil.
func NewReservationHandler(resRepo *repository.ReservationRepo, roomRepo *repository.RoomRepo) *ReservationHandler {
    if resRepo == nil || roomRepo == nil {
        panic("nil repository passed to NewReservationHandler")
    }
    return &ReservationHandler{ReservationRepo: resRepo, RoomRepo: roomRepo}
}

// parseRangeBound accepts either a full RFC3339 instant or a bare
// calendar date.  Bare dates resolve to local midnight.
func parseRangeBound(s string) (time.Time, error) {
    if t, err := time.Parse(time.RFC3339, s); err == nil {
        return t, nil
    }
    return time.ParseInLocation("2006-01-02", s, time.Local)
}

// ListReservations handles GET /v1/reservations?room=&from=&to=.  It
// returns every reservation intersecting [from, to), ordered by room
// name then start time; omitting both bounds defaults to the current
// Monday-start week.  An empty list is a valid response.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
    var from, to time.Time
    fromStr, toStr := c.QueryParam("from"), c.QueryParam("to")
    switch {
    case fromStr == "" && toStr == "":
        from, to = parser.WeekWindow(time.Now(), 0)
    case fromStr != "" && toStr != "":
        var err error
        if from, err = parseRangeBound(fromStr); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from"})
        }
        if to, err = parseRangeBound(toStr); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to"})
        }
    default:
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "from and to must be provided together"})
    }
    if !from.Before(to) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "from must be before to"})
    }

    room := c.QueryParam("room")
    if room != "" {
        // Reject unknown rooms up front instead of silently returning
        // an empty list.
        if _, err := h.RoomRepo.GetByName(c.Request().Context(), room); err != nil {
            if err == repository.ErrRoomNotFound {
                return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown room"})
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
    }

    reservations, err := h.ReservationRepo.QueryRange(c.Request().Context(), room, from, to)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "from":         from.Format(time.RFC3339),
        "to":           to.Format(time.RFC3339),
        "reservations": reservations,
    })
}

// ListRooms handles GET /v1/rooms and returns the fixed room set
// ordered by name.
func (h *ReservationHandler) ListRooms(c echo.Context) error {
    rooms, err := h.RoomRepo.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]echo.Map, 0, len(rooms))
    for _, r := range rooms {
        out = append(out, echo.Map{"id": r.ID, "name": r.Name, "label": r.Label})
    }
    return c.JSON(http.StatusOK, echo.Map{"rooms": out})
}
