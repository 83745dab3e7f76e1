package model

import "time"

// RequestKind classifies the purpose extracted from an inbound
// message.  It tags the ParsedRequest union below.
type RequestKind int

const (
    // KindUnrecognized means no usable intent could be extracted.
    KindUnrecognized RequestKind = iota
    // KindBooking means the text asks to reserve a room for an interval.
    KindBooking
    // KindQuery means the text asks for the reservation status of a
    // date range.
    KindQuery
    // KindMyReservations means the text asks for the caller's own
    // upcoming reservations.
    KindMyReservations
)

// ParsedRequest is the transient result of parsing one message.  It
// is a tagged union: Kind selects which of the embedded request
// payloads is meaningful.  ParsedRequests live for a single request
// cycle and are never persisted.
//
// Fields:
//  Kind    – which variant this value carries.
//  Booking – set when Kind == KindBooking.
//  Query   – set when Kind == KindQuery.
//  Text    – the original input text, kept for Unrecognized replies.
type ParsedRequest struct {
    Kind    RequestKind
    Booking *BookingRequest
    Query   *QueryRequest
    Text    string
}

// BookingRequest carries the fields extracted from a booking text:
// the room to reserve and the resolved half-open interval.
type BookingRequest struct {
    RoomName string
    Start    time.Time
    End      time.Time
}

// QueryRequest carries the resolved date range of a status query.
// The range is half-open: reservations intersecting [From, To) are
// reported.
type QueryRequest struct {
    From time.Time
    To   time.Time
}
