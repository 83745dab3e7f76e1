// Package parser converts free-form reservation texts into structured
// requests.  Parsing is a pure function of (text, reference instant):
// no ambient clock is read, so identical inputs always yield identical
// results.  Recognition is organized as an ordered rule table:
// classification rules first, then date rules layered by specificity,
// then the time-range rule.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackyoon/meeting-room-reservation/internal/model"
)

// ClockPolicy selects how a bare hour range with no 오전/오후/am/pm
// marker is interpreted.  The source texts are ambiguous here, so the
// choice is configuration rather than inference.
type ClockPolicy string

const (
	// Clock24h treats bare hours as 24-hour values ("16~18시" = 16:00-18:00).
	Clock24h ClockPolicy = "24h"
	// ClockAfternoon shifts bare hours 1-11 into the afternoon
	// ("4시~6시" = 16:00-18:00).
	ClockAfternoon ClockPolicy = "afternoon"
)

// roomAlias maps a token that may appear in a text to the canonical
// room name stored in the database.  The table is ordered; on an
// index tie the earlier entry wins.
type roomAlias struct {
	Token     string
	Canonical string
}

// roomAliases covers the fixed room set in both English and Korean.
var roomAliases = []roomAlias{
	{"delhi", "Delhi"},
	{"델리", "Delhi"},
	{"mumbai", "Mumbai"},
	{"뭄바이", "Mumbai"},
	{"chennai", "Chennai"},
	{"첸나이", "Chennai"},
}

var (
	bookingCues = []string{"예약", "reserve", "book"}
	queryCues   = []string{"현황", "조회", "예약 목록"}
	mineCues    = []string{"내 예약", "my reservation"}
)

// dateExplicitPat matches an explicit Korean calendar date such as
// "12월 10일".  The year is taken from the reference instant.
var dateExplicitPat = regexp.MustCompile(`(\d{1,2})\s*월\s*(\d{1,2})\s*일`)

// relativeDays maps relative-day words to an offset from the
// reference date.
var relativeDays = []struct {
	Word   string
	Offset int
}{
	{"오늘", 0},
	{"today", 0},
	{"내일", 1},
	{"tomorrow", 1},
	{"모레", 2},
}

// timeRangePat matches a time range in any of the accepted spellings:
// "오후 2시~4시", "오전 10시~12시", "16:00~18:00", "14:00-16:00",
// "3pm~5pm".  Each side is an optional meridiem marker, an hour, and
// optional minutes in either ":MM" or "시 MM분" form.  A bare end
// hour with no minutes is ":00".
var timeRangePat = regexp.MustCompile(
	`(?i)(오전|오후|am|pm)?\s*(\d{1,2})\s*(?::(\d{2})|시\s*(\d{1,2})\s*분|시)?\s*(오전|오후|am|pm)?\s*[~\-–]\s*(오전|오후|am|pm)?\s*(\d{1,2})\s*(?::(\d{2})|시\s*(\d{1,2})\s*분|시)?\s*(am|pm)?`)

// Parser turns inbound texts into ParsedRequests.  It carries no
// mutable state; the only knob is the bare-hour clock policy.
type Parser struct {
	policy ClockPolicy
}

// New returns a Parser with the given bare-hour policy.  Unknown
// policies fall back to Clock24h.
func New(policy ClockPolicy) *Parser {
	if policy != ClockAfternoon {
		policy = Clock24h
	}
	return &Parser{policy: policy}
}

// Parse classifies text and extracts a structured request, resolving
// every relative date or bare time against now.  Classification rules
// are evaluated in order:
//
//  1. a "my reservations" cue wins outright;
//  2. a booking cue together with a recognized room starts booking
//     extraction;
//  3. a recognized room together with a parseable time range is also
//     a booking, even without a booking keyword ("내일 오전 10시~12시
//     Mumbai");
//  4. a query cue starts query-range extraction; a booking whose
//     interval cannot be extracted falls here too, so "델리 예약 현황"
//     reads as a status question rather than a failed booking;
//  5. anything else, including a booking cue whose room or time
//     cannot be extracted and that carries no query cue, is
//     Unrecognized.  Extraction failures are never papered over with
//     defaults.
func (p *Parser) Parse(text string, now time.Time) model.ParsedRequest {
	trimmed := strings.TrimSpace(text)
	unrecognized := model.ParsedRequest{Kind: model.KindUnrecognized, Text: text}
	if trimmed == "" {
		return unrecognized
	}
	lower := strings.ToLower(trimmed)

	if containsAny(lower, mineCues) {
		return model.ParsedRequest{Kind: model.KindMyReservations, Text: text}
	}

	room := matchRoom(lower)
	hasBookingCue := containsAny(lower, bookingCues)

	if room != "" && (hasBookingCue || hasTimeRange(lower)) {
		if start, end, ok := p.extractInterval(lower, now); ok {
			return model.ParsedRequest{
				Kind:    model.KindBooking,
				Booking: &model.BookingRequest{RoomName: room, Start: start, End: end},
				Text:    text,
			}
		}
		// No booking can be formed; let a query cue reclassify the
		// text below before giving up.
	}

	if containsAny(lower, queryCues) {
		from, to := queryWindow(lower, now)
		return model.ParsedRequest{
			Kind:  model.KindQuery,
			Query: &model.QueryRequest{From: from, To: to},
			Text:  text,
		}
	}

	return unrecognized
}

// containsAny reports whether any cue occurs in the lowered text.
func containsAny(lower string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// matchRoom scans the text for a room alias and returns the canonical
// name of the leftmost match, or "" when no room is named.  There is
// no default room: a booking text that names no room is an extraction
// failure handled by the caller.
func matchRoom(lower string) string {
	best := -1
	canonical := ""
	for _, a := range roomAliases {
		if idx := strings.Index(lower, a.Token); idx >= 0 {
			if best < 0 || idx < best {
				best = idx
				canonical = a.Canonical
			}
		}
	}
	return canonical
}

// hasTimeRange reports whether the text contains something shaped
// like a time range, without resolving it.
func hasTimeRange(lower string) bool {
	return timeRangePat.MatchString(lower)
}

// extractInterval resolves the booking interval from the text:
// a date (explicit calendar date, relative-day word, or the reference
// date when neither is present) combined with a time range.  It
// returns ok=false when no range is present, when a component is out
// of range, or when the resolved end does not come strictly after the
// start; the two are never silently swapped.
func (p *Parser) extractInterval(lower string, now time.Time) (time.Time, time.Time, bool) {
	day, ok := extractDate(lower, now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	m := timeRangePat.FindStringSubmatch(lower)
	if m == nil {
		return time.Time{}, time.Time{}, false
	}
	// Submatches: 1 leading marker, 2 start hour, 3/4 start minutes,
	// 5 marker trailing the start, 6 marker leading the end,
	// 7 end hour, 8/9 end minutes, 10 marker trailing the end.
	startMarker := firstNonEmpty(m[1], m[5])
	endMarker := firstNonEmpty(m[6], m[10])
	startHour, err1 := strconv.Atoi(m[2])
	endHour, err2 := strconv.Atoi(m[7])
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}
	startMin := minutesOf(m[3], m[4])
	endMin := minutesOf(m[8], m[9])
	if startMin < 0 || endMin < 0 {
		return time.Time{}, time.Time{}, false
	}
	// A marker on one side carries over to the other: "오후 4:00~6:00"
	// means 16:00-18:00, not 16:00-06:00.
	if startMarker == "" {
		startMarker = endMarker
	}
	if endMarker == "" {
		endMarker = startMarker
	}
	startHour, ok = p.resolveHour(startHour, startMarker)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	endHour, ok = p.resolveHour(endHour, endMarker)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, now.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMin, 0, 0, now.Location())
	if !start.Before(end) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// extractDate resolves the calendar date of the booking.  Rules in
// order of specificity: explicit "M월 D일" (reference year), then a
// relative-day word, then the reference date itself.
func extractDate(lower string, now time.Time) (time.Time, bool) {
	if m := dateExplicitPat.FindStringSubmatch(lower); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		return time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location()), true
	}
	for _, rd := range relativeDays {
		if strings.Contains(lower, rd.Word) {
			d := now.AddDate(0, 0, rd.Offset)
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location()), true
		}
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
}

// resolveHour applies the meridiem marker, or the configured policy
// when there is none, and validates the result.
//
// 오후/pm adds 12 to hours below 12.  오전/am leaves the hour as
// written, including 12, because "오전 10시~12시" conventionally ends
// at noon, not midnight.
func (p *Parser) resolveHour(h int, marker string) (int, bool) {
	switch strings.ToLower(marker) {
	case "오후", "pm":
		if h < 1 || h > 12 {
			return 0, false
		}
		if h < 12 {
			h += 12
		}
	case "오전", "am":
		if h < 1 || h > 12 {
			return 0, false
		}
	default:
		if p.policy == ClockAfternoon && h >= 1 && h <= 11 {
			h += 12
		}
	}
	if h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

// minutesOf picks the minutes from whichever spelling matched, or 0
// when the hour had no minutes ("4시" means 4:00).  Returns -1 for
// out-of-range values.
func minutesOf(colonForm, siForm string) int {
	s := firstNonEmpty(colonForm, siForm)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 59 {
		return -1
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// queryWindow resolves the date range of a status query: a
// Monday-start seven-day window anchored on the reference instant.
// "다음주" shifts the window one week forward, "지난주" one week back;
// "전체", "이번주" and the absence of any range phrase all mean the
// current week.
func queryWindow(lower string, now time.Time) (time.Time, time.Time) {
	offset := 0
	switch {
	case strings.Contains(lower, "다음주") || strings.Contains(lower, "다음 주"):
		offset = 1
	case strings.Contains(lower, "지난주") || strings.Contains(lower, "지난 주"):
		offset = -1
	}
	return WeekWindow(now, offset)
}

// WeekWindow returns the half-open [monday, monday+7d) window of the
// week containing ref, shifted by offset weeks.  Monday is the first
// day of the week.
func WeekWindow(ref time.Time, offset int) (time.Time, time.Time) {
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	sinceMonday := (int(midnight.Weekday()) + 6) % 7
	monday := midnight.AddDate(0, 0, -sinceMonday+7*offset)
	return monday, monday.AddDate(0, 0, 7)
}
