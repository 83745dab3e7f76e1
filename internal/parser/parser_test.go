package parser

import (
	"reflect"
	"testing"
	"time"

	"github.com/jackyoon/meeting-room-reservation/internal/model"
)

// reference instant used across cases: Friday 2025-12-05 09:00.
var friday = time.Date(2025, time.December, 5, 9, 0, 0, 0, time.UTC)

func dt(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestParseBooking(t *testing.T) {
	p := New(Clock24h)

	tests := []struct {
		name string
		text string
		room string
		start, end time.Time
	}{
		{
			name:  "pm range with colon minutes, room in English",
			text:  "오후 4:00~6:00 Delhi 예약해줘",
			room:  "Delhi",
			start: dt(2025, time.December, 5, 16, 0),
			end:   dt(2025, time.December, 5, 18, 0),
		},
		{
			name:  "relative day with am range, no booking keyword",
			text:  "내일 오전 10시~12시 Mumbai",
			room:  "Mumbai",
			start: dt(2025, time.December, 6, 10, 0),
			end:   dt(2025, time.December, 6, 12, 0),
		},
		{
			name:  "explicit calendar date with pm range, Korean room alias",
			text:  "12월 10일 오후 2시~4시 첸나이 예약",
			room:  "Chennai",
			start: dt(2025, time.December, 10, 14, 0),
			end:   dt(2025, time.December, 10, 16, 0),
		},
		{
			name:  "bare 24-hour range with hyphen",
			text:  "14:00-16:00 델리 예약",
			room:  "Delhi",
			start: dt(2025, time.December, 5, 14, 0),
			end:   dt(2025, time.December, 5, 16, 0),
		},
		{
			name:  "day after tomorrow",
			text:  "모레 오전 9시~11시 delhi 예약",
			room:  "Delhi",
			start: dt(2025, time.December, 7, 9, 0),
			end:   dt(2025, time.December, 7, 11, 0),
		},
		{
			name:  "minutes in Korean spelling",
			text:  "오후 1시 30분~3시 Mumbai 예약",
			room:  "Mumbai",
			start: dt(2025, time.December, 5, 13, 30),
			end:   dt(2025, time.December, 5, 15, 0),
		},
		{
			name:  "english am/pm markers",
			text:  "book Chennai tomorrow 3pm~5pm",
			room:  "Chennai",
			start: dt(2025, time.December, 6, 15, 0),
			end:   dt(2025, time.December, 6, 17, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text, friday)
			if got.Kind != model.KindBooking {
				t.Fatalf("Parse(%q) kind = %v, want booking", tt.text, got.Kind)
			}
			b := got.Booking
			if b.RoomName != tt.room {
				t.Errorf("room = %q, want %q", b.RoomName, tt.room)
			}
			if !b.Start.Equal(tt.start) || !b.End.Equal(tt.end) {
				t.Errorf("interval = %v-%v, want %v-%v", b.Start, b.End, tt.start, tt.end)
			}
		})
	}
}

func TestParseBookingFailures(t *testing.T) {
	p := New(Clock24h)

	tests := []struct {
		name string
		text string
	}{
		{"end not after start is never swapped", "오후 5시~3시 Delhi 예약"},
		{"equal start and end", "오후 3시~3시 Delhi 예약"},
		{"booking cue and room but no time", "Delhi 예약해줘"},
		{"booking cue and time but no room", "내일 오전 10시~12시 예약해줘"},
		{"invalid minute", "16:75~18:00 Delhi 예약"},
		{"no cues at all", "점심 뭐 먹을까"},
		{"empty text", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text, friday)
			if got.Kind != model.KindUnrecognized {
				t.Errorf("Parse(%q) kind = %v, want unrecognized", tt.text, got.Kind)
			}
		})
	}
}

func TestParseQuery(t *testing.T) {
	p := New(Clock24h)
	monday := dt(2025, time.December, 1, 0, 0)

	tests := []struct {
		name string
		text string
		from time.Time
		to   time.Time
	}{
		{"full status", "전체 예약 현황", monday, monday.AddDate(0, 0, 7)},
		{"this week", "이번주 예약 현황", monday, monday.AddDate(0, 0, 7)},
		{"next week", "다음주 예약 조회", monday.AddDate(0, 0, 7), monday.AddDate(0, 0, 14)},
		{"last week", "지난주 현황", monday.AddDate(0, 0, -7), monday},
		{"bare query cue defaults to current week", "회의실 현황", monday, monday.AddDate(0, 0, 7)},
		{"list cue", "예약 목록 보여줘", monday, monday.AddDate(0, 0, 7)},
		{"status question naming a room is not a booking", "델리 예약 현황", monday, monday.AddDate(0, 0, 7)},
		{"room with query cue in English", "Delhi 예약 조회", monday, monday.AddDate(0, 0, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text, friday)
			if got.Kind != model.KindQuery {
				t.Fatalf("Parse(%q) kind = %v, want query", tt.text, got.Kind)
			}
			if !got.Query.From.Equal(tt.from) || !got.Query.To.Equal(tt.to) {
				t.Errorf("window = %v-%v, want %v-%v", got.Query.From, got.Query.To, tt.from, tt.to)
			}
		})
	}
}

func TestParseMyReservations(t *testing.T) {
	p := New(Clock24h)
	for _, text := range []string{"내 예약", "내 예약 보여줘", "show my reservations"} {
		got := p.Parse(text, friday)
		if got.Kind != model.KindMyReservations {
			t.Errorf("Parse(%q) kind = %v, want my-reservations", text, got.Kind)
		}
	}
}

// A bare hour range reads as 24-hour by default and shifts into the
// afternoon only under the explicit policy.
func TestClockPolicy(t *testing.T) {
	text := "4시~6시 Delhi 예약"

	got := New(Clock24h).Parse(text, friday)
	if got.Kind != model.KindBooking {
		t.Fatalf("24h: kind = %v, want booking", got.Kind)
	}
	if got.Booking.Start.Hour() != 4 || got.Booking.End.Hour() != 6 {
		t.Errorf("24h: hours = %d-%d, want 4-6", got.Booking.Start.Hour(), got.Booking.End.Hour())
	}

	got = New(ClockAfternoon).Parse(text, friday)
	if got.Kind != model.KindBooking {
		t.Fatalf("afternoon: kind = %v, want booking", got.Kind)
	}
	if got.Booking.Start.Hour() != 16 || got.Booking.End.Hour() != 18 {
		t.Errorf("afternoon: hours = %d-%d, want 16-18", got.Booking.Start.Hour(), got.Booking.End.Hour())
	}

	// An explicit marker wins over the policy on both sides.
	got = New(ClockAfternoon).Parse("오전 9시~11시 Delhi 예약", friday)
	if got.Booking == nil || got.Booking.Start.Hour() != 9 {
		t.Errorf("marker should override afternoon policy")
	}
}

// Parsing must be a pure function of (text, reference instant).
func TestParseDeterministic(t *testing.T) {
	p := New(Clock24h)
	texts := []string{
		"오후 4:00~6:00 Delhi 예약해줘",
		"전체 예약 현황",
		"내일 오전 10시~12시 Mumbai",
		"알 수 없는 문장",
	}
	for _, text := range texts {
		first := p.Parse(text, friday)
		second := p.Parse(text, friday)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Parse(%q) not deterministic: %+v vs %+v", text, first, second)
		}
	}
}

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name   string
		ref    time.Time
		offset int
		monday time.Time
	}{
		{"friday anchors to its monday", friday, 0, dt(2025, time.December, 1, 0, 0)},
		{"monday anchors to itself", dt(2025, time.December, 1, 23, 59), 0, dt(2025, time.December, 1, 0, 0)},
		{"sunday belongs to the preceding monday", dt(2025, time.December, 7, 0, 0), 0, dt(2025, time.December, 1, 0, 0)},
		{"positive offset", friday, 1, dt(2025, time.December, 8, 0, 0)},
		{"negative offset", friday, -1, dt(2025, time.November, 24, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := WeekWindow(tt.ref, tt.offset)
			if !from.Equal(tt.monday) {
				t.Errorf("from = %v, want %v", from, tt.monday)
			}
			if want := tt.monday.AddDate(0, 0, 7); !to.Equal(want) {
				t.Errorf("to = %v, want %v", to, want)
			}
		})
	}
}
