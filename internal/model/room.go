package model

// Room represents one of the fixed set of bookable meeting rooms.
// The set is seeded at startup and never mutated at runtime.  Name
// is the canonical identifier and is matched case-insensitively;
// Label is the human-readable display name shown to users.
//
// Fields:
//  ID    – primary key identifier.
//  Name  – unique canonical room name (e.g. "Delhi").
//  Label – display label (e.g. "델리 회의실").
type Room struct {
    ID    uint64 // rooms.id
    Name  string // rooms.name
    Label string // rooms.label
}
