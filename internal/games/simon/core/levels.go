package core

import "fmt"

// Level selects the length of the target sequence.
type Level int

// Level bounds.
const (
	MinLevel Level = 1
	MaxLevel Level = 4
)

// LevelInfo describes a level.
type LevelInfo struct {
	Level Level
	Name  string
	Steps int // Length of the target sequence
}

// Levels is the fixed level table.
var Levels = []LevelInfo{
	{Level: 1, Name: "Novice", Steps: 8},
	{Level: 2, Name: "Apprentice", Steps: 14},
	{Level: 3, Name: "Adept", Steps: 20},
	{Level: 4, Name: "Master", Steps: 31},
}

// LevelCount returns the number of levels.
func LevelCount() int {
	return len(Levels)
}

// String returns a label such as "level 2".
func (l Level) String() string {
	return fmt.Sprintf("level %d", int(l))
}

// Valid reports whether l is in the level table.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Steps returns the sequence length for l.
// Returns *InvalidLevelError if l is outside the table.
func (l Level) Steps() (int, error) {
	info := GetLevel(l)
	if info == nil {
		return 0, &InvalidLevelError{Level: int(l)}
	}
	return info.Steps, nil
}

// GetLevel returns the table entry for l, or nil if l is invalid.
func GetLevel(l Level) *LevelInfo {
	if !l.Valid() {
		return nil
	}
	return &Levels[l-MinLevel]
}
