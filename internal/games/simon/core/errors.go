package core

import (
	"errors"
	"fmt"
)

// ErrGameInProgress is returned by StartGame while a round is being played.
var ErrGameInProgress = errors.New("core: game already in progress")

// InvalidLevelError reports a level outside the level table.
type InvalidLevelError struct {
	Level int
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("core: invalid level %d (want %d-%d)", e.Level, MinLevel, MaxLevel)
}
