package reaction

import (
	"fmt"
)

// Mood tags which Handler a ReactionProcessor should get when both exist in one bag.
type Mood int

const (
	Sad Mood = iota + 1
	Happy
)

var Moods = []Mood{Sad, Happy}

func (m Mood) String() string {
	switch m {
	case Sad:
		return "Sad"
	case Happy:
		return "Happy"
	default:
		return fmt.Sprintf("Mood(%d)", int(m))
	}
}

// Word is what a Handler for this Mood ends its reaction with
func (m Mood) Word() string {
	switch m {
	case Sad:
		return "Boo!"
	case Happy:
		return "Yay"
	default:
		return ""
	}
}
