// Package model defines shared data structures.
package model

// Phase is the stage of a typing session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountingDown
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountingDown:
		return "counting-down"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Duration is a test length in seconds.
type Duration int

const (
	Duration30  Duration = 30
	Duration60  Duration = 60
	Duration120 Duration = 120

	// DefaultDuration is selected on startup and after a reset.
	DefaultDuration = Duration60
)

// Durations lists the selectable test lengths in display order.
var Durations = []Duration{Duration30, Duration60, Duration120}

// ValidDuration reports whether seconds is a selectable test length.
func ValidDuration(seconds int) bool {
	for _, d := range Durations {
		if int(d) == seconds {
			return true
		}
	}
	return false
}

const (
	// WordsPerList is the size of each generated word batch.
	WordsPerList = 12
	// CountdownStart is the first value shown before a run begins.
	CountdownStart = 3
)

// Config defines resolved runtime settings.
type Config struct {
	Duration     Duration
	WordListPath string
	LogFile      string
}

// Snapshot is a read-only copy of session state for rendering.
type Snapshot struct {
	Phase            Phase
	CountdownValue   int
	TimeLeft         int
	Words            []string
	CurrentWordIndex int
	TypedBuffer      string
	CorrectWordCount int
	Duration         Duration
	// Pace holds the correct word count sampled at every run-timer tick.
	Pace []int
}

// CurrentWord returns the word the user is expected to type, or "" if none.
func (s Snapshot) CurrentWord() string {
	if s.CurrentWordIndex < 0 || s.CurrentWordIndex >= len(s.Words) {
		return ""
	}
	return s.Words[s.CurrentWordIndex]
}
