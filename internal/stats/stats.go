// Package stats contains result calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/speedtype/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Category is the qualitative speed label shown with a result.
type Category int

const (
	Beginner Category = iota
	Improving
	Fast
	Master
)

// CategoryFor buckets a completed-word count. The thresholds apply to the raw
// count regardless of the test duration, so a 120s run needs no more words
// than a 30s run for the same label.
func CategoryFor(correctWords int) Category {
	switch {
	case correctWords < 20:
		return Beginner
	case correctWords < 40:
		return Improving
	case correctWords < 60:
		return Fast
	default:
		return Master
	}
}

func (c Category) String() string {
	switch c {
	case Beginner:
		return "beginner"
	case Improving:
		return "improving"
	case Fast:
		return "fast"
	case Master:
		return "master"
	default:
		return "unknown"
	}
}

// Message returns the encouragement shown in the result view.
func (c Category) Message() string {
	switch c {
	case Improving:
		return "Good job, you're getting better!"
	case Fast:
		return "You're quite fast, keep up the good work!"
	case Master:
		return "Master level typing! Incredible speed!"
	default:
		return "You're a beginner, keep practicing!"
	}
}

// WordsPerMinute normalizes a completed-word count to a one-minute rate.
func WordsPerMinute(correctWords, durationSeconds int) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	return float64(correctWords) * 60.0 / float64(durationSeconds)
}

// PaceDeltas converts cumulative per-second samples into words per second.
func PaceDeltas(pace []int) []float64 {
	out := make([]float64, len(pace))
	prev := 0
	for i, v := range pace {
		out[i] = float64(v - prev)
		prev = v
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Result is the outcome of a finished run.
type Result struct {
	Words    int
	Duration model.Duration
	Category Category
	Pace     []int
}

// NewResult derives the result from a snapshot. It does not check the phase.
func NewResult(snap model.Snapshot) Result {
	return Result{
		Words:    snap.CorrectWordCount,
		Duration: snap.Duration,
		Category: CategoryFor(snap.CorrectWordCount),
		Pace:     append([]int(nil), snap.Pace...),
	}
}

// WordsPerMinute returns the normalized rate for the run.
func (r Result) WordsPerMinute() float64 {
	return WordsPerMinute(r.Words, int(r.Duration))
}

// Summary is the text shown once a run has finished.
func (r Result) Summary() string {
	return fmt.Sprintf("You typed %d words in %d seconds. %s", r.Words, r.Duration, r.Category.Message())
}

// Summary is shorthand for NewResult(snap).Summary().
func Summary(snap model.Snapshot) string {
	return NewResult(snap).Summary()
}

// RenderResult prints a plain-text result table for a finished run.
func RenderResult(w io.Writer, snap model.Snapshot) error {
	if snap.Phase != model.PhaseFinished {
		_, err := fmt.Fprintln(w, "No finished test.")
		return err
	}
	return WriteResult(w, NewResult(snap))
}

// WriteResult prints r as a plain-text table.
func WriteResult(w io.Writer, r Result) error {
	if _, err := fmt.Fprintln(w, "Result"); err != nil {
		return err
	}
	rows := [][]string{
		{"Words", fmt.Sprintf("%d", r.Words)},
		{"Duration", fmt.Sprintf("%ds", r.Duration)},
		{"Rate", fmt.Sprintf("%.1f WPM", r.WordsPerMinute())},
		{"Level", r.Category.String()},
	}
	if len(r.Pace) > 0 {
		rows = append(rows, []string{"Pace", Sparkline(PaceDeltas(r.Pace))})
	}
	for _, line := range formatTable(nil, rows, map[int]bool{}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, r.Category.Message())
	return err
}
