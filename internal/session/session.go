// Package session implements the typing test state machine.
package session

import (
	"strings"

	"github.com/verte-zerg/speedtype/internal/model"
	"github.com/verte-zerg/speedtype/internal/stats"
)

// WordSource produces batches of target words.
type WordSource interface {
	Generate(count int) []string
}

// Timer is a cancellable one-second countdown. Starting it cancels any run
// already in progress.
type Timer interface {
	Start(initial int, onTick func(remaining int), onExpire func())
	Cancel()
}

// Session owns the lifecycle of a typing test. All methods must be called
// from a single goroutine, the same one that delivers timer callbacks.
// Calls that are not valid in the current phase are ignored.
type Session struct {
	words     WordSource
	countdown Timer
	run       Timer

	phase          model.Phase
	duration       model.Duration
	countdownValue int
	timeLeft       int
	wordList       []string
	index          int
	typed          string
	correct        int
	pace           []int
}

// New returns an idle session using the default duration.
func New(words WordSource, countdown, run Timer) *Session {
	return &Session{
		words:     words,
		countdown: countdown,
		run:       run,
		phase:     model.PhaseIdle,
		duration:  model.DefaultDuration,
		wordList:  words.Generate(model.WordsPerList),
	}
}

// Phase returns the current phase.
func (s *Session) Phase() model.Phase {
	return s.phase
}

// SetDuration selects the test length. It only applies while idle and only
// for one of the selectable durations; it reports whether it applied.
func (s *Session) SetDuration(seconds int) bool {
	if s.phase != model.PhaseIdle || !model.ValidDuration(seconds) {
		return false
	}
	s.duration = model.Duration(seconds)
	return true
}

// BeginCountdown starts the 3-2-1 countdown from Idle or Finished.
func (s *Session) BeginCountdown() {
	if s.phase != model.PhaseIdle && s.phase != model.PhaseFinished {
		return
	}
	s.run.Cancel()
	s.phase = model.PhaseCountingDown
	s.countdownValue = model.CountdownStart
	s.countdown.Start(model.CountdownStart, func(remaining int) {
		s.countdownValue = remaining
	}, s.startRun)
}

// Restart discards the finished result and counts down to a new run.
func (s *Session) Restart() {
	if s.phase != model.PhaseFinished {
		return
	}
	s.BeginCountdown()
}

// Reset returns a finished session to Idle. The selected duration is not
// kept: it reverts to model.DefaultDuration.
func (s *Session) Reset() {
	if s.phase != model.PhaseFinished {
		return
	}
	s.countdown.Cancel()
	s.run.Cancel()
	s.phase = model.PhaseIdle
	s.correct = 0
	s.index = 0
	s.typed = ""
	s.timeLeft = 0
	s.pace = nil
	s.duration = model.DefaultDuration
}

// HandleInput processes the full contents of the typing area.
func (s *Session) HandleInput(raw string) {
	if s.phase != model.PhaseRunning || s.timeLeft <= 0 || len(s.wordList) == 0 {
		return
	}
	s.typed = raw
	if strings.TrimSpace(raw) != s.wordList[s.index] {
		return
	}
	s.correct++
	s.index++
	s.typed = ""
	if s.index == len(s.wordList) {
		s.wordList = s.words.Generate(model.WordsPerList)
		s.index = 0
	}
}

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() model.Snapshot {
	return model.Snapshot{
		Phase:            s.phase,
		CountdownValue:   s.countdownValue,
		TimeLeft:         s.timeLeft,
		Words:            append([]string(nil), s.wordList...),
		CurrentWordIndex: s.index,
		TypedBuffer:      s.typed,
		CorrectWordCount: s.correct,
		Duration:         s.duration,
		Pace:             append([]int(nil), s.pace...),
	}
}

// SpeedCategory returns the label for the last run. ok is false unless the
// session is Finished.
func (s *Session) SpeedCategory() (stats.Category, bool) {
	if s.phase != model.PhaseFinished {
		return 0, false
	}
	return stats.CategoryFor(s.correct), true
}

// Result returns the outcome of the last run once the session is Finished.
func (s *Session) Result() (stats.Result, bool) {
	if s.phase != model.PhaseFinished {
		return stats.Result{}, false
	}
	return stats.NewResult(s.Snapshot()), true
}

func (s *Session) startRun() {
	s.countdown.Cancel()
	s.phase = model.PhaseRunning
	s.timeLeft = int(s.duration)
	s.correct = 0
	s.index = 0
	s.wordList = s.words.Generate(model.WordsPerList)
	s.typed = ""
	s.pace = s.pace[:0]
	s.run.Start(int(s.duration), s.tick, s.expire)
}

func (s *Session) tick(remaining int) {
	s.timeLeft = remaining
	s.pace = append(s.pace, s.correct)
}

func (s *Session) expire() {
	s.timeLeft = 0
	s.pace = append(s.pace, s.correct)
	s.phase = model.PhaseFinished
}
