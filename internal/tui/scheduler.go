package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/speedtype/internal/clock"
)

// timerFiredMsg delivers a scheduled callback to Update.
type timerFiredMsg struct {
	id int
}

type pendingTimer struct {
	id    int
	delay time.Duration
}

// Scheduler implements clock.Scheduler on top of tea.Tick so that timer
// callbacks run inside Update, never concurrently with key handling.
type Scheduler struct {
	nextID  int
	queued  []pendingTimer
	waiting map[int]func()
}

// NewScheduler returns an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{waiting: map[int]func(){}}
}

// AfterFunc implements clock.Scheduler. The callback is armed by the next
// command returned from Cmd.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) clock.Stopper {
	s.nextID++
	id := s.nextID
	s.waiting[id] = f
	s.queued = append(s.queued, pendingTimer{id: id, delay: d})
	return scheduledTimer{s: s, id: id}
}

// Cmd turns callbacks scheduled since the last call into tick commands.
func (s *Scheduler) Cmd() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.queued))
	for _, p := range s.queued {
		id := p.id
		cmds = append(cmds, tea.Tick(p.delay, func(time.Time) tea.Msg {
			return timerFiredMsg{id: id}
		}))
	}
	s.queued = s.queued[:0]
	return tea.Batch(cmds...)
}

// Fire runs the callback for id unless it was stopped. It reports whether a
// callback ran.
func (s *Scheduler) Fire(id int) bool {
	f, ok := s.waiting[id]
	if !ok {
		return false
	}
	delete(s.waiting, id)
	f()
	return true
}

// Waiting returns the number of callbacks that have neither run nor stopped.
func (s *Scheduler) Waiting() int {
	return len(s.waiting)
}

type scheduledTimer struct {
	s  *Scheduler
	id int
}

func (t scheduledTimer) Stop() bool {
	if _, ok := t.s.waiting[t.id]; !ok {
		return false
	}
	delete(t.s.waiting, t.id)
	return true
}
