package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually advanced Scheduler. Callbacks run on the goroutine that
// calls Advance.
type Fake struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	entries []*fakeEntry
}

type fakeEntry struct {
	fake *Fake
	at   time.Duration
	seq  int
	f    func()
	done bool
}

// NewFake returns a Fake at time zero.
func NewFake() *Fake {
	return &Fake{}
}

// AfterFunc implements Scheduler.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Stopper {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	e := &fakeEntry{fake: f, at: f.now + d, seq: f.seq, f: fn}
	f.entries = append(f.entries, e)
	return e
}

// Stop implements Stopper.
func (e *fakeEntry) Stop() bool {
	e.fake.mu.Lock()
	defer e.fake.mu.Unlock()
	if e.done {
		return false
	}
	e.done = true
	e.fake.removeLocked(e)
	return true
}

// Advance moves time forward by d, running every callback that falls due in
// deadline order, including ones scheduled by earlier callbacks.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	for {
		e := f.nextDueLocked(target)
		if e == nil {
			break
		}
		f.now = e.at
		e.done = true
		f.removeLocked(e)
		f.mu.Unlock()
		e.f()
		f.mu.Lock()
	}
	f.now = target
	f.mu.Unlock()
}

// Pending returns the number of scheduled callbacks that have not run.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// Elapsed returns the total time advanced so far.
func (f *Fake) Elapsed() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) nextDueLocked(target time.Duration) *fakeEntry {
	if len(f.entries) == 0 {
		return nil
	}
	sort.SliceStable(f.entries, func(i, j int) bool {
		if f.entries[i].at == f.entries[j].at {
			return f.entries[i].seq < f.entries[j].seq
		}
		return f.entries[i].at < f.entries[j].at
	})
	if f.entries[0].at > target {
		return nil
	}
	return f.entries[0]
}

func (f *Fake) removeLocked(e *fakeEntry) {
	for i, cur := range f.entries {
		if cur == e {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return
		}
	}
}
