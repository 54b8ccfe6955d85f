package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/speedtype/internal/model"
)

func TestCategoryForBoundaries(t *testing.T) {
	cases := []struct {
		count int
		want  Category
	}{
		{0, Beginner},
		{19, Beginner},
		{20, Improving},
		{39, Improving},
		{40, Fast},
		{59, Fast},
		{60, Master},
		{250, Master},
	}
	for _, tc := range cases {
		if got := CategoryFor(tc.count); got != tc.want {
			t.Fatalf("CategoryFor(%d) = %s, want %s", tc.count, got, tc.want)
		}
	}
}

// The same raw count gets the same label for every duration.
func TestCategoryIgnoresDuration(t *testing.T) {
	short := model.Snapshot{Phase: model.PhaseFinished, CorrectWordCount: 25, Duration: model.Duration30}
	long := model.Snapshot{Phase: model.PhaseFinished, CorrectWordCount: 25, Duration: model.Duration120}
	if !strings.Contains(Summary(short), Improving.Message()) || !strings.Contains(Summary(long), Improving.Message()) {
		t.Fatalf("expected both summaries to use the improving message")
	}
	if WordsPerMinute(25, 30) == WordsPerMinute(25, 120) {
		t.Fatalf("expected normalized rates to differ")
	}
}

func TestMessages(t *testing.T) {
	if Beginner.Message() != "You're a beginner, keep practicing!" {
		t.Fatalf("unexpected beginner message")
	}
	if Master.Message() != "Master level typing! Incredible speed!" {
		t.Fatalf("unexpected master message")
	}
}

func TestWordsPerMinute(t *testing.T) {
	if got := WordsPerMinute(30, 30); got != 60 {
		t.Fatalf("expected 60 WPM, got %.2f", got)
	}
	if got := WordsPerMinute(30, 120); got != 15 {
		t.Fatalf("expected 15 WPM, got %.2f", got)
	}
	if got := WordsPerMinute(10, 0); got != 0 {
		t.Fatalf("expected 0 for zero duration, got %.2f", got)
	}
}

func TestPaceDeltas(t *testing.T) {
	got := PaceDeltas([]int{0, 1, 1, 3})
	want := []float64{0, 1, 0, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PaceDeltas = %v, want %v", got, want)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{2, 2, 2}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	if got := Sparkline([]float64{0, 1}); got != " @" {
		t.Fatalf("expected min/max sparkline, got %q", got)
	}
}

func TestSummary(t *testing.T) {
	snap := model.Snapshot{Phase: model.PhaseFinished, CorrectWordCount: 5, Duration: model.Duration30}
	want := "You typed 5 words in 30 seconds. You're a beginner, keep practicing!"
	if got := Summary(snap); got != want {
		t.Fatalf("Summary = %q, want %q", got, want)
	}
}

func TestRenderResult(t *testing.T) {
	snap := model.Snapshot{
		Phase:            model.PhaseFinished,
		CorrectWordCount: 45,
		Duration:         model.Duration60,
		Pace:             []int{1, 2, 4},
	}
	var buf bytes.Buffer
	if err := RenderResult(&buf, snap); err != nil {
		t.Fatalf("render result: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"Words     45", "Duration  60s", "Rate      45.0 WPM", "Level     fast", "Pace", Fast.Message()} {
		if !strings.Contains(out, needle) {
			t.Fatalf("result missing %q:\n%s", needle, out)
		}
	}
}

func TestRenderResultNotFinished(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderResult(&buf, model.Snapshot{Phase: model.PhaseRunning}); err != nil {
		t.Fatalf("render result: %v", err)
	}
	if !strings.Contains(buf.String(), "No finished test.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestNewResult(t *testing.T) {
	snap := model.Snapshot{Phase: model.PhaseFinished, CorrectWordCount: 60, Duration: model.Duration120, Pace: []int{30, 60}}
	res := NewResult(snap)
	if res.Category != Master || res.WordsPerMinute() != 30 {
		t.Fatalf("unexpected result: %+v", res)
	}
	snap.Pace[0] = 99
	if res.Pace[0] != 30 {
		t.Fatalf("expected result to copy pace samples")
	}
	var buf bytes.Buffer
	if err := WriteResult(&buf, res); err != nil {
		t.Fatalf("write result: %v", err)
	}
	if !strings.Contains(buf.String(), "Level     master") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}
