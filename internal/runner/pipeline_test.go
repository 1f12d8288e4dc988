package runner

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPipeline_Run(t *testing.T) {
	var order []string
	p := NewPipeline(
		Phase{Name: "clean", Run: func(context.Context) error { order = append(order, "clean"); return nil }},
	)
	p.Add("compile", func(context.Context) error { order = append(order, "compile"); return nil })

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.Success {
		t.Error("Success = false, want true")
	}
	if len(order) != 2 || order[0] != "clean" || order[1] != "compile" {
		t.Errorf("order = %v", order)
	}
	if len(result.PhaseResults) != 2 {
		t.Fatalf("len(PhaseResults) = %d, want 2", len(result.PhaseResults))
	}
}

func TestPipeline_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("tsc exited with code 2")
	ran := false
	p := NewPipeline()
	p.Add("clean", func(context.Context) error { return nil })
	p.Add("compile", func(context.Context) error { return boom })
	p.Add("size report", func(context.Context) error { ran = true; return nil })

	result, err := p.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	if ran {
		t.Error("phase after failure ran")
	}
	if result.Success {
		t.Error("Success = true, want false")
	}

	got := result.PhaseResults
	if !got[0].Success || got[1].Success || !got[2].Skipped {
		t.Errorf("PhaseResults = %+v", got)
	}
	if got[1].Error != boom {
		t.Errorf("PhaseResults[1].Error = %v", got[1].Error)
	}
}

func TestPipeline_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	p := NewPipeline(Phase{Name: "compile", Run: func(context.Context) error { ran = true; return nil }})

	_, err := p.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if ran {
		t.Error("phase ran after cancellation")
	}
}

func TestPipeline_Durations(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	p := NewPipeline(Phase{Name: "a", Run: func(context.Context) error { return nil }})
	p.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.PhaseResults[0].Duration != time.Second {
		t.Errorf("phase Duration = %v, want 1s", result.PhaseResults[0].Duration)
	}
	if result.Duration != 3*time.Second {
		t.Errorf("Duration = %v, want 3s", result.Duration)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "<1ms"},
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
