package runner

import (
	"context"
	"fmt"
	"time"
)

// Phase is one named step of a pipeline.
type Phase struct {
	Name string
	Run  func(ctx context.Context) error
}

// PhaseResult contains results for a pipeline phase.
type PhaseResult struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Success   bool
	Skipped   bool
	Error     error
}

// PipelineResult contains the results of a pipeline run.
type PipelineResult struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	PhaseResults []PhaseResult
	Success      bool
}

// Pipeline runs phases in order and stops at the first failure.
// Phases after a failure are recorded as skipped.
type Pipeline struct {
	phases []Phase
	now    func() time.Time
}

// NewPipeline creates a pipeline of the given phases.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{phases: phases, now: time.Now}
}

// Add appends a phase.
func (p *Pipeline) Add(name string, run func(ctx context.Context) error) {
	p.phases = append(p.phases, Phase{Name: name, Run: run})
}

// Run executes the pipeline and returns the failing phase's error, if any.
func (p *Pipeline) Run(ctx context.Context) (*PipelineResult, error) {
	result := &PipelineResult{StartTime: p.now(), Success: true}

	var firstErr error
	for _, phase := range p.phases {
		if firstErr != nil {
			result.PhaseResults = append(result.PhaseResults, PhaseResult{Name: phase.Name, Skipped: true})
			continue
		}

		pr := PhaseResult{Name: phase.Name, StartTime: p.now(), Success: true}
		err := ctx.Err()
		if err == nil {
			err = phase.Run(ctx)
		}
		if err != nil {
			pr.Success = false
			pr.Error = err
			result.Success = false
			firstErr = err
		}
		pr.EndTime = p.now()
		pr.Duration = pr.EndTime.Sub(pr.StartTime)
		result.PhaseResults = append(result.PhaseResults, pr)
	}

	result.EndTime = p.now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	return result, firstErr
}

// FormatDuration renders a duration the way phase summaries show it.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return "<1ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}
