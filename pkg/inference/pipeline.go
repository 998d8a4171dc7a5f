package inference

import (
	"context"
	"fmt"
	"time"

	"paddy-kbs-be/internal/entity"
)

// Applier stores a statement. A returned error means the statement was not
// applied.
type Applier interface {
	Update(ctx context.Context, stmt entity.Statement) error
}

type Result struct {
	SessionId string
	Stages    []entity.StageReport
	Derived   *View
}

type Pipeline struct {
	stages []Stage
	now    func() time.Time
}

type Option func(*Pipeline)

// WithStages replaces the default stage list.
func WithStages(stages ...Stage) Option {
	return func(p *Pipeline) {
		p.stages = stages
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		stages: DefaultStages(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) Stages() []Stage {
	return p.stages
}

// Run evaluates every stage in order for one session. A stage only runs after
// the previous statement was stored. The first failure stops the run and
// earlier writes stay in place. Result is returned on failure too so the
// caller can report the stages that completed.
func (p *Pipeline) Run(ctx context.Context, session *entity.Session, graph *entity.Graph, applier Applier) (*Result, error) {
	res := &Result{
		SessionId: session.Id,
		Derived:   NewView(session.Id),
	}

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("%s: %w", stage.Name, entity.NewError(entity.KindStoreUnavailable, "run cancelled", err))
		}

		started := p.now()
		stmt := stage.Eval(Input{Session: session, Graph: graph, Derived: res.Derived})
		report := entity.StageReport{
			Name:      stage.Name,
			Asserted:  len(stmt.Assert),
			Retracted: len(stmt.Retract),
		}

		if !stmt.IsEmpty() {
			if err := applier.Update(ctx, stmt); err != nil {
				report.Duration = p.now().Sub(started)
				report.FailureMsg = err.Error()
				res.Stages = append(res.Stages, report)
				return res, fmt.Errorf("%s: %w", stage.Name, err)
			}
		}

		res.Derived.Apply(stmt)
		report.Duration = p.now().Sub(started)
		res.Stages = append(res.Stages, report)
	}

	return res, nil
}
