// Package inference derives the per-session facts of the paddy advisor.
//
// Every stage is a pure function of the session, a read-only snapshot of the
// background graph and the facts derived so far in the session scope. It
// returns the statement to apply; the Pipeline applies statements in a fixed
// order and only runs a stage after the previous statement is stored.
package inference

import (
	"paddy-kbs-be/internal/entity"
)

// Input is what a stage may read.
type Input struct {
	Session *entity.Session
	Graph   *entity.Graph
	Derived *View
}

// Disease returns the session's disease, nil when the graph lacks it.
func (in Input) Disease() *entity.Disease {
	return in.Graph.Diseases[in.Session.DiseaseId]
}

// Location returns the session's location, nil when the graph lacks it.
func (in Input) Location() *entity.Location {
	return in.Graph.Locations[in.Session.LocationId]
}

func (in Input) assert(subject, predicate, object string) entity.Fact {
	return entity.Literal(in.Session.Id, subject, predicate, object)
}

// Stage is one step of the pipeline.
type Stage struct {
	Name string
	Eval func(Input) entity.Statement
}

const (
	StageReset              = "reset"
	StageBudgetTier         = "budget-tier"
	StageAffordability      = "affordability"
	StageControlMethod      = "control-method"
	StageSuitability        = "suitability"
	StagePrimarySource      = "primary-source"
	StageSymptomSpecificity = "symptom-specificity"
)

// DefaultStages is the fixed evaluation order.
func DefaultStages() []Stage {
	return []Stage{
		{Name: StageReset, Eval: Reset},
		{Name: StageBudgetTier, Eval: ClassifyBudget},
		{Name: StageAffordability, Eval: MarkAffordable},
		{Name: StageControlMethod, Eval: MatchControlMethod},
		{Name: StageSuitability, Eval: MatchSuitability},
		{Name: StagePrimarySource, Eval: DeterminePrimarySource},
		{Name: StageSymptomSpecificity, Eval: MatchSymptoms},
	}
}
