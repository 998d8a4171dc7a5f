package inference

import (
	"github.com/shopspring/decimal"

	"paddy-kbs-be/internal/entity"
)

var (
	mediumCeiling = decimal.New(12, -1) // budget * 1.2
	lowCeiling    = decimal.New(15, -1) // budget * 1.5
)

// Tier classifies cost against budget. Both bounds of every band are
// inclusive on the upper side, so cost == budget*1.2 is Medium and
// cost == budget*1.5 is Low. An empty tier means not affordable.
func Tier(budget, cost decimal.Decimal) string {
	switch {
	case budget.GreaterThanOrEqual(cost):
		return entity.PriorityHigh
	case cost.LessThanOrEqual(budget.Mul(mediumCeiling)):
		return entity.PriorityMedium
	case cost.LessThanOrEqual(budget.Mul(lowCeiling)):
		return entity.PriorityLow
	default:
		return ""
	}
}

// ClassifyBudget assigns a priority to every costed treatment and flags the
// ones beyond budget*1.5 as not affordable. Treatments without a cost get
// nothing.
func ClassifyBudget(in Input) entity.Statement {
	var stmt entity.Statement
	for _, id := range in.Graph.TreatmentIds() {
		t := in.Graph.Treatments[id]
		if !t.Cost.Valid {
			continue
		}
		if tier := Tier(in.Session.Budget, t.Cost.Decimal); tier != "" {
			stmt.Assert = append(stmt.Assert, in.assert(id, entity.PredPriority, tier))
		} else {
			stmt.Assert = append(stmt.Assert, in.assert(id, entity.PredIsAffordable, entity.False))
		}
	}
	return stmt
}

// MarkAffordable flags every treatment that holds a High, Medium or Low
// priority in the session scope.
func MarkAffordable(in Input) entity.Statement {
	var stmt entity.Statement
	for _, tier := range []string{entity.PriorityHigh, entity.PriorityMedium, entity.PriorityLow} {
		for _, id := range in.Derived.Subjects(entity.PredPriority, tier) {
			stmt.Assert = append(stmt.Assert, in.assert(id, entity.PredIsAffordable, entity.True))
		}
	}
	return stmt
}
