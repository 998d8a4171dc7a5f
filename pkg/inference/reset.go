package inference

import (
	"paddy-kbs-be/internal/entity"
)

// Reset retracts every derived predicate in the session scope. Nothing else
// in the scope is touched, and running it on a clean scope is a no-op.
func Reset(in Input) entity.Statement {
	stmt := entity.Statement{Retract: make([]entity.Pattern, 0, len(entity.DerivedPredicates))}
	for _, pred := range entity.DerivedPredicates {
		stmt.Retract = append(stmt.Retract, entity.Pattern{
			Scope:     in.Session.Id,
			Predicate: pred,
		})
	}
	return stmt
}
