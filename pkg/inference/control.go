package inference

import (
	"strings"

	"paddy-kbs-be/internal/entity"
)

// MatchControlMethod flags the treatments of every control method of the
// session's disease whose method label equals the user's preference,
// ignoring case. Whitespace is significant and an empty preference matches
// nothing.
func MatchControlMethod(in Input) entity.Statement {
	var stmt entity.Statement
	input := in.Session.ControlMethodInput
	disease := in.Disease()
	if input == "" || disease == nil {
		return stmt
	}

	seen := make(map[string]bool)
	for _, cmId := range disease.ControlMethodIds {
		cm := in.Graph.ControlMethods[cmId]
		if cm == nil || !strings.EqualFold(cm.Method, input) {
			continue
		}
		for _, tId := range cm.TreatmentIds {
			if seen[tId] {
				continue
			}
			seen[tId] = true
			stmt.Assert = append(stmt.Assert, in.assert(tId, entity.PredIsControlMethodSuitable, entity.True))
		}
	}
	return stmt
}

// MatchSuitability marks every treatment that is both affordable and
// control-method suitable in the session scope.
func MatchSuitability(in Input) entity.Statement {
	var stmt entity.Statement
	for _, id := range in.Derived.Subjects(entity.PredIsAffordable, entity.True) {
		if in.Derived.Has(id, entity.PredIsControlMethodSuitable, entity.True) {
			stmt.Assert = append(stmt.Assert, in.assert(id, entity.PredIsSuitable, entity.True))
		}
	}
	return stmt
}
