package inference

import (
	"paddy-kbs-be/internal/entity"
)

// MatchSymptoms flags a symptom of the session's disease as specific when
// one of its required environments matches the location profile on all
// five fields.
func MatchSymptoms(in Input) entity.Statement {
	var stmt entity.Statement
	disease, location := in.Disease(), in.Location()
	if disease == nil || location == nil {
		return stmt
	}

	for _, symId := range disease.SymptomIds {
		sym := in.Graph.Symptoms[symId]
		if sym == nil {
			continue
		}
		for _, envId := range sym.EnvironmentIds {
			env := in.Graph.Environments[envId]
			if env != nil && env.Matches(location.Profile) {
				stmt.Assert = append(stmt.Assert, in.assert(symId, entity.PredIsSpecific, entity.True))
				break
			}
		}
	}
	return stmt
}
