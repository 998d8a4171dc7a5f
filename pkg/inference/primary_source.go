package inference

import (
	"strings"

	"paddy-kbs-be/internal/entity"
)

// SourceRule asserts Label as a primary infection source of Disease when
// the session location's profile satisfies When. A rule with Alternate set
// reads the location's plain property set instead of the _L one.
type SourceRule struct {
	ID        string
	Disease   string
	When      entity.EnvironmentalProfile
	Label     string
	Alternate bool
}

func (r SourceRule) Match(diseaseName string, location *entity.Location) bool {
	if !strings.EqualFold(diseaseName, r.Disease) {
		return false
	}
	if r.Alternate {
		return location.Alternate != nil && location.Alternate.Satisfies(r.When)
	}
	return location.Profile.Satisfies(r.When)
}

// SourceRules is the fixed rule table. Rules are additive: every rule that
// matches contributes its label.
var SourceRules = []SourceRule{
	{
		ID:      "R1",
		Disease: "False Smut",
		When:    entity.EnvironmentalProfile{Humidity: "VeryHigh", TemperatureRange: "Optimal", RainfallPattern: "High"},
		Label:   "Chlamydospores & Sclerotia (soil)",
	},
	{
		ID:      "R2",
		Disease: "Rice Blast",
		When:    entity.EnvironmentalProfile{Humidity: "High", RainfallPattern: "VeryHigh"},
		Label:   "Airborne Spores",
	},
	{
		ID:      "R3",
		Disease: "Rice Blast",
		When:    entity.EnvironmentalProfile{RainfallPattern: "High"},
		Label:   "Infected Seeds",
	},
	{
		ID:      "R4",
		Disease: "Rice Blast",
		When:    entity.EnvironmentalProfile{RainfallPattern: "VeryHigh", SoilMoisture: "High"},
		Label:   "Soil and Water",
	},
	{
		ID:        "R5",
		Disease:   "Rice Blast",
		When:      entity.EnvironmentalProfile{Humidity: "High", RainfallPattern: "VeryHigh"},
		Label:     "Airborne Spores",
		Alternate: true,
	},
}

// DeterminePrimarySource evaluates SourceRules against the session
// location. Each label is asserted once even when several rules yield it.
func DeterminePrimarySource(in Input) entity.Statement {
	var stmt entity.Statement
	disease, location := in.Disease(), in.Location()
	if disease == nil || location == nil {
		return stmt
	}

	seen := make(map[string]bool)
	for _, rule := range SourceRules {
		if seen[rule.Label] || !rule.Match(disease.Name, location) {
			continue
		}
		seen[rule.Label] = true
		stmt.Assert = append(stmt.Assert, in.assert(disease.Id, entity.PredHasPrimarySource, rule.Label))
	}
	return stmt
}
