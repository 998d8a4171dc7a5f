package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paddy-kbs-be/internal/entity"
)

func TestMatchSymptoms(t *testing.T) {
	stmt := MatchSymptoms(inputWith(testSessionFor("Rice_Blast", "Kandy", "100", ""), testGraph()))

	if assert.Len(t, stmt.Assert, 1) {
		assert.Equal(t, entity.Literal(testSession, "Sym_LeafLesion", entity.PredIsSpecific, entity.True), stmt.Assert[0])
	}
}

func TestMatchSymptoms_MissingField(t *testing.T) {
	g := testGraph()
	g.Environments["Env_Leaf"].LightIntensity = ""

	stmt := MatchSymptoms(inputWith(testSessionFor("Rice_Blast", "Kandy", "100", ""), g))
	assert.True(t, stmt.IsEmpty())

	g = testGraph()
	g.Locations["Kandy"].Profile.SoilMoisture = ""
	stmt = MatchSymptoms(inputWith(testSessionFor("Rice_Blast", "Kandy", "100", ""), g))
	assert.True(t, stmt.IsEmpty())
}

func TestMatchSymptoms_AnyEnvironmentMatches(t *testing.T) {
	g := testGraph()
	g.Symptoms["Sym_NodeRot"].EnvironmentIds = []string{"Env_Node", "Env_Leaf"}

	stmt := MatchSymptoms(inputWith(testSessionFor("Rice_Blast", "Kandy", "100", ""), g))
	assert.ElementsMatch(t, []string{"Sym_LeafLesion", "Sym_NodeRot"}, []string{stmt.Assert[0].Subject, stmt.Assert[1].Subject})
}

func TestMatchSymptoms_OneFieldMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *entity.EnvironmentalProfile)
	}{
		{name: "humidity", mutate: func(p *entity.EnvironmentalProfile) { p.Humidity = "Low" }},
		{name: "temperature", mutate: func(p *entity.EnvironmentalProfile) { p.TemperatureRange = "High" }},
		{name: "soil moisture", mutate: func(p *entity.EnvironmentalProfile) { p.SoilMoisture = "High" }},
		{name: "light intensity", mutate: func(p *entity.EnvironmentalProfile) { p.LightIntensity = "High" }},
		{name: "rainfall", mutate: func(p *entity.EnvironmentalProfile) { p.RainfallPattern = "Low" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGraph()
			tt.mutate(g.Environments["Env_Leaf"])

			stmt := MatchSymptoms(inputWith(testSessionFor("Rice_Blast", "Kandy", "100", ""), g))
			assert.True(t, stmt.IsEmpty())
		})
	}
}
