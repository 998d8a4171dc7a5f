package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paddy-kbs-be/internal/entity"
)

func TestDeterminePrimarySource(t *testing.T) {
	tests := []struct {
		name      string
		disease   string
		profile   entity.EnvironmentalProfile
		alternate *entity.EnvironmentalProfile
		want      []string
	}{
		{
			name:    "false smut R1",
			disease: "False_Smut",
			profile: entity.EnvironmentalProfile{Humidity: "VeryHigh", TemperatureRange: "Optimal", RainfallPattern: "High"},
			want:    []string{"Chlamydospores & Sclerotia (soil)"},
		},
		{
			name:    "false smut partial conditions",
			disease: "False_Smut",
			profile: entity.EnvironmentalProfile{Humidity: "VeryHigh", RainfallPattern: "High"},
			want:    nil,
		},
		{
			name:    "rice blast R2 case-insensitive",
			disease: "Rice_Blast",
			profile: entity.EnvironmentalProfile{Humidity: "high", RainfallPattern: "VERYHIGH"},
			want:    []string{"Airborne Spores"},
		},
		{
			name:    "rice blast R3",
			disease: "Rice_Blast",
			profile: entity.EnvironmentalProfile{Humidity: "Low", RainfallPattern: "High"},
			want:    []string{"Infected Seeds"},
		},
		{
			name:    "rice blast R2 and R4 are additive",
			disease: "Rice_Blast",
			profile: entity.EnvironmentalProfile{Humidity: "High", RainfallPattern: "VeryHigh", SoilMoisture: "High"},
			want:    []string{"Airborne Spores", "Soil and Water"},
		},
		{
			name:      "rice blast via alternate property set",
			disease:   "Rice_Blast",
			profile:   entity.EnvironmentalProfile{Humidity: "Low", RainfallPattern: "Low"},
			alternate: &entity.EnvironmentalProfile{Humidity: "High", RainfallPattern: "VeryHigh"},
			want:      []string{"Airborne Spores"},
		},
		{
			name:      "both variants satisfy R2, label asserted once",
			disease:   "Rice_Blast",
			profile:   entity.EnvironmentalProfile{Humidity: "High", RainfallPattern: "VeryHigh"},
			alternate: &entity.EnvironmentalProfile{Humidity: "High", RainfallPattern: "VeryHigh", LightIntensity: "Low"},
			want:      []string{"Airborne Spores"},
		},
		{
			name:      "alternate set feeds only the airborne spores rule",
			disease:   "Rice_Blast",
			profile:   entity.EnvironmentalProfile{Humidity: "VeryHigh", TemperatureRange: "Optimal", SoilMoisture: "High", LightIntensity: "Low", RainfallPattern: "High"},
			alternate: &entity.EnvironmentalProfile{Humidity: "High", RainfallPattern: "VeryHigh"},
			want:      []string{"Infected Seeds", "Airborne Spores"},
		},
		{
			name:      "alternate set alone does not satisfy R4",
			disease:   "Rice_Blast",
			profile:   entity.EnvironmentalProfile{SoilMoisture: "High", RainfallPattern: "Low"},
			alternate: &entity.EnvironmentalProfile{RainfallPattern: "VeryHigh"},
			want:      nil,
		},
		{
			name:    "disease rules do not cross",
			disease: "False_Smut",
			profile: entity.EnvironmentalProfile{Humidity: "High", RainfallPattern: "VeryHigh"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGraph()
			g.Locations["Testville"] = &entity.Location{Id: "Testville", Profile: tt.profile, Alternate: tt.alternate}

			stmt := DeterminePrimarySource(inputWith(testSessionFor(tt.disease, "Testville", "100", ""), g))

			assert.Equal(t, tt.want, objectsOf(stmt, tt.disease, entity.PredHasPrimarySource))
			assert.Len(t, stmt.Assert, len(tt.want))
		})
	}
}

func TestDeterminePrimarySource_UnknownLocation(t *testing.T) {
	stmt := DeterminePrimarySource(inputWith(testSessionFor("Rice_Blast", "Atlantis", "100", ""), testGraph()))
	assert.True(t, stmt.IsEmpty())
}
