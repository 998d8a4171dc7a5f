package entity

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// EnvironmentalProfile is the five-field categorical description attached
// to a Location or required by a Symptom.
type EnvironmentalProfile struct {
	Humidity         string
	TemperatureRange string
	SoilMoisture     string
	LightIntensity   string
	RainfallPattern  string
}

func (p EnvironmentalProfile) fields() [5]string {
	return [5]string{p.Humidity, p.TemperatureRange, p.SoilMoisture, p.LightIntensity, p.RainfallPattern}
}

// IsComplete reports whether all five fields are set.
func (p EnvironmentalProfile) IsComplete() bool {
	for _, f := range p.fields() {
		if f == "" {
			return false
		}
	}
	return true
}

// Matches is the all-or-nothing comparison: both profiles complete and every
// field equal ignoring case.
func (p EnvironmentalProfile) Matches(other EnvironmentalProfile) bool {
	if !p.IsComplete() || !other.IsComplete() {
		return false
	}
	a, b := p.fields(), other.fields()
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Satisfies reports whether every non-empty field of cond equals the
// corresponding field of p ignoring case. A condition on a field p lacks
// never holds.
func (p EnvironmentalProfile) Satisfies(cond EnvironmentalProfile) bool {
	have, want := p.fields(), cond.fields()
	for i := range want {
		if want[i] == "" {
			continue
		}
		if have[i] == "" || !strings.EqualFold(have[i], want[i]) {
			return false
		}
	}
	return true
}

type Treatment struct {
	Id                string
	Cost              decimal.NullDecimal
	Effectiveness     string
	EnvironmentImpact string
	Impact            string
	Condition         string
	GuidelineIds      []string
}

type UserGuideline struct {
	Id                   string
	SafetyMeasures       []string
	Instructions         []string
	ApplicationFrequency []string
}

type ControlMethod struct {
	Id               string
	Method           string
	TreatmentStatus  string
	ProductName      string
	Description      string
	ActiveIngredient string
	TreatmentIds     []string
}

type Disease struct {
	Id               string
	Name             string
	OverallSymptoms  string
	SymptomIds       []string
	ControlMethodIds []string
	AgentIds         []string
	EnvironmentIds   []string
}

type Symptom struct {
	Id             string
	Description    string
	AffectedParts  []string
	EnvironmentIds []string
}

type Location struct {
	Id      string
	Profile EnvironmentalProfile

	// Alternate holds the plain-named property set some locations carry
	// next to the "_L" set. Nil when the location has none.
	Alternate *EnvironmentalProfile
}

type Agent struct {
	Id             string
	ScientificName string
	Type           string
}

// DiseaseEnvironment is the set of conditions a disease is favoured by.
type DiseaseEnvironment struct {
	Id               string
	TemperatureRange string
	Humidity         string
	SoilMoisture     string
	RainfallPattern  string
}

type GeneralGuideline struct {
	Id          string
	Description string
	Guideline   string
}

// Graph is a read-only snapshot of the background knowledge base.
type Graph struct {
	Treatments          map[string]*Treatment
	UserGuidelines      map[string]*UserGuideline
	ControlMethods      map[string]*ControlMethod
	Diseases            map[string]*Disease
	Symptoms            map[string]*Symptom
	Environments        map[string]*EnvironmentalProfile
	Locations           map[string]*Location
	Agents              map[string]*Agent
	DiseaseEnvironments map[string]*DiseaseEnvironment
	GeneralGuidelines   map[string]*GeneralGuideline
}

func NewGraph() *Graph {
	return &Graph{
		Treatments:          make(map[string]*Treatment),
		UserGuidelines:      make(map[string]*UserGuideline),
		ControlMethods:      make(map[string]*ControlMethod),
		Diseases:            make(map[string]*Disease),
		Symptoms:            make(map[string]*Symptom),
		Environments:        make(map[string]*EnvironmentalProfile),
		Locations:           make(map[string]*Location),
		Agents:              make(map[string]*Agent),
		DiseaseEnvironments: make(map[string]*DiseaseEnvironment),
		GeneralGuidelines:   make(map[string]*GeneralGuideline),
	}
}

// TreatmentIds returns every treatment id in lexical order.
func (g *Graph) TreatmentIds() []string {
	return sortedKeys(g.Treatments)
}

// GeneralGuidelineIds returns every general guideline id in lexical order.
func (g *Graph) GeneralGuidelineIds() []string {
	return sortedKeys(g.GeneralGuidelines)
}

// DiseaseIds returns every disease id in lexical order.
func (g *Graph) DiseaseIds() []string {
	return sortedKeys(g.Diseases)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
