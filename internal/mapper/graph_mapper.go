package mapper

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"paddy-kbs-be/internal/entity"
)

// GraphMapper decodes the background scope into typed nodes. A node is
// decoded as a kind when it carries the matching rdf:type or when another
// node links to it through a predicate that implies the kind.
type GraphMapper struct{}

func NewGraphMapper() *GraphMapper {
	return &GraphMapper{}
}

type nodeIndex map[string]map[string][]string

func (idx nodeIndex) add(f entity.Fact) {
	preds, ok := idx[f.Subject]
	if !ok {
		preds = make(map[string][]string)
		idx[f.Subject] = preds
	}
	preds[f.Predicate] = append(preds[f.Predicate], f.Object)
}

// values returns the sorted distinct objects of every given predicate.
func (idx nodeIndex) values(subject string, predicates ...string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range predicates {
		for _, v := range idx[subject][p] {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Strings(out)
	return out
}

func (idx nodeIndex) value(subject, predicate string) string {
	vals := idx.values(subject, predicate)
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[0])
}

func (idx nodeIndex) has(subject string, predicates ...string) bool {
	for _, p := range predicates {
		if len(idx[subject][p]) > 0 {
			return true
		}
	}
	return false
}

// kinds collects node ids per kind from rdf:type facts and from links.
type kinds map[string]map[string]bool

func (k kinds) mark(kind, id string) {
	if k[kind] == nil {
		k[kind] = make(map[string]bool)
	}
	k[kind][id] = true
}

func (k kinds) ids(kind string) []string {
	out := make([]string, 0, len(k[kind]))
	for id := range k[kind] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// linkKinds maps a linking predicate to the kind of its object.
var linkKinds = map[string]string{
	entity.PredTreatments:        entity.ClassTreatment,
	entity.PredUserGuidelines:    entity.ClassUserGuideline,
	entity.PredControlMethods:    entity.ClassControlMethod,
	entity.PredSymptoms:          entity.ClassSymptom,
	entity.PredSymptomsLegacy:    entity.ClassSymptom,
	entity.PredSymptomAffectedBy: entity.ClassEnvironment,
	entity.PredCausedBy:          entity.ClassAgent,
	entity.PredAffectedBy:        entity.ClassDiseaseEnvironment,
}

func (m *GraphMapper) ToGraph(facts []entity.Fact) *entity.Graph {
	idx := make(nodeIndex)
	k := make(kinds)
	for _, f := range facts {
		if f.Scope != entity.BackgroundScope {
			continue
		}
		idx.add(f)
		if f.Predicate == entity.PredType {
			k.mark(f.Object, f.Subject)
		} else if kind, ok := linkKinds[f.Predicate]; ok {
			k.mark(kind, f.Object)
		}
	}

	g := entity.NewGraph()

	for _, id := range k.ids(entity.ClassTreatment) {
		t := &entity.Treatment{
			Id:                id,
			Effectiveness:     idx.value(id, entity.PredEffectiveness),
			EnvironmentImpact: idx.value(id, entity.PredEnvironmentImpact),
			Impact:            idx.value(id, entity.PredImpact),
			Condition:         idx.value(id, entity.PredCondition),
			GuidelineIds:      idx.values(id, entity.PredUserGuidelines),
		}
		if raw := idx.value(id, entity.PredCost); raw != "" {
			if c, err := decimal.NewFromString(raw); err == nil {
				t.Cost = decimal.NewNullDecimal(c)
			}
		}
		g.Treatments[id] = t
	}

	for _, id := range k.ids(entity.ClassUserGuideline) {
		g.UserGuidelines[id] = &entity.UserGuideline{
			Id:                   id,
			SafetyMeasures:       idx.values(id, entity.PredSafetyMeasures),
			Instructions:         idx.values(id, entity.PredInstruction),
			ApplicationFrequency: idx.values(id, entity.PredApplicationFrequency),
		}
	}

	for _, id := range k.ids(entity.ClassControlMethod) {
		g.ControlMethods[id] = &entity.ControlMethod{
			Id:               id,
			Method:           idx.value(id, entity.PredMethod),
			TreatmentStatus:  idx.value(id, entity.PredTreatmentStatus),
			ProductName:      idx.value(id, entity.PredProductName),
			Description:      idx.value(id, entity.PredDescription),
			ActiveIngredient: idx.value(id, entity.PredActiveIngredient),
			TreatmentIds:     idx.values(id, entity.PredTreatments),
		}
	}

	for _, id := range k.ids(entity.ClassDisease) {
		g.Diseases[id] = &entity.Disease{
			Id:               id,
			Name:             idx.value(id, entity.PredName),
			OverallSymptoms:  idx.value(id, entity.PredOverallSymptoms),
			SymptomIds:       idx.values(id, entity.PredSymptoms, entity.PredSymptomsLegacy),
			ControlMethodIds: idx.values(id, entity.PredControlMethods),
			AgentIds:         idx.values(id, entity.PredCausedBy),
			EnvironmentIds:   idx.values(id, entity.PredAffectedBy),
		}
	}

	for _, id := range k.ids(entity.ClassSymptom) {
		g.Symptoms[id] = &entity.Symptom{
			Id:             id,
			Description:    idx.value(id, entity.PredSymptomDescription),
			AffectedParts:  idx.values(id, entity.PredAffectedParts),
			EnvironmentIds: idx.values(id, entity.PredSymptomAffectedBy),
		}
	}

	for _, id := range k.ids(entity.ClassEnvironment) {
		g.Environments[id] = &entity.EnvironmentalProfile{
			Humidity:         idx.value(id, entity.PredHumidity),
			TemperatureRange: idx.value(id, entity.PredSymptomTemperature),
			SoilMoisture:     idx.value(id, entity.PredSoilMoisture),
			LightIntensity:   idx.value(id, entity.PredLightIntensity),
			RainfallPattern:  idx.value(id, entity.PredRainfall),
		}
	}

	for _, id := range k.ids(entity.ClassLocation) {
		loc := &entity.Location{
			Id: id,
			Profile: entity.EnvironmentalProfile{
				Humidity:         idx.value(id, entity.PredLocationHumidity),
				TemperatureRange: idx.value(id, entity.PredLocationTemperature),
				SoilMoisture:     idx.value(id, entity.PredLocationSoilMoisture),
				LightIntensity:   idx.value(id, entity.PredLocationLight),
				RainfallPattern:  idx.value(id, entity.PredLocationRainfall),
			},
		}
		if idx.has(id, entity.PredHumidity, entity.PredSoilMoisture, entity.PredLightIntensity, entity.PredRainfall) {
			loc.Alternate = &entity.EnvironmentalProfile{
				Humidity:        idx.value(id, entity.PredHumidity),
				SoilMoisture:    idx.value(id, entity.PredSoilMoisture),
				LightIntensity:  idx.value(id, entity.PredLightIntensity),
				RainfallPattern: idx.value(id, entity.PredRainfall),
			}
		}
		g.Locations[id] = loc
	}

	for _, id := range k.ids(entity.ClassAgent) {
		g.Agents[id] = &entity.Agent{
			Id:             id,
			ScientificName: idx.value(id, entity.PredScientificName),
			Type:           idx.value(id, entity.PredAgentType),
		}
	}

	for _, id := range k.ids(entity.ClassDiseaseEnvironment) {
		g.DiseaseEnvironments[id] = &entity.DiseaseEnvironment{
			Id:               id,
			TemperatureRange: idx.value(id, entity.PredConditionTemperature),
			Humidity:         idx.value(id, entity.PredConditionHumidity),
			SoilMoisture:     idx.value(id, entity.PredConditionSoilMoisture),
			RainfallPattern:  idx.value(id, entity.PredConditionRainfall),
		}
	}

	for _, id := range k.ids(entity.ClassGeneralGuideline) {
		g.GeneralGuidelines[id] = &entity.GeneralGuideline{
			Id:          id,
			Description: idx.value(id, entity.PredGuidelineDesc),
			Guideline:   idx.value(id, entity.PredGuidelineText),
		}
	}

	return g
}
