package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"paddy-kbs-be/internal/constant"
	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/pkg/logger"
	"paddy-kbs-be/internal/repository/contract"
	"paddy-kbs-be/internal/repository/factstore"
	"paddy-kbs-be/internal/repository/memory"
	"paddy-kbs-be/pkg/events"
	"paddy-kbs-be/pkg/inference"
)

// backgroundFacts is a Rice Blast knowledge base: one recommended and one
// general control method, both "Chemical", plus Kandy as location.
func backgroundFacts() []entity.Fact {
	bg := entity.BackgroundScope
	link := func(s, p, o string) entity.Fact { return entity.Link(bg, s, p, o) }
	lit := func(s, p, o string) entity.Fact { return entity.Literal(bg, s, p, o) }

	return []entity.Fact{
		link("Rice_Blast", entity.PredType, entity.ClassDisease),
		lit("Rice_Blast", entity.PredName, "Rice Blast"),
		lit("Rice_Blast", entity.PredOverallSymptoms, "Diamond shaped lesions on leaves"),
		link("Rice_Blast", entity.PredControlMethods, "CM_Tricyclazole"),
		link("Rice_Blast", entity.PredControlMethods, "CM_Field"),
		link("Rice_Blast", entity.PredSymptoms, "Sym_LeafLesion"),
		link("Rice_Blast", entity.PredSymptoms, "Sym_NodeRot"),
		link("Rice_Blast", entity.PredCausedBy, "Agent_Magnaporthe"),
		link("Rice_Blast", entity.PredAffectedBy, "EC_Blast"),

		link("False_Smut", entity.PredType, entity.ClassDisease),
		lit("False_Smut", entity.PredName, "False Smut"),

		lit("CM_Tricyclazole", entity.PredMethod, "Chemical"),
		lit("CM_Tricyclazole", entity.PredTreatmentStatus, entity.TreatmentStatusRecommended),
		lit("CM_Tricyclazole", entity.PredProductName, "Beam 75 WP"),
		link("CM_Tricyclazole", entity.PredTreatments, "T_Tricyclazole"),
		link("CM_Tricyclazole", entity.PredTreatments, "T_Isoprothiolane"),

		lit("CM_Field", entity.PredMethod, "Chemical"),
		lit("CM_Field", entity.PredTreatmentStatus, entity.TreatmentStatusGeneral),
		lit("CM_Field", entity.PredProductName, "Field sanitation"),
		lit("CM_Field", entity.PredDescription, "Remove infected stubble"),
		link("CM_Field", entity.PredTreatments, "T_Sanitation"),
		link("CM_Field", entity.PredTreatments, "T_Unrated"),

		lit("T_Tricyclazole", entity.PredCost, "100"),
		lit("T_Tricyclazole", entity.PredEffectiveness, "High"),
		lit("T_Tricyclazole", entity.PredEnvironmentImpact, "Toxic to fish"),
		link("T_Tricyclazole", entity.PredUserGuidelines, "UG_Tricyclazole"),
		lit("T_Isoprothiolane", entity.PredCost, "140"),
		lit("T_Isoprothiolane", entity.PredImpact, "Moderate"),
		lit("T_Sanitation", entity.PredCost, "10"),
		lit("T_Sanitation", entity.PredEffectiveness, "Medium"),
		lit("T_Unrated", entity.PredCost, "5"),

		lit("UG_Tricyclazole", entity.PredSafetyMeasures, "Wear mask"),
		lit("UG_Tricyclazole", entity.PredSafetyMeasures, "Wear gloves"),
		lit("UG_Tricyclazole", entity.PredInstruction, "Spray at tillering"),
		lit("UG_Tricyclazole", entity.PredApplicationFrequency, "Every 10 days"),

		lit("Sym_LeafLesion", entity.PredSymptomDescription, "Spindle shaped spots"),
		lit("Sym_LeafLesion", entity.PredAffectedParts, "Leaf"),
		lit("Sym_LeafLesion", entity.PredAffectedParts, "Collar"),
		link("Sym_LeafLesion", entity.PredSymptomAffectedBy, "Env_Leaf"),
		lit("Sym_NodeRot", entity.PredSymptomDescription, "Blackened nodes"),
		link("Sym_NodeRot", entity.PredSymptomAffectedBy, "Env_Node"),

		lit("Env_Leaf", entity.PredHumidity, "High"),
		lit("Env_Leaf", entity.PredSymptomTemperature, "Optimal"),
		lit("Env_Leaf", entity.PredSoilMoisture, "Moderate"),
		lit("Env_Leaf", entity.PredLightIntensity, "Low"),
		lit("Env_Leaf", entity.PredRainfall, "VeryHigh"),
		lit("Env_Node", entity.PredHumidity, "Low"),
		lit("Env_Node", entity.PredSymptomTemperature, "Optimal"),
		lit("Env_Node", entity.PredSoilMoisture, "Moderate"),
		lit("Env_Node", entity.PredLightIntensity, "Low"),
		lit("Env_Node", entity.PredRainfall, "VeryHigh"),

		link("Kandy", entity.PredType, entity.ClassLocation),
		lit("Kandy", entity.PredLocationHumidity, "High"),
		lit("Kandy", entity.PredLocationTemperature, "Optimal"),
		lit("Kandy", entity.PredLocationSoilMoisture, "Moderate"),
		lit("Kandy", entity.PredLocationLight, "Low"),
		lit("Kandy", entity.PredLocationRainfall, "VeryHigh"),

		lit("Agent_Magnaporthe", entity.PredScientificName, "Magnaporthe oryzae"),
		lit("Agent_Magnaporthe", entity.PredAgentType, "Fungus"),

		lit("EC_Blast", entity.PredConditionTemperature, "25-28C"),
		lit("EC_Blast", entity.PredConditionHumidity, "Above 90%"),
		lit("EC_Blast", entity.PredConditionSoilMoisture, "Moist"),
		lit("EC_Blast", entity.PredConditionRainfall, "Frequent showers"),

		link("GG_CleanSeed", entity.PredType, entity.ClassGeneralGuideline),
		lit("GG_CleanSeed", entity.PredGuidelineDesc, "Seed selection"),
		lit("GG_CleanSeed", entity.PredGuidelineText, "Use certified seed"),
	}
}

func newSeededStore(t *testing.T) *factstore.MemoryStore {
	t.Helper()
	store := factstore.NewMemoryStore()
	require.NoError(t, store.Update(context.Background(), entity.Statement{Assert: backgroundFacts()}))
	return store
}

// failingStore fails the nth Update and passes everything else through.
type failingStore struct {
	contract.FactStore
	failAt int
	err    error

	mu    sync.Mutex
	calls int
}

func (s *failingStore) Update(ctx context.Context, stmt entity.Statement) error {
	s.mu.Lock()
	s.calls++
	n := s.calls
	s.mu.Unlock()
	if n == s.failAt {
		return s.err
	}
	return s.FactStore.Update(ctx, stmt)
}

type recordingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *recordingPublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

type recordingEvents struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingEvents) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

var errBackend = errors.New("backend down")

type harness struct {
	store     contract.FactStore
	sessions  ISessionService
	graph     IGraphService
	advisory  IAdvisoryService
	query     IQueryService
	publisher *recordingPublisher
	events    *recordingEvents
	runs      *memory.PipelineRunRepository
}

// testSessionId is the n-th id handed out by a harness.
func testSessionId(n int) string {
	return fmt.Sprintf("%s00000000-0000-0000-0000-%012d", constant.SessionIdPrefix, n)
}

var firstSession = testSessionId(1)

func newHarness(store contract.FactStore) *harness {
	log := logger.NewNopLogger()
	h := &harness{
		store:     store,
		publisher: &recordingPublisher{},
		events:    &recordingEvents{},
		runs:      memory.NewPipelineRunRepository(),
	}
	n := 0
	h.sessions = NewSessionService(store, log, WithSessionIds(func() string {
		n++
		return testSessionId(n)
	}))
	h.graph = NewGraphService(store, memory.NewSnapshotCache(0), log)
	h.advisory = NewAdvisoryService(
		store,
		h.sessions,
		h.graph,
		inference.NewPipeline(),
		h.publisher,
		NewEventService(h.events, log),
		log,
	)
	h.query = NewQueryService(store, h.sessions, h.graph, h.runs, nil, log)
	return h
}
