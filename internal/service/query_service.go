// FILE: internal/service/query_service.go
package service

import (
	"context"
	"sort"
	"strings"

	"paddy-kbs-be/internal/dto"
	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/pkg/logger"
	"paddy-kbs-be/internal/repository/cache"
	"paddy-kbs-be/internal/repository/contract"
	"paddy-kbs-be/pkg/inference"
)

const (
	defaultEnvironmentImpact = "No environment impact"
	defaultImpact            = "No impact"
	defaultCondition         = "No condition"

	listSeparator = ", "
)

// IQueryService exposes the read projections. Session projections join the
// background graph with the facts derived for that session. They never write.
type IQueryService interface {
	DiseaseDetails(ctx context.Context, sessionId string) (*dto.DiseaseDetailsResponse, error)
	RecommendedTreatments(ctx context.Context, sessionId string) ([]*dto.RecommendedTreatmentResponse, error)
	GeneralTreatments(ctx context.Context, sessionId string) ([]*dto.GeneralTreatmentResponse, error)
	DiseaseAgent(ctx context.Context, name string) ([]*dto.DiseaseAgentResponse, error)
	DiseaseEnvironment(ctx context.Context, name string) ([]*dto.DiseaseEnvironmentResponse, error)
	GeneralGuidelines(ctx context.Context) ([]*dto.GeneralGuidelineResponse, error)
	PipelineRuns(ctx context.Context, sessionId string) ([]*dto.PipelineRunResponse, error)
	// FlushCache drops cached background projections.
	FlushCache(ctx context.Context) error
}

type queryService struct {
	store    contract.FactStore
	sessions ISessionService
	graph    IGraphService
	runs     contract.PipelineRunRepository
	cache    cache.ProjectionCache
	logger   logger.ILogger
}

func NewQueryService(
	store contract.FactStore,
	sessions ISessionService,
	graph IGraphService,
	runs contract.PipelineRunRepository,
	projectionCache cache.ProjectionCache,
	log logger.ILogger,
) IQueryService {
	if projectionCache == nil {
		projectionCache = cache.NoopProjectionCache{}
	}
	return &queryService{
		store:    store,
		sessions: sessions,
		graph:    graph,
		runs:     runs,
		cache:    projectionCache,
		logger:   log,
	}
}

type sessionContext struct {
	session *entity.Session
	graph   *entity.Graph
	derived *inference.View
}

func (c *sessionContext) disease() *entity.Disease {
	return c.graph.Diseases[c.session.DiseaseId]
}

func (s *queryService) loadSession(ctx context.Context, sessionId string) (*sessionContext, error) {
	session, err := s.sessions.Find(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	g, err := s.graph.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	facts, err := s.store.Query(ctx, entity.Pattern{Scope: sessionId})
	if err != nil {
		return nil, err
	}
	return &sessionContext{
		session: session,
		graph:   g,
		derived: inference.NewView(sessionId, facts...),
	}, nil
}

func (s *queryService) DiseaseDetails(ctx context.Context, sessionId string) (*dto.DiseaseDetailsResponse, error) {
	sc, err := s.loadSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	res := &dto.DiseaseDetailsResponse{
		Disease:        sc.session.DiseaseId,
		PrimarySources: []string{},
	}
	d := sc.disease()
	if d == nil {
		return res, nil
	}
	res.DiseaseName = d.Name
	res.OverallSymptoms = d.OverallSymptoms
	res.PrimarySources = append(res.PrimarySources, sc.derived.Values(d.Id, entity.PredHasPrimarySource)...)

	var descriptions, parts, ids []string
	for _, id := range d.SymptomIds {
		if !sc.derived.Has(id, entity.PredIsSpecific, entity.True) {
			continue
		}
		ids = append(ids, id)
		if sym := sc.graph.Symptoms[id]; sym != nil {
			if sym.Description != "" {
				descriptions = append(descriptions, sym.Description)
			}
			parts = append(parts, sym.AffectedParts...)
		}
	}
	res.SymptomDescriptions = joinDistinct(descriptions)
	res.AffectedParts = joinDistinct(parts)
	res.Symptoms = joinDistinct(ids)
	return res, nil
}

// suitableTreatments yields every (control method, treatment) pair of the
// session's disease where the control method has the given status and a
// product name, and the treatment is control-method suitable in this session.
func (sc *sessionContext) suitableTreatments(status string, fn func(cm *entity.ControlMethod, treatmentId string)) {
	d := sc.disease()
	if d == nil {
		return
	}
	for _, cmId := range d.ControlMethodIds {
		cm := sc.graph.ControlMethods[cmId]
		if cm == nil || cm.TreatmentStatus != status || cm.ProductName == "" {
			continue
		}
		for _, tId := range cm.TreatmentIds {
			if sc.derived.Has(tId, entity.PredIsControlMethodSuitable, entity.True) {
				fn(cm, tId)
			}
		}
	}
}

type guidelineText struct {
	safety, instructions, frequency string
}

func (sc *sessionContext) guidelines(t *entity.Treatment) guidelineText {
	var safety, instructions, frequency []string
	for _, id := range t.GuidelineIds {
		if ug := sc.graph.UserGuidelines[id]; ug != nil {
			safety = append(safety, ug.SafetyMeasures...)
			instructions = append(instructions, ug.Instructions...)
			frequency = append(frequency, ug.ApplicationFrequency...)
		}
	}
	return guidelineText{
		safety:       joinDistinct(safety),
		instructions: joinDistinct(instructions),
		frequency:    joinDistinct(frequency),
	}
}

func (sc *sessionContext) treatment(id string) *entity.Treatment {
	if t := sc.graph.Treatments[id]; t != nil {
		return t
	}
	return &entity.Treatment{Id: id}
}

func (s *queryService) RecommendedTreatments(ctx context.Context, sessionId string) ([]*dto.RecommendedTreatmentResponse, error) {
	sc, err := s.loadSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	out := []*dto.RecommendedTreatmentResponse{}
	sc.suitableTreatments(entity.TreatmentStatusRecommended, func(cm *entity.ControlMethod, tId string) {
		t := sc.treatment(tId)
		g := sc.guidelines(t)
		out = append(out, &dto.RecommendedTreatmentResponse{
			ControlMethod:             cm.Id,
			ProductName:               cm.ProductName,
			Treatment:                 t.Id,
			Effectiveness:             t.Effectiveness,
			EnvironmentImpact:         t.EnvironmentImpact,
			Impact:                    t.Impact,
			Condition:                 t.Condition,
			AllSafetyMeasures:         g.safety,
			AllInstructions:           g.instructions,
			AllApplicationFrequencies: g.frequency,
		})
	})
	return out, nil
}

func (s *queryService) GeneralTreatments(ctx context.Context, sessionId string) ([]*dto.GeneralTreatmentResponse, error) {
	sc, err := s.loadSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	out := []*dto.GeneralTreatmentResponse{}
	sc.suitableTreatments(entity.TreatmentStatusGeneral, func(cm *entity.ControlMethod, tId string) {
		t := sc.treatment(tId)
		if t.Effectiveness == "" {
			return
		}
		g := sc.guidelines(t)
		out = append(out, &dto.GeneralTreatmentResponse{
			Treatment:               t.Id,
			ControlMethodName:       cm.ProductName,
			MethodDescription:       cm.Description,
			ActiveIngredient:        cm.ActiveIngredient,
			Effectiveness:           t.Effectiveness,
			EnvironmentImpactVal:    orDefault(t.EnvironmentImpact, defaultEnvironmentImpact),
			ImpactVal:               orDefault(t.Impact, defaultImpact),
			ConditionVal:            orDefault(t.Condition, defaultCondition),
			SafetyMeasuresVal:       g.safety,
			InstructionsVal:         g.instructions,
			ApplicationFrequencyVal: g.frequency,
		})
	})
	return out, nil
}

func (s *queryService) DiseaseAgent(ctx context.Context, name string) ([]*dto.DiseaseAgentResponse, error) {
	out := []*dto.DiseaseAgentResponse{}
	key := "agent:" + strings.ToLower(name)
	if s.fromCache(ctx, key, &out) {
		return out, nil
	}

	g, err := s.graph.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[dto.DiseaseAgentResponse]bool)
	for _, id := range g.DiseaseIds() {
		d := g.Diseases[id]
		if !strings.EqualFold(d.Name, name) {
			continue
		}
		for _, agentId := range d.AgentIds {
			a := g.Agents[agentId]
			if a == nil || a.ScientificName == "" || a.Type == "" {
				continue
			}
			row := dto.DiseaseAgentResponse{ScientificName: a.ScientificName, Type: a.Type}
			if seen[row] {
				continue
			}
			seen[row] = true
			out = append(out, &row)
		}
	}

	s.toCache(ctx, key, out)
	return out, nil
}

func (s *queryService) DiseaseEnvironment(ctx context.Context, name string) ([]*dto.DiseaseEnvironmentResponse, error) {
	out := []*dto.DiseaseEnvironmentResponse{}
	key := "environment:" + name
	if s.fromCache(ctx, key, &out) {
		return out, nil
	}

	g, err := s.graph.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	for _, id := range g.DiseaseIds() {
		d := g.Diseases[id]
		if d.Name != name {
			continue
		}
		for _, envId := range d.EnvironmentIds {
			env := g.DiseaseEnvironments[envId]
			if env == nil || env.TemperatureRange == "" || env.Humidity == "" || env.SoilMoisture == "" || env.RainfallPattern == "" {
				continue
			}
			out = append(out, &dto.DiseaseEnvironmentResponse{
				Temperature:     env.TemperatureRange,
				Humidity:        env.Humidity,
				SoilMoisture:    env.SoilMoisture,
				RainfallPattern: env.RainfallPattern,
			})
		}
	}

	s.toCache(ctx, key, out)
	return out, nil
}

func (s *queryService) GeneralGuidelines(ctx context.Context) ([]*dto.GeneralGuidelineResponse, error) {
	out := []*dto.GeneralGuidelineResponse{}
	const key = "guidelines"
	if s.fromCache(ctx, key, &out) {
		return out, nil
	}

	g, err := s.graph.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	for _, id := range g.GeneralGuidelineIds() {
		gl := g.GeneralGuidelines[id]
		out = append(out, &dto.GeneralGuidelineResponse{
			GuidelineName: gl.Id,
			GDescription:  gl.Description,
			Guideline:     gl.Guideline,
		})
	}

	s.toCache(ctx, key, out)
	return out, nil
}

func (s *queryService) PipelineRuns(ctx context.Context, sessionId string) ([]*dto.PipelineRunResponse, error) {
	if _, err := s.sessions.Find(ctx, sessionId); err != nil {
		return nil, err
	}

	runs, err := s.runs.FindAllBySession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PipelineRunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, toPipelineRunResponse(run))
	}
	return out, nil
}

func (s *queryService) FlushCache(ctx context.Context) error {
	return s.cache.Flush(ctx)
}

// fromCache treats a cache failure as a miss.
func (s *queryService) fromCache(ctx context.Context, key string, dest interface{}) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("QUERY", "Projection cache read failed", map[string]interface{}{"key": key, "error": err})
		return false
	}
	return found
}

func (s *queryService) toCache(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("QUERY", "Projection cache write failed", map[string]interface{}{"key": key, "error": err})
	}
}

// joinDistinct drops empty and repeated values and joins the rest in
// lexical order.
func joinDistinct(values []string) string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return strings.Join(out, listSeparator)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
