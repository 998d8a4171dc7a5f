package mapper

import (
	"encoding/json"

	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/model"

	"gorm.io/datatypes"
)

type PipelineRunMapper struct{}

func NewPipelineRunMapper() *PipelineRunMapper {
	return &PipelineRunMapper{}
}

func (m *PipelineRunMapper) ToEntity(r *model.PipelineRun) *entity.PipelineRun {
	if r == nil {
		return nil
	}

	var stages []entity.StageReport
	if len(r.Stages) > 0 {
		// a malformed column only loses the stage breakdown
		_ = json.Unmarshal(r.Stages, &stages)
	}

	var errMsg string
	if r.Error != nil {
		errMsg = *r.Error
	}

	return &entity.PipelineRun{
		Id:         r.Id,
		SessionId:  r.SessionId,
		Status:     r.Status,
		Error:      errMsg,
		Stages:     stages,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}

func (m *PipelineRunMapper) ToModel(r *entity.PipelineRun) *model.PipelineRun {
	if r == nil {
		return nil
	}

	var stages datatypes.JSON
	if len(r.Stages) > 0 {
		if b, err := json.Marshal(r.Stages); err == nil {
			stages = datatypes.JSON(b)
		}
	}

	var errMsg *string
	if r.Error != "" {
		e := r.Error
		errMsg = &e
	}

	return &model.PipelineRun{
		Id:         r.Id,
		SessionId:  r.SessionId,
		Status:     r.Status,
		Error:      errMsg,
		Stages:     stages,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}

func (m *PipelineRunMapper) ToEntities(models []*model.PipelineRun) []*entity.PipelineRun {
	runs := make([]*entity.PipelineRun, 0, len(models))
	for _, r := range models {
		runs = append(runs, m.ToEntity(r))
	}
	return runs
}
