// FILE: internal/service/run_convert.go
package service

import (
	"time"

	"paddy-kbs-be/internal/dto"
	"paddy-kbs-be/internal/entity"
)

func toStageReportResponses(stages []entity.StageReport) []dto.StageReportResponse {
	out := make([]dto.StageReportResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, dto.StageReportResponse{
			Name:       s.Name,
			Asserted:   s.Asserted,
			Retracted:  s.Retracted,
			DurationMs: s.Duration.Milliseconds(),
			Failure:    s.FailureMsg,
		})
	}
	return out
}

func toPipelineRunMessage(run *entity.PipelineRun) dto.PipelineRunMessage {
	return dto.PipelineRunMessage{
		Id:         run.Id,
		SessionId:  run.SessionId,
		Status:     run.Status,
		Error:      run.Error,
		Stages:     toStageReportResponses(run.Stages),
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
	}
}

func toPipelineRun(msg dto.PipelineRunMessage) *entity.PipelineRun {
	stages := make([]entity.StageReport, 0, len(msg.Stages))
	for _, s := range msg.Stages {
		stages = append(stages, entity.StageReport{
			Name:       s.Name,
			Asserted:   s.Asserted,
			Retracted:  s.Retracted,
			Duration:   time.Duration(s.DurationMs) * time.Millisecond,
			FailureMsg: s.Failure,
		})
	}
	return &entity.PipelineRun{
		Id:         msg.Id,
		SessionId:  msg.SessionId,
		Status:     msg.Status,
		Error:      msg.Error,
		Stages:     stages,
		StartedAt:  msg.StartedAt,
		FinishedAt: msg.FinishedAt,
	}
}

func toPipelineRunResponse(run *entity.PipelineRun) *dto.PipelineRunResponse {
	return &dto.PipelineRunResponse{
		Id:         run.Id,
		SessionId:  run.SessionId,
		Status:     run.Status,
		Error:      run.Error,
		Stages:     toStageReportResponses(run.Stages),
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
	}
}
