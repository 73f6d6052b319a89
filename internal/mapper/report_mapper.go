package mapper

import (
	"focuscam-be/internal/entity"
	"focuscam-be/internal/model"
)

type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ToEntity(r *model.Report) *entity.Report {
	if r == nil {
		return nil
	}
	return &entity.Report{
		Id:                   r.Id,
		SessionId:            r.SessionId,
		UserId:               r.UserId,
		AvgFocusScore:        r.AvgFocusScore,
		TotalFocusTime:       r.TotalFocusTime,
		TotalDistractionTime: r.TotalDistractionTime,
		CreatedAt:            r.CreatedAt,
	}
}

func (m *ReportMapper) ToModel(r *entity.Report) *model.Report {
	if r == nil {
		return nil
	}
	return &model.Report{
		Id:                   r.Id,
		SessionId:            r.SessionId,
		UserId:               r.UserId,
		AvgFocusScore:        r.AvgFocusScore,
		TotalFocusTime:       r.TotalFocusTime,
		TotalDistractionTime: r.TotalDistractionTime,
		CreatedAt:            r.CreatedAt,
	}
}

func (m *ReportMapper) ToEntities(reports []*model.Report) []*entity.Report {
	entities := make([]*entity.Report, len(reports))
	for i, r := range reports {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
