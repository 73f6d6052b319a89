package mapper

import (
	"focuscam-be/internal/entity"
	"focuscam-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}
	return &entity.Session{
		Id:              s.Id,
		UserId:          s.UserId,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationSeconds: s.DurationSeconds,
		ScreenWidth:     s.ScreenWidth,
		ScreenHeight:    s.ScreenHeight,
		CreatedAt:       s.CreatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}
	return &model.Session{
		Id:              s.Id,
		UserId:          s.UserId,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationSeconds: s.DurationSeconds,
		ScreenWidth:     s.ScreenWidth,
		ScreenHeight:    s.ScreenHeight,
		CreatedAt:       s.CreatedAt,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.Session) []*entity.Session {
	entities := make([]*entity.Session, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *SessionMapper) SampleToEntity(s *model.FocusSample) *entity.FocusSample {
	if s == nil {
		return nil
	}
	return &entity.FocusSample{
		Id:             s.Id,
		SessionId:      s.SessionId,
		Timestamp:      s.Timestamp,
		AttentionState: s.AttentionState,
		FocusScore:     s.FocusScore,
	}
}

func (m *SessionMapper) SampleToModel(s *entity.FocusSample) *model.FocusSample {
	if s == nil {
		return nil
	}
	return &model.FocusSample{
		Id:             s.Id,
		SessionId:      s.SessionId,
		Timestamp:      s.Timestamp,
		AttentionState: s.AttentionState,
		FocusScore:     s.FocusScore,
	}
}

func (m *SessionMapper) SamplesToEntities(samples []*model.FocusSample) []*entity.FocusSample {
	entities := make([]*entity.FocusSample, len(samples))
	for i, s := range samples {
		entities[i] = m.SampleToEntity(s)
	}
	return entities
}

func (m *SessionMapper) SamplesToModels(samples []*entity.FocusSample) []*model.FocusSample {
	models := make([]*model.FocusSample, len(samples))
	for i, s := range samples {
		models[i] = m.SampleToModel(s)
	}
	return models
}
