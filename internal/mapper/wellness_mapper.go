package mapper

import (
	"mindgarden-be/internal/entity"
	"mindgarden-be/internal/model"
	"mindgarden-be/pkg/mood"
)

type WellnessMapper struct{}

func NewWellnessMapper() *WellnessMapper {
	return &WellnessMapper{}
}

func (m *WellnessMapper) UserToModel(e *entity.User) *model.User {
	if e == nil {
		return nil
	}
	return &model.User{
		Id:        e.Id,
		SessionId: e.SessionId,
		Name:      e.Name,
		Age:       e.Age,
		Gender:    e.Gender,
		Lifestyle: e.Lifestyle,
		CreatedAt: e.CreatedAt,
	}
}

func (m *WellnessMapper) UserToEntity(mo *model.User) *entity.User {
	if mo == nil {
		return nil
	}
	return &entity.User{
		Id:        mo.Id,
		SessionId: mo.SessionId,
		Name:      mo.Name,
		Age:       mo.Age,
		Gender:    mo.Gender,
		Lifestyle: mo.Lifestyle,
		CreatedAt: mo.CreatedAt,
	}
}

func (m *WellnessMapper) CheckInToModel(e *entity.CheckIn) *model.CheckIn {
	if e == nil {
		return nil
	}
	return &model.CheckIn{
		Id:             e.Id,
		SessionId:      e.SessionId,
		JournalText:    e.JournalText,
		SleepHours:     e.SleepHours,
		ScreenHours:    e.ScreenHours,
		ExerciseLevel:  string(e.ExerciseLevel),
		OutdoorMinutes: e.OutdoorMinutes,
		Polarity:       e.Polarity,
		Score:          e.Score,
		Tier:           string(e.Tier),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *WellnessMapper) CheckInToEntity(mo *model.CheckIn) *entity.CheckIn {
	if mo == nil {
		return nil
	}
	return &entity.CheckIn{
		Id:             mo.Id,
		SessionId:      mo.SessionId,
		JournalText:    mo.JournalText,
		SleepHours:     mo.SleepHours,
		ScreenHours:    mo.ScreenHours,
		ExerciseLevel:  mood.ExerciseLevel(mo.ExerciseLevel),
		OutdoorMinutes: mo.OutdoorMinutes,
		Polarity:       mo.Polarity,
		Score:          mo.Score,
		Tier:           mood.Tier(mo.Tier),
		CreatedAt:      mo.CreatedAt,
	}
}

func (m *WellnessMapper) FeedbackToModel(e *entity.FeedbackEntry) *model.FeedbackEntry {
	if e == nil {
		return nil
	}
	return &model.FeedbackEntry{
		Id:        e.Id,
		SessionId: e.SessionId,
		Name:      e.Name,
		Text:      e.Text,
		Rating:    e.Rating,
		CreatedAt: e.CreatedAt,
	}
}

func (m *WellnessMapper) FeedbackToEntity(mo *model.FeedbackEntry) *entity.FeedbackEntry {
	if mo == nil {
		return nil
	}
	return &entity.FeedbackEntry{
		Id:        mo.Id,
		SessionId: mo.SessionId,
		Name:      mo.Name,
		Text:      mo.Text,
		Rating:    mo.Rating,
		CreatedAt: mo.CreatedAt,
	}
}
