package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/infrastructure/persistence/models"
)

type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

func logToModel(e moderation.LogEntry) models.LogModel {
	return models.LogModel{
		ID:          e.ID,
		MemberID:    e.MemberID,
		MemberName:  e.MemberName,
		GuildID:     e.GuildScope,
		ChannelID:   e.ChannelID,
		ChannelName: e.ChannelName,
		Message:     e.Message,
		Timestamp:   e.Timestamp,
	}
}

func logToDomain(m models.LogModel) moderation.LogEntry {
	return moderation.LogEntry{
		ID:          m.ID,
		MemberID:    m.MemberID,
		MemberName:  m.MemberName,
		GuildScope:  m.GuildID,
		ChannelID:   m.ChannelID,
		ChannelName: m.ChannelName,
		Message:     m.Message,
		Timestamp:   m.Timestamp,
	}
}

func (r *LogRepository) Append(ctx context.Context, e moderation.LogEntry) (int64, error) {
	model := logToModel(e)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return 0, fmt.Errorf("failed to append log entry: %w", err)
	}
	return model.ID, nil
}

func (r *LogRepository) ListByMember(ctx context.Context, memberID string) ([]moderation.LogEntry, error) {
	var rows []models.LogModel
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list logs for member %s: %w", memberID, err)
	}
	return logsToDomain(rows), nil
}

func (r *LogRepository) ListByPeriod(ctx context.Context, p moderation.Period) ([]moderation.LogEntry, error) {
	var rows []models.LogModel
	err := r.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp < ?", p.Start(), p.End()).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list logs for period %s: %w", p, err)
	}
	return logsToDomain(rows), nil
}

func (r *LogRepository) DeleteByMember(ctx context.Context, memberID string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.LogModel{}, "member_id = ?", memberID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete logs for member %s: %w", memberID, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *LogRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.LogModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete logs: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func logsToDomain(rows []models.LogModel) []moderation.LogEntry {
	entries := make([]moderation.LogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, logToDomain(row))
	}
	return entries
}
