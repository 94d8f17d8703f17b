package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/infrastructure/persistence/models"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func ticketToDomain(m models.TicketModel) moderation.TicketBatch {
	return moderation.TicketBatch{
		ID:        m.ID,
		AgentID:   m.AgentID,
		AgentName: m.AgentName,
		Count:     m.Count,
		Timestamp: m.Timestamp,
	}
}

func (r *TicketRepository) Append(ctx context.Context, b moderation.TicketBatch) (int64, error) {
	model := models.TicketModel{
		AgentID:   b.AgentID,
		AgentName: b.AgentName,
		Count:     b.Count,
		Timestamp: b.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return 0, fmt.Errorf("failed to append ticket batch: %w", err)
	}
	return model.ID, nil
}

func (r *TicketRepository) TotalByAgent(ctx context.Context, agentID string) (int64, error) {
	var total *int64
	err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Select("SUM(count)").
		Where("agent_id = ?", agentID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum tickets for agent %s: %w", agentID, err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *TicketRepository) TotalsByAgent(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		AgentID string
		Total   int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Select("agent_id, SUM(count) AS total").
		Group("agent_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum tickets: %w", err)
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.AgentID] = row.Total
	}
	return totals, nil
}

func (r *TicketRepository) ListByPeriod(ctx context.Context, p moderation.Period) ([]moderation.TicketBatch, error) {
	var rows []models.TicketModel
	err := r.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp < ?", p.Start(), p.End()).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket batches for period %s: %w", p, err)
	}

	batches := make([]moderation.TicketBatch, 0, len(rows))
	for _, row := range rows {
		batches = append(batches, ticketToDomain(row))
	}
	return batches, nil
}

func (r *TicketRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.TicketModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete ticket batches: %w", result.Error)
	}
	return result.RowsAffected, nil
}
