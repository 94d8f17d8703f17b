package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/infrastructure/persistence/models"
)

type PunishmentRepository struct {
	db *gorm.DB
}

func NewPunishmentRepository(db *gorm.DB) *PunishmentRepository {
	return &PunishmentRepository{db: db}
}

func punishmentToModel(p moderation.Punishment) models.PunishmentModel {
	return models.PunishmentModel{
		ID:            p.ID,
		MemberID:      p.MemberID,
		MemberName:    p.MemberName,
		Kind:          p.Kind.String(),
		Reason:        p.Reason,
		ChannelID:     p.ChannelID,
		ChannelName:   p.ChannelName,
		Timestamp:     p.Timestamp,
		DurationHours: p.DurationHours,
		EndAt:         p.EndAt,
	}
}

func punishmentToDomain(m models.PunishmentModel) moderation.Punishment {
	return moderation.Punishment{
		ID:            m.ID,
		MemberID:      m.MemberID,
		MemberName:    m.MemberName,
		Kind:          moderation.PunishmentKind(m.Kind),
		Reason:        m.Reason,
		ChannelID:     m.ChannelID,
		ChannelName:   m.ChannelName,
		Timestamp:     m.Timestamp,
		DurationHours: m.DurationHours,
		EndAt:         m.EndAt,
	}
}

func (r *PunishmentRepository) Append(ctx context.Context, p moderation.Punishment) (int64, error) {
	model := punishmentToModel(p)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return 0, fmt.Errorf("failed to append punishment: %w", err)
	}
	return model.ID, nil
}

// ListByMember returns punishments most-recent-first by insertion id, the
// order the policy engine requires.
func (r *PunishmentRepository) ListByMember(ctx context.Context, memberID string) ([]moderation.Punishment, error) {
	var rows []models.PunishmentModel
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list punishments for member %s: %w", memberID, err)
	}
	return punishmentsToDomain(rows), nil
}

func (r *PunishmentRepository) ListByPeriod(ctx context.Context, p moderation.Period) ([]moderation.Punishment, error) {
	var rows []models.PunishmentModel
	err := r.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp < ?", p.Start(), p.End()).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list punishments for period %s: %w", p, err)
	}
	return punishmentsToDomain(rows), nil
}

// CountsByMember returns per-member punishment counts grouped by kind.
func (r *PunishmentRepository) CountsByMember(ctx context.Context) (map[string]moderation.KindCounts, error) {
	var rows []struct {
		MemberID string
		Kind     string
		Count    int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.PunishmentModel{}).
		Select("member_id, kind, COUNT(*) AS count").
		Group("member_id, kind").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count punishments: %w", err)
	}

	counts := make(map[string]moderation.KindCounts, len(rows))
	for _, row := range rows {
		c := counts[row.MemberID]
		switch moderation.PunishmentKind(row.Kind) {
		case moderation.KindWarn:
			c.Warns = row.Count
		case moderation.KindMute:
			c.Mutes = row.Count
		case moderation.KindBan:
			c.Bans = row.Count
		}
		counts[row.MemberID] = c
	}
	return counts, nil
}

// LatestByMember returns each member's single most recent punishment,
// ties broken by insertion id.
func (r *PunishmentRepository) LatestByMember(ctx context.Context) (map[string]moderation.Punishment, error) {
	var rows []models.PunishmentModel
	err := r.db.WithContext(ctx).
		Where("id IN (SELECT MAX(id) FROM punishments GROUP BY member_id)").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find latest punishments: %w", err)
	}

	latest := make(map[string]moderation.Punishment, len(rows))
	for _, row := range rows {
		latest[row.MemberID] = punishmentToDomain(row)
	}
	return latest, nil
}

func (r *PunishmentRepository) DeleteByMember(ctx context.Context, memberID string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.PunishmentModel{}, "member_id = ?", memberID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete punishments for member %s: %w", memberID, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *PunishmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.PunishmentModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete punishments: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func punishmentsToDomain(rows []models.PunishmentModel) []moderation.Punishment {
	punishments := make([]moderation.Punishment, 0, len(rows))
	for _, row := range rows {
		punishments = append(punishments, punishmentToDomain(row))
	}
	return punishments
}
