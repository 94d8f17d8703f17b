package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/infrastructure/persistence/models"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func memberToModel(m moderation.Member) models.MemberModel {
	return models.MemberModel{
		ID:       m.MemberID,
		GuildID:  m.GuildScope,
		Name:     m.Name,
		JoinedAt: m.JoinedAt,
	}
}

func memberToDomain(m models.MemberModel) moderation.Member {
	return moderation.Member{
		MemberID:   m.ID,
		GuildScope: m.GuildID,
		Name:       m.Name,
		JoinedAt:   m.JoinedAt,
	}
}

func (r *MemberRepository) Upsert(ctx context.Context, m moderation.Member) error {
	model := memberToModel(m)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"guild_id", "name", "joined_at"}),
		}).
		Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert member: %w", err)
	}
	return nil
}

// UpsertBatch runs every upsert inside one transaction so a failure on
// any row rolls back the whole batch.
func (r *MemberRepository) UpsertBatch(ctx context.Context, members []moderation.Member) (int, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range members {
			model := memberToModel(m)
			if err := tx.
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "id"}},
					DoUpdates: clause.AssignmentColumns([]string{"guild_id", "name", "joined_at"}),
				}).
				Create(&model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert member batch: %w", err)
	}
	return len(members), nil
}

func (r *MemberRepository) Delete(ctx context.Context, memberID string) error {
	result := r.db.WithContext(ctx).Delete(&models.MemberModel{}, "id = ?", memberID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete member: %w", result.Error)
	}
	return nil
}

func (r *MemberRepository) FindByID(ctx context.Context, memberID string) (*moderation.Member, error) {
	var model models.MemberModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	m := memberToDomain(model)
	return &m, nil
}

func (r *MemberRepository) List(ctx context.Context, guildScope *string) ([]moderation.Member, error) {
	var rows []models.MemberModel
	query := r.db.WithContext(ctx).Order("id")
	if guildScope != nil {
		// Unscoped members belong to every guild view.
		query = query.Where("guild_id IS NULL OR guild_id = ?", *guildScope)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]moderation.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, memberToDomain(row))
	}
	return members, nil
}
