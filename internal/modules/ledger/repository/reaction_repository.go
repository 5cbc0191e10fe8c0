package repository

import (
	"context"
	"fmt"

	"github.com/x00/Application-Yaga/internal/entity"
	"gorm.io/gorm"
)

// ReactionRepository exposes exactly the access patterns the ledger uses.
type ReactionRepository interface {
	// FindByUser returns the single reaction a user holds against one piece
	// of content, or nil when there is none.
	FindByUser(ctx context.Context, parentID int64, parentType entity.ParentType, userID int64) (*entity.Reaction, error)
	// ListReactors returns the reactions for one action on one piece of
	// content, in store natural order.
	ListReactors(ctx context.Context, actionID, parentID int64, parentType entity.ParentType) ([]entity.Reaction, error)
	// CountReceived counts reactions of one action received by an author
	// across all of their content.
	CountReceived(ctx context.Context, authorID, actionID int64) (int64, error)
	Create(ctx context.Context, reaction *entity.Reaction) error
	Update(ctx context.Context, reaction *entity.Reaction) error
	Delete(ctx context.Context, reaction *entity.Reaction) error
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) FindByUser(ctx context.Context, parentID int64, parentType entity.ParentType, userID int64) (*entity.Reaction, error) {
	// Use Find with slice to avoid "record not found" log noise from GORM's First()
	var existing []entity.Reaction
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND parent_type = ? AND insert_user_id = ?",
			parentID, parentType, userID).
		Limit(1).
		Find(&existing).Error
	if err != nil {
		return nil, fmt.Errorf("find user reaction: %w", err)
	}
	if len(existing) == 0 {
		return nil, nil
	}
	return &existing[0], nil
}

func (r *reactionRepository) ListReactors(ctx context.Context, actionID, parentID int64, parentType entity.ParentType) ([]entity.Reaction, error) {
	var reactions []entity.Reaction
	err := r.db.WithContext(ctx).
		Where("action_id = ? AND parent_id = ? AND parent_type = ?",
			actionID, parentID, parentType).
		Find(&reactions).Error
	if err != nil {
		return nil, fmt.Errorf("list reactors: %w", err)
	}
	return reactions, nil
}

func (r *reactionRepository) CountReceived(ctx context.Context, authorID, actionID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Reaction{}).
		Where("parent_author_id = ? AND action_id = ?", authorID, actionID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count received reactions: %w", err)
	}
	return count, nil
}

func (r *reactionRepository) Create(ctx context.Context, reaction *entity.Reaction) error {
	if err := r.db.WithContext(ctx).Create(reaction).Error; err != nil {
		return fmt.Errorf("create reaction: %w", err)
	}
	return nil
}

func (r *reactionRepository) Update(ctx context.Context, reaction *entity.Reaction) error {
	if err := r.db.WithContext(ctx).Save(reaction).Error; err != nil {
		return fmt.Errorf("update reaction: %w", err)
	}
	return nil
}

func (r *reactionRepository) Delete(ctx context.Context, reaction *entity.Reaction) error {
	if err := r.db.WithContext(ctx).Delete(reaction).Error; err != nil {
		return fmt.Errorf("delete reaction: %w", err)
	}
	return nil
}
