package repository

import (
	"context"
	"fmt"

	"github.com/x00/Application-Yaga/internal/entity"
	"github.com/x00/Application-Yaga/pkg/apperror"
	"gorm.io/gorm"
)

type ActionRepository interface {
	// ListOrdered returns every configured action ordered by action_id.
	ListOrdered(ctx context.Context) ([]entity.Action, error)
	FindByID(ctx context.Context, actionID int64) (*entity.Action, error)
}

type actionRepository struct {
	db *gorm.DB
}

func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

func (r *actionRepository) ListOrdered(ctx context.Context) ([]entity.Action, error) {
	var actions []entity.Action
	err := r.db.WithContext(ctx).
		Order("action_id ASC").
		Find(&actions).Error
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	return actions, nil
}

func (r *actionRepository) FindByID(ctx context.Context, actionID int64) (*entity.Action, error) {
	// Use Find with slice to avoid "record not found" log noise from GORM's First()
	var actions []entity.Action
	err := r.db.WithContext(ctx).
		Where("action_id = ?", actionID).
		Limit(1).
		Find(&actions).Error
	if err != nil {
		return nil, fmt.Errorf("find action %d: %w", actionID, err)
	}
	if len(actions) == 0 {
		return nil, apperror.ErrNotFound
	}
	return &actions[0], nil
}
