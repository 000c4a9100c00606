package repository

import (
	"context"
	"errors"

	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	// CreateIfAbsent inserts a notification unless its dedup key already
	// exists; returns true when a new row was created.
	CreateIfAbsent(ctx context.Context, n *model.Notification) (bool, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, unreadOnly bool) ([]model.Notification, error)
	MarkRead(ctx context.Context, profileID, id uuid.UUID) error
}

type notificationRepo struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) CreateIfAbsent(ctx context.Context, n *model.Notification) (bool, error) {
	var existing model.Notification
	err := r.db.WithContext(ctx).Where("dedup_key = ?", n.DedupKey).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *notificationRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, unreadOnly bool) ([]model.Notification, error) {
	var items []model.Notification
	q := r.db.WithContext(ctx).Where("profile_id = ?", profileID)
	if unreadOnly {
		q = q.Where("read = false")
	}
	err := q.Order("created_at DESC").Limit(100).Find(&items).Error
	return items, err
}

func (r *notificationRepo) MarkRead(ctx context.Context, profileID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Update("read", true).Error
}
