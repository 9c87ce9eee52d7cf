// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
	"github.com/fundflow/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create creates a new notification.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Create(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a notification by its ID, scoped to the owning user.
func (r *notificationRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notificationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNotificationNotFound
		}
		return nil, result.Error
	}
	return notificationModel.ToEntity(), nil
}

// FindByUserID retrieves all notifications for a user, newest first.
func (r *notificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var notificationModels []model.NotificationModel
	result := query.Order("created_at DESC").Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}

// Update saves changes to a notification.
func (r *notificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Save(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a notification, scoped to the owner.
func (r *notificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&model.NotificationModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNotificationNotFound
	}
	return nil
}
