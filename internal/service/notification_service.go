package service

import (
	"context"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"

	"github.com/google/uuid"
)

type NotificationService interface {
	List(ctx context.Context, profileID uuid.UUID, unreadOnly bool) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, profileID, id uuid.UUID) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, profileID uuid.UUID, unreadOnly bool) ([]dto.NotificationResponse, error) {
	items, err := s.repo.ListByProfile(ctx, profileID, unreadOnly)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NotificationResponse, len(items))
	for i, n := range items {
		resp[i] = dto.NotificationResponse{
			ID:        n.ID.String(),
			Kind:      n.Kind,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	return resp, nil
}

func (s *notificationService) MarkRead(ctx context.Context, profileID, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, profileID, id)
}
