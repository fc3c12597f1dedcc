package service

import (
	"context"
	"fmt"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/mapper"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService exposes the party inbox. Entries are written by the
// negotiation and contract services inside their own transactions.
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	settings         Settings
	logger           *zap.Logger
}

// NewNotificationService creates a new NotificationService instance
func NewNotificationService(
	notificationRepo *repository.NotificationRepository,
	settings Settings,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		settings:         settings,
		logger:           logger,
	}
}

// ListForCurrentParty returns the caller's notifications, newest first
func (s *NotificationService) ListForCurrentParty(ctx context.Context, page, pageSize int, unreadOnly bool) (*domain.PaginatedResponse, error) {
	party, err := currentParty(ctx)
	if err != nil {
		return nil, err
	}
	page, pageSize = s.settings.normalizePage(page, pageSize)

	notifications, total, err := s.notificationRepo.ListByParty(ctx, party.PartyID, page, pageSize, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	dtos := make([]domain.NotificationDTO, len(notifications))
	for i := range notifications {
		dtos[i] = mapper.ToNotificationDTO(&notifications[i])
	}

	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// UnreadCount returns the number of unread notifications of the caller
func (s *NotificationService) UnreadCount(ctx context.Context) (*domain.UnreadCountDTO, error) {
	party, err := currentParty(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.notificationRepo.CountUnread(ctx, party.PartyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}
	return &domain.UnreadCountDTO{Count: count}, nil
}

// MarkAsRead marks one of the caller's notifications as read
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	party, err := currentParty(ctx)
	if err != nil {
		return err
	}
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, ErrNotificationNotFound)
	}
	if notification.PartyID != party.PartyID {
		// Do not reveal other parties' notifications
		return ErrNotificationNotFound
	}
	if notification.Read {
		return nil
	}
	if err := s.notificationRepo.MarkAsRead(ctx, id); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

// MarkAllAsRead marks every notification of the caller as read
func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	party, err := currentParty(ctx)
	if err != nil {
		return err
	}
	if err := s.notificationRepo.MarkAllAsRead(ctx, party.PartyID); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// notify writes an inbox entry through repo, which is expected to be bound to
// the caller's transaction
func notify(ctx context.Context, repo *repository.NotificationRepository, partyID string, kind domain.NotificationType, title, message, entityType string, entityID uuid.UUID) error {
	id := entityID
	return repo.Create(ctx, &domain.Notification{
		PartyID:    partyID,
		Type:       kind,
		Title:      title,
		Message:    message,
		EntityType: entityType,
		EntityID:   &id,
	})
}
