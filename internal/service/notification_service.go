package service

import (
	"context"
	"fmt"

	"questing/internal/middleware"
	"questing/internal/models"
	"questing/internal/notifications"
	"questing/internal/repository"
)

// NotificationService appends to and reads the per-user notification feed.
//
// Writes are append-only and deliberately not idempotent: a retried invite
// produces a second row. Reads are free of side effects so clients may poll
// at any frequency.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	notifier         *notifications.Notifier
}

// NewNotificationService creates a new notification service.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	notifier *notifications.Notifier,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		notifier:         notifier,
	}
}

// Notify appends a notification row and publishes it to the recipient's
// Redis channel. Publish failures are logged, never surfaced: the stored row
// is the delivery contract, the channel is a bonus for push consumers.
func (s *NotificationService) Notify(ctx context.Context, userID uint, typ models.NotificationType, title, content string) (*models.Notification, error) {
	if userID == 0 || title == "" {
		return nil, models.NewValidationError("User ID and title are required!")
	}
	if typ == "" {
		typ = models.NotificationTypeGeneric
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Content: content,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	middleware.NotificationFanout.WithLabelValues(string(typ)).Inc()

	if s.notifier != nil {
		if err := s.notifier.PublishUser(ctx, notification); err != nil {
			middleware.Logger.WarnContext(ctx, "notification publish failed",
				"user_id", userID, "type", typ, "error", err)
		}
	}
	return notification, nil
}

// NotifyInvite resolves the invited email to an account and notifies it.
// Returns NOT_FOUND when no account matches; the workspace invite flow treats
// that as a logged no-op (best-effort semantics).
func (s *NotificationService) NotifyInvite(ctx context.Context, email, workspaceName, inviterName string) (*models.Notification, error) {
	if email == "" || workspaceName == "" {
		return nil, models.NewValidationError("Email and workspace name are required!")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", email)
	}

	title := "Workspace invitation"
	content := fmt.Sprintf("%s invited you to join %q", inviterName, workspaceName)
	return s.Notify(ctx, user.ID, models.NotificationTypeInvite, title, content)
}

// ListNotifications returns the user's 50 most recent notifications, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, userID uint) ([]*models.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID)
}
