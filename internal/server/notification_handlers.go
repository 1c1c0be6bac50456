package server

import (
	"questing/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateNotification handles POST /api/notifications
func (s *Server) CreateNotification(c *fiber.Ctx) error {
	var req struct {
		UserID  uint   `json:"user_id"`
		Type    string `json:"type"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	notification, err := s.notificationService.Notify(c.UserContext(),
		req.UserID, models.NotificationType(req.Type), req.Title, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Notification created successfully!",
		"id":      notification.ID,
	})
}

// CreateInviteNotification handles POST /api/notifications/invite
func (s *Server) CreateInviteNotification(c *fiber.Ctx) error {
	var req struct {
		Email         string `json:"email"`
		WorkspaceName string `json:"workspace_name"`
		InviterName   string `json:"inviter_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	notification, err := s.notificationService.NotifyInvite(c.UserContext(),
		req.Email, req.WorkspaceName, req.InviterName)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Invite notification created successfully!",
		"id":      notification.ID,
	})
}

// GetNotifications handles GET /api/notifications/:userId
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	notifications, err := s.notificationService.ListNotifications(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notifications)
}
