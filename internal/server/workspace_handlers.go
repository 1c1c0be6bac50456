package server

import (
	"questing/internal/models"
	"questing/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateWorkspace handles POST /api/workspaces
func (s *Server) CreateWorkspace(c *fiber.Ctx) error {
	var req struct {
		UserID      uint   `json:"user_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ws, err := s.workspaceService.CreateWorkspace(c.UserContext(), service.CreateWorkspaceInput{
		OwnerID:     req.UserID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Workspace created successfully!",
		"workspaceId": ws.ID,
		"workspace":   ws,
	})
}

// GetWorkspaces handles GET /api/workspaces?user_id=
func (s *Server) GetWorkspaces(c *fiber.Ctx) error {
	userID := s.currentUserID(c, "user_id")

	workspaces, err := s.workspaceService.ListWorkspaces(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workspaces)
}

// GetWorkspace handles GET /api/workspaces/:id
func (s *Server) GetWorkspace(c *fiber.Ctx) error {
	wsID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ws, err := s.workspaceService.GetWorkspace(c.UserContext(), wsID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ws)
}

// DeleteWorkspace handles DELETE /api/workspaces/:id
func (s *Server) DeleteWorkspace(c *fiber.Ctx) error {
	wsID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		RequesterID uint `json:"requester_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.workspaceService.DeleteWorkspace(c.UserContext(), wsID, req.RequesterID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Workspace deleted successfully!",
	})
}

// InviteMember handles POST /api/workspaces/:id/invite
func (s *Server) InviteMember(c *fiber.Ctx) error {
	wsID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		InviterID uint   `json:"inviter_id"`
		Email     string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	member, err := s.workspaceService.InviteMember(c.UserContext(), wsID, req.InviterID, req.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Member invited successfully!",
		"member":  member,
	})
}

// RemoveMember handles DELETE /api/workspaces/:id/members/:memberId
func (s *Server) RemoveMember(c *fiber.Ctx) error {
	wsID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	memberID, err := s.parseID(c, "memberId")
	if err != nil {
		return nil
	}

	var req struct {
		RequesterID uint `json:"requester_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.workspaceService.RemoveMember(c.UserContext(), wsID, req.RequesterID, memberID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Member removed successfully!",
	})
}

// SearchUsers handles GET /api/workspaces/:id/search-users?q=&user_id=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	wsID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	requesterID := s.currentUserID(c, "user_id")

	results, err := s.workspaceService.SearchUsers(c.UserContext(), c.Query("q"), wsID, requesterID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(results)
}

// CreateWorkspacePost handles POST /api/collaboration-posts
func (s *Server) CreateWorkspacePost(c *fiber.Ctx) error {
	var req struct {
		WorkspaceID uint   `json:"workspace_id"`
		UserID      uint   `json:"user_id"`
		Title       string `json:"title"`
		Content     string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.workspaceService.CreateWorkspacePost(c.UserContext(), service.CreateWorkspacePostInput{
		WorkspaceID: req.WorkspaceID,
		AuthorID:    req.UserID,
		Title:       req.Title,
		Content:     req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully!",
		"postId":  post.ID,
		"post":    post,
	})
}

// GetWorkspacePosts handles GET /api/collaboration-posts/:workspaceId
func (s *Server) GetWorkspacePosts(c *fiber.Ctx) error {
	wsID, err := s.parseID(c, "workspaceId")
	if err != nil {
		return nil
	}

	posts, err := s.workspaceService.ListWorkspacePosts(c.UserContext(), wsID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// DeleteWorkspacePost handles DELETE /api/collaboration-posts/:id
func (s *Server) DeleteWorkspacePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.workspaceService.DeleteWorkspacePost(c.UserContext(), postID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted successfully!",
	})
}
