package server

import (
	"questing/internal/models"
	"questing/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		UserID uint   `json:"user_id"`
		Title  string `json:"title"`
		Texts  string `json:"texts"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID: req.UserID,
		Title:  req.Title,
		Texts:  req.Texts,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully!",
		"postId":  post.ID,
	})
}

// GetPosts handles GET /api/posts?current_user_id=
func (s *Server) GetPosts(c *fiber.Ctx) error {
	currentUserID := s.currentUserID(c, "current_user_id")

	posts, err := s.postService.ListPosts(c.UserContext(), currentUserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPostsByUser handles GET /api/posts/user/:id?current_user_id=
func (s *Server) GetPostsByUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID := s.currentUserID(c, "current_user_id")

	posts, err := s.postService.ListPostsByUser(c.UserContext(), userID, currentUserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), postID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted successfully!",
	})
}

// ToggleLike handles PUT /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.postService.ToggleLike(c.UserContext(), postID, req.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
