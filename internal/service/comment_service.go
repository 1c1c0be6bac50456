package service

import (
	"context"
	"strings"

	"questing/internal/models"
	"questing/internal/repository"
)

const maxCommentLen = 500

// CommentService handles comments on public posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// AddCommentInput carries the add-comment request fields.
type AddCommentInput struct {
	PostID uint
	UserID uint
	Text   string
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	text := strings.TrimSpace(in.Text)
	if in.UserID == 0 || text == "" {
		return nil, models.NewValidationError("Comment text is required!")
	}
	if len(text) > maxCommentLen {
		return nil, models.NewValidationError("Comment must be less than 500 characters!")
	}

	// The post must exist; commenting on a deleted post is a 404.
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:      in.PostID,
		UserID:      in.UserID,
		CommentText: text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// DeleteComment removes a comment; only its author may delete it.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, requesterID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != requesterID {
		return models.NewForbiddenError("You can only delete your own comments!")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
