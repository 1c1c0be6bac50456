package service

import (
	"context"

	"questing/internal/cache"
	"questing/internal/models"
	"questing/internal/repository"
)

const (
	maxPostTitleLen = 100
	maxPostTextsLen = 600
)

// PostService handles public feed posts and toggle-like semantics.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the create-post request fields.
type CreatePostInput struct {
	UserID uint
	Title  string
	Texts  string
}

// ToggleLikeResult reports the outcome of a toggle-like operation.
type ToggleLikeResult struct {
	Action models.ToggleAction `json:"action"`
	Liked  bool                `json:"liked"`
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.UserID == 0 || in.Title == "" || in.Texts == "" {
		return nil, models.NewValidationError("All fields are required!")
	}
	if len(in.Title) > maxPostTitleLen {
		return nil, models.NewValidationError("Title must be less than 100 characters!")
	}
	if len(in.Texts) > maxPostTextsLen {
		return nil, models.NewValidationError("Post content must be less than 600 characters!")
	}

	post := &models.Post{
		UserID: in.UserID,
		Title:  in.Title,
		Texts:  in.Texts,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns all posts newest-first, annotated with the requesting
// user's liked state. The anonymous list is served cache-aside; liked state
// is re-annotated per requester so cached entries stay user-neutral.
func (s *PostService) ListPosts(ctx context.Context, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.Aside(ctx, cache.PostsListKey(), &posts, cache.PostsListTTL, func() error {
		var fetchErr error
		posts, fetchErr = s.postRepo.List(ctx, 0)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	if currentUserID != 0 && len(posts) > 0 {
		if err := s.annotateLiked(ctx, posts, currentUserID); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func (s *PostService) ListPostsByUser(ctx context.Context, userID, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.ListByUser(ctx, userID, currentUserID)
}

func (s *PostService) DeletePost(ctx context.Context, postID uint) error {
	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the like state of (post, user). Owners cannot like their
// own posts. Toggling twice returns the post to its original state.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID uint) (*ToggleLikeResult, error) {
	if userID == 0 {
		return nil, models.NewValidationError("User ID is required!")
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID == userID {
		return nil, models.NewForbiddenError("You cannot like your own post!")
	}

	action, err := s.postRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return &ToggleLikeResult{
		Action: action,
		Liked:  action == models.ToggleActionLiked,
	}, nil
}

func (s *PostService) annotateLiked(ctx context.Context, posts []*models.Post, currentUserID uint) error {
	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}
	likedIDs, err := s.postRepo.LikedPostIDs(ctx, currentUserID, postIDs)
	if err != nil {
		return err
	}
	liked := make(map[uint]bool, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = true
	}
	for _, p := range posts {
		p.UserLiked = liked[p.ID]
	}
	return nil
}
