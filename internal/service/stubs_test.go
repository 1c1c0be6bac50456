package service

import (
	"context"
	"errors"
	"testing"

	"questing/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn     func(context.Context, *models.User) error
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint) (*models.Post, error)
	listFn         func(context.Context, uint) ([]*models.Post, error)
	listByUserFn   func(context.Context, uint, uint) ([]*models.Post, error)
	deleteFn       func(context.Context, uint) error
	toggleLikeFn   func(context.Context, uint, uint) (models.ToggleAction, error)
	isLikedFn      func(context.Context, uint, uint) (bool, error)
	likedPostIDsFn func(context.Context, uint, []uint) ([]uint, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, currentUserID)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID, currentUserID uint) ([]*models.Post, error) {
	return s.listByUserFn(ctx, userID, currentUserID)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) ToggleLike(ctx context.Context, postID, userID uint) (models.ToggleAction, error) {
	return s.toggleLikeFn(ctx, postID, userID)
}
func (s *postRepoStub) IsLiked(ctx context.Context, postID, userID uint) (bool, error) {
	return s.isLikedFn(ctx, postID, userID)
}
func (s *postRepoStub) LikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	return s.likedPostIDsFn(ctx, userID, postIDs)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:       func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:      func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn:         func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		listByUserFn:   func(_ context.Context, _, _ uint) ([]*models.Post, error) { return nil, nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
		toggleLikeFn:   func(_ context.Context, _, _ uint) (models.ToggleAction, error) { return models.ToggleActionLiked, nil },
		isLikedFn:      func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		likedPostIDsFn: func(_ context.Context, _ uint, _ []uint) ([]uint, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// workspaceRepoStub is a stub for repository.WorkspaceRepository.
type workspaceRepoStub struct {
	createFn                  func(context.Context, *models.Workspace, *models.WorkspaceMember) error
	getByIDFn                 func(context.Context, uint) (*models.Workspace, error)
	listByUserFn              func(context.Context, uint) ([]*models.Workspace, error)
	deleteFn                  func(context.Context, uint) error
	addMemberFn               func(context.Context, *models.WorkspaceMember) error
	removeMemberFn            func(context.Context, uint, uint) error
	createPostFn              func(context.Context, *models.WorkspacePost) error
	listPostsFn               func(context.Context, uint) ([]*models.WorkspacePost, error)
	deletePostFn              func(context.Context, uint) error
	searchMembersByNameFn     func(context.Context, string) ([]*models.WorkspaceMember, error)
	searchPostsByAuthorNameFn func(context.Context, string) ([]*models.WorkspacePost, error)
}

func (s *workspaceRepoStub) Create(ctx context.Context, ws *models.Workspace, owner *models.WorkspaceMember) error {
	return s.createFn(ctx, ws, owner)
}
func (s *workspaceRepoStub) GetByID(ctx context.Context, id uint) (*models.Workspace, error) {
	return s.getByIDFn(ctx, id)
}
func (s *workspaceRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.Workspace, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *workspaceRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *workspaceRepoStub) AddMember(ctx context.Context, member *models.WorkspaceMember) error {
	return s.addMemberFn(ctx, member)
}
func (s *workspaceRepoStub) RemoveMember(ctx context.Context, workspaceID, memberUserID uint) error {
	return s.removeMemberFn(ctx, workspaceID, memberUserID)
}
func (s *workspaceRepoStub) CreatePost(ctx context.Context, post *models.WorkspacePost) error {
	return s.createPostFn(ctx, post)
}
func (s *workspaceRepoStub) ListPosts(ctx context.Context, workspaceID uint) ([]*models.WorkspacePost, error) {
	return s.listPostsFn(ctx, workspaceID)
}
func (s *workspaceRepoStub) DeletePost(ctx context.Context, postID uint) error {
	return s.deletePostFn(ctx, postID)
}
func (s *workspaceRepoStub) SearchMembersByName(ctx context.Context, query string) ([]*models.WorkspaceMember, error) {
	return s.searchMembersByNameFn(ctx, query)
}
func (s *workspaceRepoStub) SearchPostsByAuthorName(ctx context.Context, query string) ([]*models.WorkspacePost, error) {
	return s.searchPostsByAuthorNameFn(ctx, query)
}

func noopWorkspaceRepo() *workspaceRepoStub {
	return &workspaceRepoStub{
		createFn: func(_ context.Context, ws *models.Workspace, _ *models.WorkspaceMember) error {
			ws.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Workspace, error) {
			return &models.Workspace{ID: id, Name: "Team", OwnerID: 1}, nil
		},
		listByUserFn:   func(_ context.Context, _ uint) ([]*models.Workspace, error) { return nil, nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
		addMemberFn:    func(_ context.Context, _ *models.WorkspaceMember) error { return nil },
		removeMemberFn: func(_ context.Context, _, _ uint) error { return nil },
		createPostFn:   func(_ context.Context, _ *models.WorkspacePost) error { return nil },
		listPostsFn:    func(_ context.Context, _ uint) ([]*models.WorkspacePost, error) { return nil, nil },
		deletePostFn:   func(_ context.Context, _ uint) error { return nil },
		searchMembersByNameFn: func(_ context.Context, _ string) ([]*models.WorkspaceMember, error) {
			return nil, nil
		},
		searchPostsByAuthorNameFn: func(_ context.Context, _ string) ([]*models.WorkspacePost, error) {
			return nil, nil
		},
	}
}

// notificationRepoStub is a stub for repository.NotificationRepository.
type notificationRepoStub struct {
	createFn     func(context.Context, *models.Notification) error
	listByUserFn func(context.Context, uint) ([]*models.Notification, error)
}

func (s *notificationRepoStub) Create(ctx context.Context, notification *models.Notification) error {
	return s.createFn(ctx, notification)
}
func (s *notificationRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.Notification, error) {
	return s.listByUserFn(ctx, userID)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		createFn:     func(_ context.Context, _ *models.Notification) error { return nil },
		listByUserFn: func(_ context.Context, _ uint) ([]*models.Notification, error) { return nil, nil },
	}
}

// assertAppError asserts that err is an AppError with the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeValidation)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeForbidden)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeNotFound)
}
