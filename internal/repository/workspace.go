package repository

import (
	"context"
	"errors"

	"questing/internal/cache"
	"questing/internal/models"

	"gorm.io/gorm"
)

// WorkspaceRepository defines the interface for workspace data operations
type WorkspaceRepository interface {
	Create(ctx context.Context, ws *models.Workspace, owner *models.WorkspaceMember) error
	GetByID(ctx context.Context, id uint) (*models.Workspace, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Workspace, error)
	Delete(ctx context.Context, id uint) error

	AddMember(ctx context.Context, member *models.WorkspaceMember) error
	RemoveMember(ctx context.Context, workspaceID, memberUserID uint) error

	CreatePost(ctx context.Context, post *models.WorkspacePost) error
	ListPosts(ctx context.Context, workspaceID uint) ([]*models.WorkspacePost, error)
	DeletePost(ctx context.Context, postID uint) error

	SearchMembersByName(ctx context.Context, query string) ([]*models.WorkspaceMember, error)
	SearchPostsByAuthorName(ctx context.Context, query string) ([]*models.WorkspacePost, error)
}

type workspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepository{db: db}
}

// Create inserts the workspace and its owner membership atomically; the owner
// is a member from the first moment the workspace exists.
func (r *workspaceRepository) Create(ctx context.Context, ws *models.Workspace, owner *models.WorkspaceMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ws).Error; err != nil {
			return err
		}
		owner.WorkspaceID = ws.ID
		return tx.Create(owner).Error
	})
}

func (r *workspaceRepository) GetByID(ctx context.Context, id uint) (*models.Workspace, error) {
	var ws models.Workspace
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("workspace_members.joined_at ASC, workspace_members.id ASC")
		}).
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Order("workspace_posts.created_at DESC, workspace_posts.id DESC")
		}).
		First(&ws, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Workspace", id)
		}
		return nil, err
	}
	return &ws, nil
}

func (r *workspaceRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Workspace, error) {
	var workspaces []*models.Workspace
	err := r.db.WithContext(ctx).
		Preload("Members").
		Joins("JOIN workspace_members ON workspace_members.workspace_id = workspaces.id").
		Where("workspace_members.user_id = ?", userID).
		Order("workspaces.created_at DESC, workspaces.id DESC").
		Find(&workspaces).Error
	return workspaces, err
}

// Delete removes the workspace together with all of its members and posts.
func (r *workspaceRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Workspace{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Workspace", id)
		}
		if err := tx.Where("workspace_id = ?", id).Delete(&models.WorkspaceMember{}).Error; err != nil {
			return err
		}
		return tx.Where("workspace_id = ?", id).Delete(&models.WorkspacePost{}).Error
	})
	if err == nil {
		cache.InvalidateWorkspace(ctx, id)
	}
	return err
}

func (r *workspaceRepository) AddMember(ctx context.Context, member *models.WorkspaceMember) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if err == nil {
		cache.InvalidateWorkspace(ctx, member.WorkspaceID)
	}
	return err
}

func (r *workspaceRepository) RemoveMember(ctx context.Context, workspaceID, memberUserID uint) error {
	res := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, memberUserID).
		Delete(&models.WorkspaceMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Member", memberUserID)
	}
	cache.InvalidateWorkspace(ctx, workspaceID)
	return nil
}

func (r *workspaceRepository) CreatePost(ctx context.Context, post *models.WorkspacePost) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidateWorkspace(ctx, post.WorkspaceID)
	}
	return err
}

func (r *workspaceRepository) ListPosts(ctx context.Context, workspaceID uint) ([]*models.WorkspacePost, error) {
	var posts []*models.WorkspacePost
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

func (r *workspaceRepository) DeletePost(ctx context.Context, postID uint) error {
	var post models.WorkspacePost
	err := r.db.WithContext(ctx).First(&post, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Post", postID)
	}
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&post).Error; err != nil {
		return err
	}
	cache.InvalidateWorkspace(ctx, post.WorkspaceID)
	return nil
}

func (r *workspaceRepository) SearchMembersByName(ctx context.Context, query string) ([]*models.WorkspaceMember, error) {
	var members []*models.WorkspaceMember
	like := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(user_name) LIKE LOWER(?)", like).
		Order("id ASC").
		Find(&members).Error
	return members, err
}

func (r *workspaceRepository) SearchPostsByAuthorName(ctx context.Context, query string) ([]*models.WorkspacePost, error) {
	var posts []*models.WorkspacePost
	like := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(author_name) LIKE LOWER(?)", like).
		Order("id ASC").
		Find(&posts).Error
	return posts, err
}
