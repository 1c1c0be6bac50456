package service

import (
	"context"
	"fmt"
	"strings"

	"questing/internal/cache"
	"questing/internal/middleware"
	"questing/internal/models"
	"questing/internal/repository"
	"questing/internal/validation"
)

const (
	maxWorkspaceNameLen = 100
	maxWSPostTitleLen   = 255
	maxWSPostContentLen = 5000
	minSearchQueryLen   = 2
)

// WorkspaceService handles workspaces, membership, in-workspace posts and
// invite-candidate search. Membership is server-authoritative: every check
// reads the stored member list, never client state.
type WorkspaceService struct {
	workspaceRepo   repository.WorkspaceRepository
	userRepo        repository.UserRepository
	notificationSvc *NotificationService
}

// CreateWorkspaceInput carries the create-workspace request fields.
type CreateWorkspaceInput struct {
	OwnerID     uint
	Name        string
	Description string
}

// CreateWorkspacePostInput carries the create-workspace-post request fields.
type CreateWorkspacePostInput struct {
	WorkspaceID uint
	AuthorID    uint
	Title       string
	Content     string
}

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(
	workspaceRepo repository.WorkspaceRepository,
	userRepo repository.UserRepository,
	notificationSvc *NotificationService,
) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo:   workspaceRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

// CreateWorkspace creates a workspace with the owner as its sole member.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, in CreateWorkspaceInput) (*models.Workspace, error) {
	name := strings.TrimSpace(in.Name)
	if in.OwnerID == 0 || name == "" {
		return nil, models.NewValidationError("Workspace name is required!")
	}
	if len(name) > maxWorkspaceNameLen {
		return nil, models.NewValidationError("Workspace name must be less than 100 characters!")
	}

	owner, err := s.userRepo.GetByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	ws := &models.Workspace{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		OwnerID:     owner.ID,
	}
	member := &models.WorkspaceMember{
		UserID:    &owner.ID,
		UserEmail: owner.Email,
		UserName:  owner.Name,
	}
	if err := s.workspaceRepo.Create(ctx, ws, member); err != nil {
		return nil, err
	}
	ws.Members = []models.WorkspaceMember{*member}
	return ws, nil
}

func (s *WorkspaceService) ListWorkspaces(ctx context.Context, userID uint) ([]*models.Workspace, error) {
	if userID == 0 {
		return nil, models.NewValidationError("User ID is required!")
	}
	return s.workspaceRepo.ListByUser(ctx, userID)
}

// GetWorkspace returns the workspace with members and posts, cache-aside.
func (s *WorkspaceService) GetWorkspace(ctx context.Context, id uint) (*models.Workspace, error) {
	var ws *models.Workspace
	err := cache.Aside(ctx, cache.WorkspaceKey(id), &ws, cache.WorkspaceTTL, func() error {
		var fetchErr error
		ws, fetchErr = s.workspaceRepo.GetByID(ctx, id)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return ws, nil
}

// InviteMember adds the email to the workspace's member list. A registered
// account joins under its own id and name and receives an invite
// notification; an unknown email joins as a placeholder named after the
// address's local part, and the missing notification is a logged no-op.
func (s *WorkspaceService) InviteMember(ctx context.Context, wsID, inviterID uint, email string) (*models.WorkspaceMember, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if err := validation.ValidateInviteEmail(email); err != nil {
		return nil, models.NewValidationError("Invalid email format!")
	}

	ws, err := s.workspaceRepo.GetByID(ctx, wsID)
	if err != nil {
		return nil, err
	}

	inviter, err := s.userRepo.GetByID(ctx, inviterID)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(inviter.Email, email) {
		return nil, models.NewAlreadyMemberError("You are already a member of this workspace!")
	}
	for _, m := range ws.Members {
		if strings.EqualFold(m.UserEmail, email) {
			return nil, models.NewAlreadyMemberError("User is already a member of this workspace!")
		}
	}

	member := &models.WorkspaceMember{
		WorkspaceID: ws.ID,
		UserEmail:   email,
		UserName:    validation.LocalPart(email),
	}
	invitee, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if invitee != nil {
		member.UserID = &invitee.ID
		member.UserName = invitee.Name
	}
	if err := s.workspaceRepo.AddMember(ctx, member); err != nil {
		return nil, err
	}

	if invitee != nil {
		title := "Workspace invitation"
		content := fmt.Sprintf("%s invited you to join %q", inviter.Name, ws.Name)
		if _, err := s.notificationSvc.Notify(ctx, invitee.ID, models.NotificationTypeInvite, title, content); err != nil {
			middleware.Logger.WarnContext(ctx, "invite notification failed",
				"workspace_id", ws.ID, "invitee_id", invitee.ID, "error", err)
		}
	} else {
		middleware.Logger.InfoContext(ctx, "invite notification skipped, no matching account",
			"workspace_id", ws.ID, "email", email)
	}
	return member, nil
}

// RemoveMember removes a member from the workspace. Only the owner may
// remove members, and the owner can never be removed.
func (s *WorkspaceService) RemoveMember(ctx context.Context, wsID, requesterID, targetUserID uint) error {
	ws, err := s.workspaceRepo.GetByID(ctx, wsID)
	if err != nil {
		return err
	}
	if ws.OwnerID != requesterID {
		return models.NewForbiddenError("Only the workspace owner can remove members!")
	}
	if targetUserID == ws.OwnerID {
		return models.NewForbiddenError("The workspace owner cannot be removed!")
	}
	return s.workspaceRepo.RemoveMember(ctx, wsID, targetUserID)
}

// DeleteWorkspace removes the workspace and everything in it. Owner only.
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, wsID, requesterID uint) error {
	ws, err := s.workspaceRepo.GetByID(ctx, wsID)
	if err != nil {
		return err
	}
	if ws.OwnerID != requesterID {
		return models.NewForbiddenError("Only the workspace owner can delete the workspace!")
	}
	return s.workspaceRepo.Delete(ctx, wsID)
}

// CreateWorkspacePost adds a post to the workspace feed and notifies every
// resolved member except the author.
func (s *WorkspaceService) CreateWorkspacePost(ctx context.Context, in CreateWorkspacePostInput) (*models.WorkspacePost, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if in.AuthorID == 0 || title == "" || content == "" {
		return nil, models.NewValidationError("All fields are required!")
	}
	if len(title) > maxWSPostTitleLen {
		return nil, models.NewValidationError("Title must be less than 255 characters!")
	}
	if len(content) > maxWSPostContentLen {
		return nil, models.NewValidationError("Post content must be less than 5000 characters!")
	}

	ws, err := s.workspaceRepo.GetByID(ctx, in.WorkspaceID)
	if err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}

	post := &models.WorkspacePost{
		WorkspaceID: ws.ID,
		AuthorID:    author.ID,
		AuthorName:  author.Name,
		AuthorEmail: author.Email,
		Title:       title,
		Content:     content,
	}
	if err := s.workspaceRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	s.fanOutPost(ctx, ws, post)
	return post, nil
}

// fanOutPost notifies every resolved member except the author. Failures are
// logged per member; a partial fan-out never fails the post creation.
func (s *WorkspaceService) fanOutPost(ctx context.Context, ws *models.Workspace, post *models.WorkspacePost) {
	title := fmt.Sprintf("New post in %s", ws.Name)
	content := fmt.Sprintf("%s posted %q", post.AuthorName, post.Title)
	for _, m := range ws.Members {
		if !m.Resolved() || *m.UserID == post.AuthorID {
			continue
		}
		if _, err := s.notificationSvc.Notify(ctx, *m.UserID, models.NotificationTypePost, title, content); err != nil {
			middleware.Logger.WarnContext(ctx, "post notification failed",
				"workspace_id", ws.ID, "member_id", *m.UserID, "error", err)
		}
	}
}

func (s *WorkspaceService) ListWorkspacePosts(ctx context.Context, wsID uint) ([]*models.WorkspacePost, error) {
	if _, err := s.workspaceRepo.GetByID(ctx, wsID); err != nil {
		return nil, err
	}
	return s.workspaceRepo.ListPosts(ctx, wsID)
}

func (s *WorkspaceService) DeleteWorkspacePost(ctx context.Context, postID uint) error {
	return s.workspaceRepo.DeletePost(ctx, postID)
}

// SearchUsers finds invite candidates by case-insensitive substring match on
// member display names and workspace-post author names across all
// workspaces. Current members of the target workspace and the requester are
// excluded; results are deduplicated by email in first-match order.
func (s *WorkspaceService) SearchUsers(ctx context.Context, query string, wsID, requesterID uint) ([]*models.UserSearchResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < minSearchQueryLen {
		return nil, models.NewValidationError("Search query must be at least 2 characters!")
	}

	ws, err := s.workspaceRepo.GetByID(ctx, wsID)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(ws.Members)+1)
	for _, m := range ws.Members {
		excluded[strings.ToLower(m.UserEmail)] = true
	}
	if requester, err := s.userRepo.GetByID(ctx, requesterID); err == nil {
		excluded[strings.ToLower(requester.Email)] = true
	}

	members, err := s.workspaceRepo.SearchMembersByName(ctx, query)
	if err != nil {
		return nil, err
	}
	posts, err := s.workspaceRepo.SearchPostsByAuthorName(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]*models.UserSearchResult, 0, len(members)+len(posts))
	seen := make(map[string]bool)
	for _, m := range members {
		email := strings.ToLower(m.UserEmail)
		if excluded[email] || seen[email] {
			continue
		}
		seen[email] = true
		results = append(results, &models.UserSearchResult{
			Type:      "user",
			UserID:    m.UserID,
			UserName:  m.UserName,
			UserEmail: m.UserEmail,
		})
	}
	for _, p := range posts {
		email := strings.ToLower(p.AuthorEmail)
		if excluded[email] || seen[email] {
			continue
		}
		seen[email] = true
		authorID := p.AuthorID
		results = append(results, &models.UserSearchResult{
			Type:      "user_from_post",
			UserID:    &authorID,
			UserName:  p.AuthorName,
			UserEmail: p.AuthorEmail,
			PostTitle: p.Title,
		})
	}
	return results, nil
}
