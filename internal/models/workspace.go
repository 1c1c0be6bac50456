package models

import "time"

// Workspace is a named group of members sharing a private post feed.
//
// The owner is always a member and can never be removed. Workspace IDs come
// from the store's autoincrement counter, so they are unique and
// monotonically increasing across concurrent creations.
type Workspace struct {
	ID          uint              `gorm:"primaryKey" json:"workspaceId"`
	Name        string            `gorm:"size:100;not null" json:"name"`
	Description string            `gorm:"type:text" json:"description"`
	OwnerID     uint              `gorm:"not null;index" json:"ownerId"`
	Members     []WorkspaceMember `gorm:"foreignKey:WorkspaceID" json:"members,omitempty"`
	Posts       []WorkspacePost   `gorm:"foreignKey:WorkspaceID" json:"posts,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// WorkspaceMember maps a user (or an invited, not-yet-registered email) to a
// workspace. A nil UserID marks an invited-but-unresolved placeholder; such
// members are skipped by notification fan-out.
type WorkspaceMember struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WorkspaceID uint      `gorm:"not null;uniqueIndex:idx_ws_email" json:"workspaceId"`
	UserID      *uint     `gorm:"index" json:"userId,omitempty"`
	UserEmail   string    `gorm:"size:254;not null;uniqueIndex:idx_ws_email" json:"userEmail"`
	UserName    string    `gorm:"size:100;not null" json:"userName"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joinedAt"`
}

// Resolved reports whether the member is backed by a registered account.
func (m *WorkspaceMember) Resolved() bool {
	return m.UserID != nil
}

// WorkspacePost is a post inside a workspace's private feed.
type WorkspacePost struct {
	ID          uint      `gorm:"primaryKey" json:"postId"`
	WorkspaceID uint      `gorm:"not null;index" json:"workspaceId"`
	AuthorID    uint      `gorm:"not null" json:"authorId"`
	AuthorName  string    `gorm:"size:100;not null" json:"authorName"`
	AuthorEmail string    `gorm:"size:254;not null" json:"authorEmail"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"size:5000;not null" json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserSearchResult is an invite candidate surfaced by workspace user search.
type UserSearchResult struct {
	Type      string `json:"type"` // "user" or "user_from_post"
	UserID    *uint  `json:"userId,omitempty"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	PostTitle string `json:"postTitle,omitempty"`
}
