package models

import "time"

// Comment is a comment on a public post, deletable only by its author.
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"comment_id"`
	PostID      uint      `gorm:"not null;index" json:"post_id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	CommentText string    `gorm:"size:500;not null" json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`

	// AuthorName is the commenter's display name; computed at query time.
	AuthorName string `gorm:"->" json:"name"`
}
