package models

import "time"

// Post is a public post on the shared feed.
//
// Likes is an eagerly maintained counter cache over the likes table; the
// repository keeps it in step with the Like rows inside one transaction.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Texts     string    `gorm:"size:600;not null" json:"texts"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`

	// AuthorName is the poster's display name; computed at query time.
	AuthorName string `gorm:"->" json:"name"`
	// UserLiked indicates whether the requesting user liked this post (computed).
	UserLiked bool `gorm:"->" json:"user_liked"`
}

// Like marks that a user liked a post. The (post_id, user_id) pair is the
// source of truth for liked state; at most one row per pair.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"like_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToggleAction reports which way a toggle-like landed.
type ToggleAction string

const (
	ToggleActionLiked   ToggleAction = "liked"
	ToggleActionUnliked ToggleAction = "unliked"
)
