// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"questing/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers      int
	NumPosts      int
	NumWorkspaces int
	ShouldClean   bool
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db: db,
		//nolint:gosec // Weak random number generator is fine for seeding
		r: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed populates the database with demo users, posts, likes, comments,
// workspaces and notifications.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d users, %d posts, %d workspaces...",
		opts.NumUsers, opts.NumPosts, opts.NumWorkspaces)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	posts, err := s.createPosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	if err := s.createEngagement(users, posts); err != nil {
		return fmt.Errorf("failed to create likes and comments: %w", err)
	}

	if err := s.createWorkspaces(users, opts.NumWorkspaces); err != nil {
		return fmt.Errorf("failed to create workspaces: %w", err)
	}
	log.Printf("%d workspaces created", opts.NumWorkspaces)

	log.Println("Seeding completed. All demo users have the password: password123")
	return nil
}

// ClearAll removes all seeded data. Order matters for foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	tables := []any{
		&models.Notification{},
		&models.WorkspacePost{},
		&models.WorkspaceMember{},
		&models.Workspace{},
		&models.Comment{},
		&models.Like{},
		&models.Post{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("%s%d@%s",
			strings.ToLower(strings.ReplaceAll(name, " ", ".")), i, gofakeit.DomainName())
		user := &models.User{
			Name:     name,
			Email:    email,
			Password: string(hashed),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.r.Intn(len(users))]
		post := &models.Post{
			UserID:    author.ID,
			Title:     truncate(gofakeit.Sentence(4), 100),
			Texts:     truncate(gofakeit.Paragraph(1, 2, 8, " "), 600),
			CreatedAt: s.pastTime(60),
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// createEngagement adds likes and comments to roughly half the posts.
// Authors never like their own posts, matching the API rule.
func (s *Seeder) createEngagement(users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		if s.r.Intn(2) == 0 {
			continue
		}
		likers := s.r.Intn(4)
		for i := 0; i < likers; i++ {
			user := users[s.r.Intn(len(users))]
			if user.ID == post.UserID {
				continue
			}
			like := &models.Like{PostID: post.ID, UserID: user.ID}
			if err := s.db.Create(like).Error; err != nil {
				// unique index collision from picking the same user twice
				continue
			}
			if err := s.db.Model(post).UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
				return err
			}
		}
		if s.r.Intn(3) == 0 {
			commenter := users[s.r.Intn(len(users))]
			comment := &models.Comment{
				PostID:      post.ID,
				UserID:      commenter.ID,
				CommentText: truncate(gofakeit.Sentence(8), 500),
			}
			if err := s.db.Create(comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) createWorkspaces(users []*models.User, n int) error {
	for i := 0; i < n; i++ {
		owner := users[s.r.Intn(len(users))]
		ws := &models.Workspace{
			Name:        truncate(gofakeit.Company(), 100),
			Description: gofakeit.Sentence(10),
			OwnerID:     owner.ID,
		}
		if err := s.db.Create(ws).Error; err != nil {
			return err
		}
		ownerMember := &models.WorkspaceMember{
			WorkspaceID: ws.ID,
			UserID:      &owner.ID,
			UserEmail:   owner.Email,
			UserName:    owner.Name,
		}
		if err := s.db.Create(ownerMember).Error; err != nil {
			return err
		}

		extra := 1 + s.r.Intn(3)
		for j := 0; j < extra; j++ {
			user := users[s.r.Intn(len(users))]
			if user.ID == owner.ID {
				continue
			}
			member := &models.WorkspaceMember{
				WorkspaceID: ws.ID,
				UserID:      &user.ID,
				UserEmail:   user.Email,
				UserName:    user.Name,
			}
			if err := s.db.Create(member).Error; err != nil {
				// unique index collision from picking the same user twice
				continue
			}
			post := &models.WorkspacePost{
				WorkspaceID: ws.ID,
				AuthorID:    user.ID,
				AuthorName:  user.Name,
				AuthorEmail: user.Email,
				Title:       truncate(gofakeit.Sentence(4), 255),
				Content:     truncate(gofakeit.Paragraph(1, 3, 8, " "), 5000),
				CreatedAt:   s.pastTime(30),
			}
			if err := s.db.Create(post).Error; err != nil {
				return err
			}
			notif := &models.Notification{
				UserID:  owner.ID,
				Type:    models.NotificationTypePost,
				Title:   fmt.Sprintf("New post in %s", ws.Name),
				Content: fmt.Sprintf("%s posted %q", user.Name, post.Title),
			}
			if err := s.db.Create(notif).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// pastTime returns a timestamp spread over the last maxDays days.
func (s *Seeder) pastTime(maxDays int) time.Time {
	daysBack := s.r.Intn(maxDays)
	hoursBack := s.r.Intn(24)
	minsBack := s.r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
