package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	postsListKey       = "posts:list"
	workspaceKeyPrefix = "workspace:%d"
)

const (
	PostsListTTL = 30 * time.Second
	WorkspaceTTL = 5 * time.Minute
)

func PostsListKey() string {
	return postsListKey
}

func WorkspaceKey(workspaceID uint) string {
	return fmt.Sprintf(workspaceKeyPrefix, workspaceID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, PostsListKey())
}

func InvalidateWorkspace(ctx context.Context, workspaceID uint) {
	Invalidate(ctx, WorkspaceKey(workspaceID))
}
