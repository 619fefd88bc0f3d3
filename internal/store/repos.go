package store

import (
	"context"
	"log"
	"time"

	"github.com/uhey77/portfolio/internal/github"
)

// RepoLister is satisfied by *github.Client.
type RepoLister interface {
	ListRepos(ctx context.Context, user string) ([]github.Repo, error)
}

// RepoCache serves repository lists from the store and falls through to the
// upstream API when the cached list is missing or older than TTL.
type RepoCache struct {
	store    *Store
	upstream RepoLister
	ttl      time.Duration
}

func NewRepoCache(s *Store, upstream RepoLister, ttl time.Duration) *RepoCache {
	return &RepoCache{store: s, upstream: upstream, ttl: ttl}
}

// Repos returns the repository list for user. A cache read or write failure
// is logged and otherwise ignored; only an upstream failure is returned.
func (c *RepoCache) Repos(ctx context.Context, user string) ([]github.Repo, error) {
	if c.ttl > 0 {
		repos, ok, err := c.store.Get(ctx, user, c.ttl)
		if err != nil {
			log.Printf("Repo cache read failed: %v", err)
		} else if ok {
			return repos, nil
		}
	}

	repos, err := c.upstream.ListRepos(ctx, user)
	if err != nil {
		return nil, err
	}

	if c.ttl > 0 {
		if err := c.store.Put(ctx, user, repos); err != nil {
			log.Printf("Repo cache write failed: %v", err)
		}
	}
	return repos, nil
}

// Refresh drops the cached list for user and fetches it again.
func (c *RepoCache) Refresh(ctx context.Context, user string) ([]github.Repo, error) {
	if _, err := c.store.Purge(ctx, user); err != nil {
		log.Printf("Repo cache purge failed: %v", err)
	}
	return c.Repos(ctx, user)
}

// Store exposes the underlying store for inspection.
func (c *RepoCache) Store() *Store {
	return c.store
}
