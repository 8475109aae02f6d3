package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	revealAllKey = "cooknext:viewstate:reveal_all"
	expandedKey  = "cooknext:viewstate:expanded"
)

// ViewStateService keeps session-scoped presentation state in redis: the
// reveal-all cursor for the suggestion list and the per-recipe "details
// expanded" flags the client restores across reloads. The recipe store
// never depends on any of it.
type ViewStateService struct {
	rdb *redis.Client
}

// NewViewStateService creates a new ViewStateService instance
func NewViewStateService(rdb *redis.Client) *ViewStateService {
	return &ViewStateService{rdb: rdb}
}

// RevealAll reports whether the suggestion list is fully expanded
func (s *ViewStateService) RevealAll(ctx context.Context) (bool, error) {
	v, err := s.rdb.Get(ctx, revealAllKey).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read reveal-all state: %w", err)
	}
	return v == "1", nil
}

// SetRevealAll sets the reveal-all cursor. Every recipe mutation resets it
// to false so the next render collapses back to the short list.
func (s *ViewStateService) SetRevealAll(ctx context.Context, revealAll bool) error {
	if !revealAll {
		if err := s.rdb.Del(ctx, revealAllKey).Err(); err != nil {
			return fmt.Errorf("reset reveal-all state: %w", err)
		}
		return nil
	}
	if err := s.rdb.Set(ctx, revealAllKey, "1", 0).Err(); err != nil {
		return fmt.Errorf("set reveal-all state: %w", err)
	}
	return nil
}

// ExpandedIDs returns the set of recipe ids whose details are expanded
func (s *ViewStateService) ExpandedIDs(ctx context.Context) (map[string]bool, error) {
	members, err := s.rdb.SMembers(ctx, expandedKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read expanded state: %w", err)
	}
	expanded := make(map[string]bool, len(members))
	for _, id := range members {
		expanded[id] = true
	}
	return expanded, nil
}

// SetExpanded records whether a recipe's details are expanded
func (s *ViewStateService) SetExpanded(ctx context.Context, recipeID string, expanded bool) error {
	var err error
	if expanded {
		err = s.rdb.SAdd(ctx, expandedKey, recipeID).Err()
	} else {
		err = s.rdb.SRem(ctx, expandedKey, recipeID).Err()
	}
	if err != nil {
		return fmt.Errorf("write expanded state: %w", err)
	}
	return nil
}
