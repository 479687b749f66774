package calc

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	queries map[string]Query
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{queries: make(map[string]Query)}
}

func (r *MemoryRepo) Insert(ctx context.Context, query Query) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now().UTC()
	}
	r.queries[query.ID] = query
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Query, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	owned := make([]Query, 0)
	for _, q := range r.queries {
		if q.UserID == userID {
			owned = append(owned, q)
		}
	}
	r.mu.RUnlock()

	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.After(owned[j].CreatedAt)
		}
		return owned[i].ID < owned[j].ID
	})

	if offset >= len(owned) {
		return []Query{}, nil
	}
	owned = owned[offset:]
	if limit > 0 && limit < len(owned) {
		owned = owned[:limit]
	}
	return owned, nil
}
