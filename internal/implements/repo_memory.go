package implements

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu         sync.RWMutex
	implements map[string]Implement
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{implements: make(map[string]Implement)}
}

func (r *MemoryRepo) Create(ctx context.Context, implement Implement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	implement.CreatedAt = now
	implement.UpdatedAt = now
	r.implements[implement.ID] = implement
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, ownerID, id string) (Implement, error) {
	if err := ctx.Err(); err != nil {
		return Implement{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	implement, ok := r.implements[id]
	if !ok || implement.OwnerID != ownerID {
		return Implement{}, ErrNotFound
	}
	return implement, nil
}

func (r *MemoryRepo) List(ctx context.Context, ownerID string, limit, offset int) ([]Implement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Implement, 0, len(r.implements))
	for _, implement := range r.implements {
		if implement.OwnerID == ownerID {
			out = append(out, implement)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if offset >= len(out) {
		return []Implement{}, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, implement Implement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.implements[implement.ID]
	if !ok || existing.OwnerID != implement.OwnerID {
		return ErrNotFound
	}
	implement.CreatedAt = existing.CreatedAt
	implement.UpdatedAt = time.Now().UTC()
	r.implements[implement.ID] = implement
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, ownerID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.implements[id]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.implements, id)
	return nil
}
