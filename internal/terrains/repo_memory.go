package terrains

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	terrains map[string]Terrain
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{terrains: make(map[string]Terrain)}
}

func (r *MemoryRepo) Create(ctx context.Context, terrain Terrain) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	terrain.CreatedAt = now
	terrain.UpdatedAt = now
	r.terrains[terrain.ID] = terrain
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, ownerID, id string) (Terrain, error) {
	if err := ctx.Err(); err != nil {
		return Terrain{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	terrain, ok := r.terrains[id]
	if !ok || terrain.OwnerID != ownerID {
		return Terrain{}, ErrNotFound
	}
	return terrain, nil
}

func (r *MemoryRepo) List(ctx context.Context, ownerID string, limit, offset int) ([]Terrain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Terrain, 0, len(r.terrains))
	for _, terrain := range r.terrains {
		if terrain.OwnerID == ownerID {
			out = append(out, terrain)
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
		return []Terrain{}, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, terrain Terrain) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.terrains[terrain.ID]
	if !ok || existing.OwnerID != terrain.OwnerID {
		return ErrNotFound
	}
	terrain.CreatedAt = existing.CreatedAt
	terrain.UpdatedAt = time.Now().UTC()
	r.terrains[terrain.ID] = terrain
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, ownerID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.terrains[id]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.terrains, id)
	return nil
}
