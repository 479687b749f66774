package tractors

import (
	"context"
	"sort"
	"sync"
	"time"

	"agromech-backend/internal/recommend/engine"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	tractors map[string]Tractor
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{tractors: make(map[string]Tractor)}
}

func (r *MemoryRepo) Create(ctx context.Context, tractor Tractor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	tractor.CreatedAt = now
	tractor.UpdatedAt = now
	r.tractors[tractor.ID] = tractor
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, ownerID, id string) (Tractor, error) {
	if err := ctx.Err(); err != nil {
		return Tractor{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tractor, ok := r.tractors[id]
	if !ok || tractor.OwnerID != ownerID {
		return Tractor{}, ErrNotFound
	}
	return tractor, nil
}

func (r *MemoryRepo) List(ctx context.Context, ownerID string, limit, offset int) ([]Tractor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := r.ownedSorted(ownerID, false)
	if offset >= len(all) {
		return []Tractor{}, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryRepo) ListAvailable(ctx context.Context, ownerID string) ([]Tractor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Tractor, 0)
	for _, tractor := range r.ownedSorted(ownerID, true) {
		if tractor.Status == engine.StatusAvailable || tractor.Status == engine.StatusInUse {
			out = append(out, tractor)
		}
	}
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, tractor Tractor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tractors[tractor.ID]
	if !ok || existing.OwnerID != tractor.OwnerID {
		return ErrNotFound
	}
	tractor.CreatedAt = existing.CreatedAt
	tractor.UpdatedAt = time.Now().UTC()
	r.tractors[tractor.ID] = tractor
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, ownerID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tractors[id]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.tractors, id)
	return nil
}

// ownedSorted returns the owner's tractors ordered by creation time,
// newest first unless ascending is requested.
func (r *MemoryRepo) ownedSorted(ownerID string, ascending bool) []Tractor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tractor, 0, len(r.tractors))
	for _, tractor := range r.tractors {
		if tractor.OwnerID == ownerID {
			out = append(out, tractor)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		if ascending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
