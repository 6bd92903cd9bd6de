package memory

import (
	"context"
	"sync"

	"videohub/internal/core/domain"
	"videohub/internal/core/ports"
)

type MemoryVideoRepository struct {
	videos []*domain.Video
	lastID domain.VideoID
	mu     sync.RWMutex
}

func NewMemoryVideoRepository() ports.VideoRepository {
	return &MemoryVideoRepository{
		videos: make([]*domain.Video, 0),
	}
}

func (r *MemoryVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// IDs are never reused, even after Delete or Clear.
	r.lastID++
	video.ID = r.lastID

	r.videos = append(r.videos, video.Clone())
	return nil
}

func (r *MemoryVideoRepository) GetByID(ctx context.Context, id domain.VideoID) (*domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrVideoNotFound
	}

	return r.videos[idx].Clone(), nil
}

func (r *MemoryVideoRepository) List(ctx context.Context) ([]*domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	videos := make([]*domain.Video, 0, len(r.videos))
	for _, video := range r.videos {
		videos = append(videos, video.Clone())
	}

	return videos, nil
}

func (r *MemoryVideoRepository) Update(ctx context.Context, id domain.VideoID, mutate func(video *domain.Video)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return domain.ErrVideoNotFound
	}

	updated := r.videos[idx].Clone()
	mutate(updated)
	updated.ID = id

	r.videos[idx] = updated
	return nil
}

func (r *MemoryVideoRepository) Delete(ctx context.Context, id domain.VideoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return domain.ErrVideoNotFound
	}

	r.videos = append(r.videos[:idx], r.videos[idx+1:]...)
	return nil
}

func (r *MemoryVideoRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.videos = make([]*domain.Video, 0)
	return nil
}

func (r *MemoryVideoRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.videos), nil
}

// indexOf must be called with the lock held.
func (r *MemoryVideoRepository) indexOf(id domain.VideoID) int {
	for i, video := range r.videos {
		if video.ID == id {
			return i
		}
	}
	return -1
}
