package ports

import (
	"context"

	"videohub/internal/core/domain"
)

// VideoRepository owns the video collection. Implementations return copies,
// never references into their own storage.
type VideoRepository interface {
	// Create assigns a fresh unique ID to video and stores it.
	Create(ctx context.Context, video *domain.Video) error
	GetByID(ctx context.Context, id domain.VideoID) (*domain.Video, error)
	// List returns all videos in insertion order.
	List(ctx context.Context) ([]*domain.Video, error)
	// Update runs mutate against the stored video atomically.
	Update(ctx context.Context, id domain.VideoID, mutate func(video *domain.Video)) error
	Delete(ctx context.Context, id domain.VideoID) error
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}
