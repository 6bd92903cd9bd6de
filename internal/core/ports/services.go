package ports

import (
	"context"

	"videohub/internal/core/domain"
)

type VideoService interface {
	ListVideos(ctx context.Context) ([]*domain.Video, error)
	GetVideo(ctx context.Context, id domain.VideoID) (*domain.Video, error)
	CreateVideo(ctx context.Context, payload domain.VideoPayload) (*domain.Video, error)
	UpdateVideo(ctx context.Context, id domain.VideoID, payload domain.VideoPayload) error
	DeleteVideo(ctx context.Context, id domain.VideoID) error
	DeleteAllVideos(ctx context.Context) error
}

// MetricsRecorder receives store activity for monitoring.
type MetricsRecorder interface {
	RecordOperation(operation, outcome string)
	SetVideoCount(count int)
}
