package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"videohub/internal/core/domain"
	"videohub/internal/core/ports"
	apperrors "videohub/pkg/errors"
	"videohub/pkg/logger"
	"videohub/pkg/tracing"

	"go.uber.org/zap"
)

// Operation outcomes reported to the metrics recorder.
const (
	OutcomeSuccess          = "success"
	OutcomeValidationFailed = "validation_failed"
	OutcomeNotFound         = "not_found"
	OutcomeError            = "error"
)

// NotFoundMessage is the client-facing text for a missing video.
const NotFoundMessage = "Video not found"

type videoService struct {
	videoRepo ports.VideoRepository
	metrics   ports.MetricsRecorder
	log       *logger.ContextLogger
	now       func() time.Time
}

type Option func(*videoService)

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *videoService) {
		s.now = now
	}
}

func NewVideoService(
	videoRepo ports.VideoRepository,
	metrics ports.MetricsRecorder,
	log *logger.ContextLogger,
	opts ...Option,
) ports.VideoService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if log == nil {
		log = logger.NewContextLogger(nil)
	}

	s := &videoService{
		videoRepo: videoRepo,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *videoService) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	ctx, span := tracing.TraceVideoOperation(ctx, "list")
	defer span.End()

	videos, err := s.videoRepo.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list", fmt.Errorf("failed to list videos: %w", err))
	}

	s.metrics.RecordOperation("list", OutcomeSuccess)
	return videos, nil
}

func (s *videoService) GetVideo(ctx context.Context, id domain.VideoID) (*domain.Video, error) {
	ctx, span := tracing.TraceVideoOperation(ctx, "get")
	defer span.End()
	tracing.AddSpanAttributes(ctx, tracing.VideoIDKey.Int64(int64(id)))

	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get", s.mapRepoError(err, id))
	}

	s.metrics.RecordOperation("get", OutcomeSuccess)
	return video, nil
}

func (s *videoService) CreateVideo(ctx context.Context, payload domain.VideoPayload) (*domain.Video, error) {
	ctx, span := tracing.TraceVideoOperation(ctx, "create")
	defer span.End()

	if messages := domain.ValidateVideo(payload); len(messages) > 0 {
		return nil, s.fail(ctx, "create", apperrors.NewValidationError(messages))
	}

	video := domain.NewVideo(s.now())
	payload.Apply(video)

	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, s.fail(ctx, "create", fmt.Errorf("failed to create video: %w", err))
	}
	tracing.AddSpanAttributes(ctx, tracing.VideoIDKey.Int64(int64(video.ID)))

	s.log.LogDebug(ctx, "video created", zap.Int64("video_id", int64(video.ID)))
	s.metrics.RecordOperation("create", OutcomeSuccess)
	s.refreshCount(ctx)
	return video, nil
}

func (s *videoService) UpdateVideo(ctx context.Context, id domain.VideoID, payload domain.VideoPayload) error {
	ctx, span := tracing.TraceVideoOperation(ctx, "update")
	defer span.End()
	tracing.AddSpanAttributes(ctx, tracing.VideoIDKey.Int64(int64(id)))

	// Validation runs before the existence check.
	if messages := domain.ValidateVideo(payload); len(messages) > 0 {
		return s.fail(ctx, "update", apperrors.NewValidationError(messages))
	}

	if err := s.videoRepo.Update(ctx, id, payload.Apply); err != nil {
		return s.fail(ctx, "update", s.mapRepoError(err, id))
	}

	s.log.LogDebug(ctx, "video updated", zap.Int64("video_id", int64(id)))
	s.metrics.RecordOperation("update", OutcomeSuccess)
	return nil
}

func (s *videoService) DeleteVideo(ctx context.Context, id domain.VideoID) error {
	ctx, span := tracing.TraceVideoOperation(ctx, "delete")
	defer span.End()
	tracing.AddSpanAttributes(ctx, tracing.VideoIDKey.Int64(int64(id)))

	if err := s.videoRepo.Delete(ctx, id); err != nil {
		return s.fail(ctx, "delete", s.mapRepoError(err, id))
	}

	s.log.LogDebug(ctx, "video deleted", zap.Int64("video_id", int64(id)))
	s.metrics.RecordOperation("delete", OutcomeSuccess)
	s.refreshCount(ctx)
	return nil
}

func (s *videoService) DeleteAllVideos(ctx context.Context) error {
	ctx, span := tracing.TraceVideoOperation(ctx, "clear")
	defer span.End()

	if err := s.videoRepo.Clear(ctx); err != nil {
		return s.fail(ctx, "clear", fmt.Errorf("failed to clear videos: %w", err))
	}

	s.log.LogInfo(ctx, "all videos deleted")
	s.metrics.RecordOperation("clear", OutcomeSuccess)
	s.refreshCount(ctx)
	return nil
}

func (s *videoService) mapRepoError(err error, id domain.VideoID) error {
	if errors.Is(err, domain.ErrVideoNotFound) {
		return apperrors.WrapError(err, apperrors.ErrCodeNotFound, NotFoundMessage, http.StatusNotFound).
			WithContext("id", id).
			WithField(apperrors.FieldID)
	}
	return fmt.Errorf("video %d: %w", id, err)
}

// fail records the outcome of a failed operation and returns err unchanged.
func (s *videoService) fail(ctx context.Context, operation string, err error) error {
	outcome := OutcomeError
	switch {
	case apperrors.IsValidation(err):
		outcome = OutcomeValidationFailed
	case apperrors.IsNotFound(err):
		outcome = OutcomeNotFound
	default:
		tracing.RecordError(ctx, err)
		s.log.LogError(ctx, err, "video operation failed", zap.String("operation", operation))
	}
	s.metrics.RecordOperation(operation, outcome)
	return err
}

func (s *videoService) refreshCount(ctx context.Context) {
	count, err := s.videoRepo.Count(ctx)
	if err != nil {
		s.log.LogWarn(ctx, "failed to count videos", zap.Error(err))
		return
	}
	s.metrics.SetVideoCount(count)
}

type noopMetrics struct{}

func (noopMetrics) RecordOperation(string, string) {}
func (noopMetrics) SetVideoCount(int) {}
