package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"videohub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVideo(title string) *domain.Video {
	v := domain.NewVideo(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	v.Title = title
	v.Author = "author"
	v.AvailableResolutions = []domain.Resolution{domain.Resolution720p}
	return v
}

func TestMemoryVideoRepository_CreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVideoRepository()

	seen := make(map[domain.VideoID]bool)
	for i := 0; i < 50; i++ {
		v := newVideo("video")
		require.NoError(t, repo.Create(ctx, v))
		assert.False(t, seen[v.ID], "duplicate id %d", v.ID)
		seen[v.ID] = true
	}
}

func TestMemoryVideoRepository_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVideoRepository()

	first := newVideo("first")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Delete(ctx, first.ID))
	require.NoError(t, repo.Clear(ctx))

	second := newVideo("second")
	require.NoError(t, repo.Create(ctx, second))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMemoryVideoRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVideoRepository()

	v := newVideo("title")
	require.NoError(t, repo.Create(ctx, v))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = repo.GetByID(ctx, v.ID+100)
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
}

func TestMemoryVideoRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVideoRepository()

	v := newVideo("original")
	require.NoError(t, repo.Create(ctx, v))

	// Mutating the value passed to Create does not reach the store.
	v.Title = "changed after create"

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)

	got.Title = "changed after get"
	got.AvailableResolutions[0] = domain.Resolution144p

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "original", list[0].Title)
	assert.Equal(t, domain.Resolution720p, list[0].AvailableResolutions[0])
}

func TestMemoryVideoRepository_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVideoRepository()

	var ids []domain.VideoID
	for _, title := range []string{"a", "b", "c", "d"} {
		v := newVideo(title)
		require.NoError(t, repo.Create(ctx, v))
		ids = append(ids, v.ID)
	}
	require.NoError(t, repo.Delete(ctx, ids[1]))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Title)
	assert.Equal(t, "c", list[1].Title)
	assert.Equal(t, "d", list[2].Title)
}

func TestMemoryVideoRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVideoRepository()

	v := newVideo("before")
	require.NoError(t, repo.Create(ctx, v))

	err := repo.Update(ctx, v.ID, func(video *domain.Video) {
		video.Title = "after"
		video.ID = 12345
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, v.ID, got.ID)

	called := false
	err = repo.Update(ctx, v.ID+1, func(*domain.Video) { called = true })
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
	assert.False(t, called)
}

func TestMemoryVideoRepository_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVideoRepository()

	v := newVideo("title")
	require.NoError(t, repo.Create(ctx, v))

	assert.NoError(t, repo.Delete(ctx, v.ID))
	assert.ErrorIs(t, repo.Delete(ctx, v.ID), domain.ErrVideoNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemoryVideoRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVideoRepository()

	const workers = 20
	ids := make(chan domain.VideoID, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := newVideo("concurrent")
			if err := repo.Create(ctx, v); err == nil {
				ids <- v.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[domain.VideoID]bool)
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}
