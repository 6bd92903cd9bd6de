package http

import (
	"net/http"
	"strconv"

	"videohub/internal/core/domain"
	"videohub/internal/core/ports"
	apperrors "videohub/pkg/errors"

	"github.com/gin-gonic/gin"
)

const invalidBodyMessage = "Request body must be a JSON object."

type VideoHandler struct {
	videoService ports.VideoService
}

func NewVideoHandler(videoService ports.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

func (h *VideoHandler) SetupRoutes(router gin.IRouter) {
	videos := router.Group("/videos")
	{
		videos.GET("", h.ListVideos)
		videos.GET("/:id", h.GetVideo)
		videos.POST("", h.CreateVideo)
		videos.PUT("/:id", h.UpdateVideo)
		videos.DELETE("/:id", h.DeleteVideo)
	}
}

// SetupTestingRoutes registers the reset endpoint used by end-to-end suites.
func (h *VideoHandler) SetupTestingRoutes(router gin.IRouter) {
	router.DELETE("/testing/all-data", h.DeleteAllVideos)
}

func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.videoService.ListVideos(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoService.GetVideo(c.Request.Context(), videoID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) CreateVideo(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	video, err := h.videoService.CreateVideo(c.Request.Context(), payload)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	if err := h.videoService.UpdateVideo(c.Request.Context(), videoID(c), payload); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := h.videoService.DeleteVideo(c.Request.Context(), videoID(c)); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VideoHandler) DeleteAllVideos(c *gin.Context) {
	if err := h.videoService.DeleteAllVideos(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// videoID parses the :id path parameter. Values that are not integers map
// to 0, which the store never assigns, so they resolve to not found after
// any validation has run.
func videoID(c *gin.Context) domain.VideoID {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return domain.VideoID(id)
}

func bindPayload(c *gin.Context) (domain.VideoPayload, bool) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		_ = c.Error(apperrors.NewInvalidInputError(invalidBodyMessage, apperrors.FieldBody).WithContext("cause", err.Error()))
		return nil, false
	}
	return domain.VideoPayload(payload), true
}
