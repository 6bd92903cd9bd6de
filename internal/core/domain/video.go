package domain

import (
	"time"

	"videohub/pkg/validation"
)

type VideoID int64

type Resolution string

const (
	Resolution144p  Resolution = "144p"
	Resolution240p  Resolution = "240p"
	Resolution360p  Resolution = "360p"
	Resolution480p  Resolution = "480p"
	Resolution720p  Resolution = "720p"
	Resolution1080p Resolution = "1080p"
	Resolution1440p Resolution = "1440p"
	Resolution2160p Resolution = "2160p"
)

// Resolutions lists every accepted quality label in ascending order.
var Resolutions = []Resolution{
	Resolution144p,
	Resolution240p,
	Resolution360p,
	Resolution480p,
	Resolution720p,
	Resolution1080p,
	Resolution1440p,
	Resolution2160p,
}

// PublicationDelay is the gap between creation and publication.
const PublicationDelay = 24 * time.Hour

type Video struct {
	ID                   VideoID      `json:"id"`
	Title                string       `json:"title"`
	Author               string       `json:"author"`
	CanBeDownloaded      bool         `json:"canBeDownloaded"`
	MinAgeRestriction    *int         `json:"minAgeRestriction"`
	CreatedAt            time.Time    `json:"createdAt"`
	PublicationDate      time.Time    `json:"publicationDate"`
	AvailableResolutions []Resolution `json:"availableResolutions"`
}

// NewVideo builds an unsaved video with creation defaults. The caller
// applies the payload on top.
func NewVideo(createdAt time.Time) *Video {
	createdAt = createdAt.UTC()
	return &Video{
		CreatedAt:            createdAt,
		PublicationDate:      createdAt.Add(PublicationDelay),
		AvailableResolutions: []Resolution{},
	}
}

// Clone returns a deep copy that shares no memory with v.
func (v *Video) Clone() *Video {
	if v == nil {
		return nil
	}
	c := *v
	if v.MinAgeRestriction != nil {
		age := *v.MinAgeRestriction
		c.MinAgeRestriction = &age
	}
	c.AvailableResolutions = append(make([]Resolution, 0, len(v.AvailableResolutions)), v.AvailableResolutions...)
	return &c
}

// VideoPayload is a decoded JSON request body.
type VideoPayload map[string]interface{}

// Payload keys for the mutable fields.
const (
	FieldTitle                = "title"
	FieldAuthor               = "author"
	FieldCanBeDownloaded      = "canBeDownloaded"
	FieldMinAgeRestriction    = "minAgeRestriction"
	FieldAvailableResolutions = "availableResolutions"
)

// Apply overwrites every mutable field present in p. id, createdAt and
// publicationDate are never touched and unknown keys are ignored.
// p must have passed ValidateVideo.
func (p VideoPayload) Apply(v *Video) {
	if title, ok := p[FieldTitle].(string); ok {
		v.Title = title
	}
	if author, ok := p[FieldAuthor].(string); ok {
		v.Author = author
	}
	if raw, present := p[FieldCanBeDownloaded]; present {
		allowed, _ := raw.(bool)
		v.CanBeDownloaded = allowed
	}
	if raw, present := p[FieldMinAgeRestriction]; present {
		v.MinAgeRestriction = nil
		if age, ok := validation.AsInt(raw); ok {
			v.MinAgeRestriction = &age
		}
	}
	if raw, present := p[FieldAvailableResolutions]; present && raw != nil {
		v.AvailableResolutions = toResolutions(raw)
	}
}

func toResolutions(raw interface{}) []Resolution {
	out := []Resolution{}
	switch items := raw.(type) {
	case []interface{}:
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, Resolution(s))
			}
		}
	case []string:
		for _, s := range items {
			out = append(out, Resolution(s))
		}
	case []Resolution:
		out = append(out, items...)
	}
	return out
}
