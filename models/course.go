package models

import (
	"time"

	"gorm.io/datatypes"
)

type LessonType string

const (
	LessonVideo LessonType = "video"
	LessonText  LessonType = "text"
	LessonQuiz  LessonType = "quiz"
)

func (t LessonType) Valid() bool {
	switch t {
	case LessonVideo, LessonText, LessonQuiz:
		return true
	default:
		return false
	}
}

type VideoProvider string

const (
	ProviderYouTube  VideoProvider = "youtube"
	ProviderVimeo    VideoProvider = "vimeo"
	ProviderPanda    VideoProvider = "panda"
	ProviderEmbedURL VideoProvider = "embed_url"
)

func (p VideoProvider) Valid() bool {
	switch p {
	case ProviderYouTube, ProviderVimeo, ProviderPanda, ProviderEmbedURL:
		return true
	default:
		return false
	}
}

// Attachment is a supplementary file on a lesson. The URL is stored as an
// opaque string; large payloads belong in external storage, not inline.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
	Size string `json:"size,omitempty"`
}

type Lesson struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Duration    int           `json:"duration"`
	Type        LessonType    `json:"type"`
	VideoURL    string        `json:"videoUrl,omitempty"`
	Provider    VideoProvider `json:"provider,omitempty"`
	TextContent string        `json:"textContent,omitempty"`
	Thumbnail   string        `json:"thumbnail"`
	Attachments []Attachment  `json:"attachments"`
}

// Module groups lessons inside a course. Slice order is the authoritative
// navigation sequence.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Course is persisted as one row; modules and lessons live in a jsonb
// column exactly as the authoring surface edits them.
type Course struct {
	ID            string                      `gorm:"primaryKey" json:"id"`
	Title         string                      `gorm:"index;not null" json:"title"`
	Description   string                      `json:"description"`
	CoverImage    string                      `json:"coverImage"`
	BannerImage   string                      `json:"bannerImage"`
	Author        string                      `json:"author"`
	TotalDuration int                         `json:"totalDuration"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Modules       datatypes.JSONSlice[Module] `gorm:"type:jsonb" json:"modules"`
	Published     bool                        `gorm:"default:true" json:"published"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

func (Course) TableName() string { return "courses" }

// FirstLesson returns the entry point for playback, or nil for an empty
// course.
func (c *Course) FirstLesson() *Lesson {
	if len(c.Modules) > 0 && len(c.Modules[0].Lessons) > 0 {
		return &c.Modules[0].Lessons[0]
	}
	return nil
}
