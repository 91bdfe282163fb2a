package models

import "gorm.io/datatypes"

type BlockType string

const (
	BlockHeroBanner  BlockType = "hero_banner"
	BlockContentList BlockType = "content_list"
)

func (t BlockType) Valid() bool {
	switch t {
	case BlockHeroBanner, BlockContentList:
		return true
	default:
		return false
	}
}

type SourceType string

const (
	SourceAllCourses      SourceType = "all_courses"
	SourceSpecificCourses SourceType = "specific_courses"
	SourceSpecificModule  SourceType = "specific_module"
)

type DisplayStyle string

const DisplayCarousel DisplayStyle = "carousel"

type AspectRatio string

const (
	AspectVideo    AspectRatio = "video"
	AspectPortrait AspectRatio = "portrait"
	AspectSquare   AspectRatio = "square"
)

// BlockContent is the type-specific payload of a page block. Hero banners
// use the title/image/CTA fields, content lists use the source selection
// fields.
type BlockContent struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ShowCTA     bool   `json:"showCta,omitempty"`
	CTAText     string `json:"ctaText,omitempty"`
	CTALink     string `json:"ctaLink,omitempty"`

	SourceType   SourceType   `json:"sourceType,omitempty"`
	SelectedIDs  []string     `json:"selectedIds,omitempty"`
	DisplayStyle DisplayStyle `json:"displayStyle,omitempty"`
	AspectRatio  AspectRatio  `json:"aspectRatio,omitempty"`
}

// PageBlock is one element of the home page composition. Position records
// the user-controlled ordering.
type PageBlock struct {
	ID       string                           `gorm:"primaryKey" json:"id"`
	Type     BlockType                        `gorm:"type:varchar(24)" json:"type"`
	Content  datatypes.JSONType[BlockContent] `gorm:"type:jsonb" json:"content"`
	Position int                              `json:"position"`
}

func (PageBlock) TableName() string { return "layout_blocks" }

// DefaultLayout is what the home page shows before anything was authored.
func DefaultLayout() []PageBlock {
	return []PageBlock{{
		ID:   "b1",
		Type: BlockHeroBanner,
		Content: datatypes.NewJSONType(BlockContent{
			Title:       "Welcome to Academy",
			Description: "Your learning platform.",
			ImageURL:    "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?auto=format&fit=crop&q=80&w=2000",
			ShowCTA:     true,
			CTAText:     "Browse courses",
		}),
		Position: 0,
	}}
}
