package models

type Post struct {
	BaseModel

	Title       string `json:"title" validate:"required,max=1024"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	Language    string `json:"language"`

	// Views only grows, and only as a side effect of a fetch by slug.
	Views int64 `json:"views"`

	// At most one post holds IsFeatured at any time. The swap happens in the
	// same transaction as the write that sets it.
	IsFeatured bool `json:"is_featured"`

	Tags []Tag `json:"tags" gorm:"many2many:post_tags"`

	CategoryID *uint     `json:"category_id"`
	Category   *Category `json:"category,omitempty"`

	AuthorID uint  `json:"author_id"`
	Author   *User `json:"author,omitempty"`
}

// PostStats is the aggregate snapshot computed in a single transaction.
type PostStats struct {
	TotalPosts   int64   `json:"total_posts"`
	TotalViews   int64   `json:"total_views"`
	AverageViews float64 `json:"average_views"`
	MaxViews     int64   `json:"max_views"`
	MinViews     int64   `json:"min_views"`

	FeaturedCount   int64 `json:"featured_count"`
	TopFeaturedPost *Post `json:"top_featured_post"`

	LastWeekPostCount int64 `json:"last_week_post_count"`
}
