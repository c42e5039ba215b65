package models

type Tag struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex" validate:"required"`
	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_tags"`
}

type Category struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex" validate:"required"`
	Slug  string `json:"slug" gorm:"uniqueIndex"`
	Posts []Post `json:"posts,omitempty"`
}
