package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/mfghub/api-go/moderation"
)

// Post is a blog article submission. IsPublic and PublishedAt are a
// denormalized convenience for the public blog query and must change in
// the same statement as Status.
type Post struct {
	Submission
	Title       string         `json:"title" gorm:"not null" binding:"required"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null;type:varchar(160)"`
	Excerpt     string         `json:"excerpt"`
	Body        string         `json:"body" gorm:"type:text" binding:"required"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	AuthorID    uint           `json:"author_id" gorm:"not null;index"`
	Author      User           `json:"author" gorm:"foreignKey:AuthorID"`
	IsPublic    bool           `json:"is_public" gorm:"default:false"`
	PublishedAt *time.Time     `json:"published_at"`
}

func (*Post) ContentKind() string { return "posts" }

// ClearReview also resets the denormalized visibility pair; it only
// changes together with a status transition to published.
func (p *Post) ClearReview() {
	p.Submission.ClearReview()
	p.IsPublic = false
	p.PublishedAt = nil
}

// Posts are the one kind a contributor may rework after rejection.
func (*Post) Policy() moderation.Policy { return moderation.Policy{Resubmittable: true} }

func (p *Post) OwnerID() uint      { return p.AuthorID }
func (p *Post) SetOwner(id uint)   { p.AuthorID = id }
func (*Post) OwnerColumn() string  { return "author_id" }
func (p *Post) GetSlug() string    { return p.Slug }
func (p *Post) SetSlug(s string)   { p.Slug = s }
func (p *Post) SlugSource() string { return p.Title }

func (*Post) EditableColumns() []string {
	return []string{"title", "slug", "excerpt", "body", "tags"}
}

func (*Post) ArrayColumns() []string { return []string{"tags"} }
