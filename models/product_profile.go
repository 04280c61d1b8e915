package models

import (
	"github.com/lib/pq"

	"github.com/mfghub/api-go/moderation"
)

// ProductProfile is a directory entry for an industrial product.
type ProductProfile struct {
	Submission
	Name        string         `json:"name" gorm:"not null" binding:"required"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null;type:varchar(160)"`
	Vendor      string         `json:"vendor"`
	Category    string         `json:"category"`
	Description string         `json:"description" gorm:"type:text" binding:"required"`
	Features    pq.StringArray `json:"features" gorm:"type:text[]"`
	ProductURL  string         `json:"product_url"`
	SubmittedBy uint           `json:"submitted_by" gorm:"not null;index"`
	Submitter   User           `json:"submitter" gorm:"foreignKey:SubmittedBy"`
}

func (*ProductProfile) ContentKind() string       { return "product-profiles" }
func (*ProductProfile) Policy() moderation.Policy { return moderation.Policy{} }
func (p *ProductProfile) OwnerID() uint           { return p.SubmittedBy }
func (p *ProductProfile) SetOwner(id uint)        { p.SubmittedBy = id }
func (*ProductProfile) OwnerColumn() string       { return "submitted_by" }
func (p *ProductProfile) GetSlug() string         { return p.Slug }
func (p *ProductProfile) SetSlug(s string)        { p.Slug = s }
func (p *ProductProfile) SlugSource() string      { return p.Name }

func (*ProductProfile) EditableColumns() []string {
	return []string{"name", "slug", "vendor", "category", "description", "features", "product_url"}
}

func (*ProductProfile) ArrayColumns() []string { return []string{"features"} }
