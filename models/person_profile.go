package models

import (
	"github.com/lib/pq"

	"github.com/mfghub/api-go/moderation"
)

// PersonProfile is a directory entry for an industry practitioner.
type PersonProfile struct {
	Submission
	Name        string         `json:"name" gorm:"not null" binding:"required"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null;type:varchar(160)"`
	Headline    string         `json:"headline"`
	Bio         string         `json:"bio" gorm:"type:text" binding:"required"`
	Company     string         `json:"company"`
	Links       pq.StringArray `json:"links" gorm:"type:text[]"`
	Expertise   pq.StringArray `json:"expertise" gorm:"type:text[]"`
	SubmittedBy uint           `json:"submitted_by" gorm:"not null;index"`
	Submitter   User           `json:"submitter" gorm:"foreignKey:SubmittedBy"`
}

func (*PersonProfile) ContentKind() string       { return "person-profiles" }
func (*PersonProfile) Policy() moderation.Policy { return moderation.Policy{} }
func (p *PersonProfile) OwnerID() uint           { return p.SubmittedBy }
func (p *PersonProfile) SetOwner(id uint)        { p.SubmittedBy = id }
func (*PersonProfile) OwnerColumn() string       { return "submitted_by" }
func (p *PersonProfile) GetSlug() string         { return p.Slug }
func (p *PersonProfile) SetSlug(s string)        { p.Slug = s }
func (p *PersonProfile) SlugSource() string      { return p.Name }

func (*PersonProfile) EditableColumns() []string {
	return []string{"name", "slug", "headline", "bio", "company", "links", "expertise"}
}

func (*PersonProfile) ArrayColumns() []string { return []string{"links", "expertise"} }
