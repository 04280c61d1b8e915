package models

import (
	"github.com/lib/pq"

	"github.com/mfghub/api-go/moderation"
)

// CompanyProfile is a directory entry for a manufacturer or vendor.
type CompanyProfile struct {
	Submission
	Name        string         `json:"name" gorm:"not null" binding:"required"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null;type:varchar(160)"`
	Website     string         `json:"website"`
	LogoURL     string         `json:"logo_url"`
	Industry    string         `json:"industry"`
	Description string         `json:"description" gorm:"type:text" binding:"required"`
	Specialties pq.StringArray `json:"specialties" gorm:"type:text[]"`
	SubmittedBy uint           `json:"submitted_by" gorm:"not null;index"`
	Submitter   User           `json:"submitter" gorm:"foreignKey:SubmittedBy"`
}

func (*CompanyProfile) ContentKind() string       { return "company-profiles" }
func (*CompanyProfile) Policy() moderation.Policy { return moderation.Policy{} }
func (p *CompanyProfile) OwnerID() uint           { return p.SubmittedBy }
func (p *CompanyProfile) SetOwner(id uint)        { p.SubmittedBy = id }
func (*CompanyProfile) OwnerColumn() string       { return "submitted_by" }
func (p *CompanyProfile) GetSlug() string         { return p.Slug }
func (p *CompanyProfile) SetSlug(s string)        { p.Slug = s }
func (p *CompanyProfile) SlugSource() string      { return p.Name }

func (*CompanyProfile) EditableColumns() []string {
	return []string{"name", "slug", "website", "logo_url", "industry", "description", "specialties"}
}

func (*CompanyProfile) ArrayColumns() []string { return []string{"specialties"} }
