package models

import (
	"github.com/lib/pq"

	"github.com/mfghub/api-go/moderation"
)

// ConferenceProposal is a submitted talk proposal.
type ConferenceProposal struct {
	Submission
	Title       string         `json:"title" gorm:"not null" binding:"required"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null;type:varchar(160)"`
	Abstract    string         `json:"abstract" gorm:"type:text" binding:"required"`
	SpeakerName string         `json:"speaker_name" binding:"required"`
	TalkFormat  string         `json:"talk_format"`
	Topics      pq.StringArray `json:"topics" gorm:"type:text[]"`
	SubmittedBy uint           `json:"submitted_by" gorm:"not null;index"`
	Submitter   User           `json:"submitter" gorm:"foreignKey:SubmittedBy"`
}

func (*ConferenceProposal) ContentKind() string       { return "conference-proposals" }
func (*ConferenceProposal) Policy() moderation.Policy { return moderation.Policy{} }
func (p *ConferenceProposal) OwnerID() uint           { return p.SubmittedBy }
func (p *ConferenceProposal) SetOwner(id uint)        { p.SubmittedBy = id }
func (*ConferenceProposal) OwnerColumn() string       { return "submitted_by" }
func (p *ConferenceProposal) GetSlug() string         { return p.Slug }
func (p *ConferenceProposal) SetSlug(s string)        { p.Slug = s }
func (p *ConferenceProposal) SlugSource() string      { return p.Title }

func (*ConferenceProposal) EditableColumns() []string {
	return []string{"title", "slug", "abstract", "speaker_name", "talk_format", "topics"}
}

func (*ConferenceProposal) ArrayColumns() []string { return []string{"topics"} }
