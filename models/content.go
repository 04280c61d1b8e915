package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/mfghub/api-go/moderation"
)

// Submission carries the lifecycle fields shared by every submittable
// content kind: identity, timestamps, moderation status and the review
// metadata an admin fills in on publish or reject.
type Submission struct {
	ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"deleted_at"`
	Status      moderation.Status `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	ReviewerID  *uint             `json:"reviewer_id"`
	ReviewedAt  *time.Time        `json:"reviewed_at"`
	ReviewNotes string            `json:"review_notes"`
}

func (s *Submission) PrimaryID() uint                { return s.ID }
func (s *Submission) GetStatus() moderation.Status   { return s.Status }
func (s *Submission) SetStatus(st moderation.Status) { s.Status = st }

// ClearReview wipes review metadata a client may have smuggled into a
// create payload. Only the admin review path writes these columns.
func (s *Submission) ClearReview() {
	s.ReviewerID = nil
	s.ReviewedAt = nil
	s.ReviewNotes = ""
}

// ResetManaged zeroes the database-managed columns so a create payload
// cannot pick its own id, timestamps or soft-delete marker. The id comes
// from the sequence and the timestamps from the insert, always.
func (s *Submission) ResetManaged() {
	s.ID = 0
	s.CreatedAt = time.Time{}
	s.UpdatedAt = time.Time{}
	s.DeletedAt = gorm.DeletedAt{}
}

// Submittable is the contract the generic contributor and admin controllers
// work against. Each content kind supplies its own typed field set and the
// few per-kind facts the shared code needs: which column holds the owner,
// which columns the owner may PATCH, and the moderation policy.
type Submittable interface {
	ContentKind() string
	Policy() moderation.Policy

	PrimaryID() uint
	GetStatus() moderation.Status
	SetStatus(moderation.Status)
	ClearReview()
	ResetManaged()

	OwnerID() uint
	SetOwner(uint)
	OwnerColumn() string

	GetSlug() string
	SetSlug(string)
	SlugSource() string

	EditableColumns() []string
	ArrayColumns() []string
}

var contentKinds = map[string]func() Submittable{
	"posts":                func() Submittable { return &Post{} },
	"company-profiles":     func() Submittable { return &CompanyProfile{} },
	"person-profiles":      func() Submittable { return &PersonProfile{} },
	"product-profiles":     func() Submittable { return &ProductProfile{} },
	"conference-proposals": func() Submittable { return &ConferenceProposal{} },
}

// NewSubmittable returns a fresh instance of the content kind registered
// under the given URL segment.
func NewSubmittable(kind string) (Submittable, bool) {
	factory, ok := contentKinds[kind]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// ContentKindNames lists the registered kinds.
func ContentKindNames() []string {
	names := make([]string, 0, len(contentKinds))
	for name := range contentKinds {
		names = append(names, name)
	}
	return names
}
