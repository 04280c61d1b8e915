package moderation

// Status is the lifecycle state shared by every submittable content row.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusPublished     Status = "published"
	StatusRejected      Status = "rejected"
)

// Actor identifies who is attempting a transition. Ownership and role are
// independent gates: an admin acting on someone else's row is ActorAdmin,
// the row's owner is ActorOwner even if they also happen to be an admin.
type Actor string

const (
	ActorOwner Actor = "owner"
	ActorAdmin Actor = "admin"
)

// Policy captures the per-kind variation in an otherwise shared lifecycle.
// Posts may be edited and re-submitted after rejection; the other content
// kinds treat rejection as terminal for the submitter.
type Policy struct {
	Resubmittable bool
}

// ValidStatus reports whether s is one of the four lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// ValidInitial reports whether a row may be created directly in s.
// Submitters choose between saving a draft and submitting for review.
func ValidInitial(s Status) bool {
	return s == StatusDraft || s == StatusPendingReview
}

// NextStates returns the states actor may move a row to from the given
// state. This is the single transition table every content kind shares.
func (p Policy) NextStates(from Status, actor Actor) []Status {
	switch actor {
	case ActorOwner:
		switch from {
		case StatusDraft:
			return []Status{StatusPendingReview}
		case StatusRejected:
			if p.Resubmittable {
				return []Status{StatusDraft, StatusPendingReview}
			}
		}
	case ActorAdmin:
		if from == StatusPendingReview {
			return []Status{StatusPublished, StatusRejected}
		}
	}
	return nil
}

// CanTransition reports whether actor may move a row from one state to
// another. A no-op transition (from == to) is allowed whenever the row is
// editable by the actor at all, so an edit that restates the current status
// does not fail.
func (p Policy) CanTransition(from, to Status, actor Actor) bool {
	if from == to {
		return actor == ActorOwner && p.OwnerEditable(from)
	}
	for _, s := range p.NextStates(from, actor) {
		if s == to {
			return true
		}
	}
	return false
}

// OwnerEditable reports whether the submitter may still modify row content
// in the given state. Pending and published rows are out of the owner's
// hands; rejected rows reopen only where the policy allows re-submission.
func (p Policy) OwnerEditable(s Status) bool {
	if s == StatusDraft {
		return true
	}
	return s == StatusRejected && p.Resubmittable
}

// OwnerEditableStates lists the states OwnerEditable accepts, in the form
// conditional UPDATE statements want.
func (p Policy) OwnerEditableStates() []Status {
	if p.Resubmittable {
		return []Status{StatusDraft, StatusRejected}
	}
	return []Status{StatusDraft}
}

// OwnerDeletable reports whether the submitter may delete a row in the
// given state. Published content is never deletable through the
// contributor API, only demoted by an admin.
func (p Policy) OwnerDeletable(s Status) bool {
	return s != StatusPublished
}

// ReviewOutcome reports whether s is a state an admin review may land on.
func ReviewOutcome(s Status) bool {
	return s == StatusPublished || s == StatusRejected
}
