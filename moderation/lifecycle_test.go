package moderation_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/mfghub/api-go/moderation"
)

var (
	postPolicy    = moderation.Policy{Resubmittable: true}
	profilePolicy = moderation.Policy{}
)

func TestOwnerTransitions(t *testing.T) {
	c := qt.New(t)

	c.Assert(profilePolicy.CanTransition(moderation.StatusDraft, moderation.StatusPendingReview, moderation.ActorOwner), qt.IsTrue)

	// Owners never publish, reject, or pull back a pending row.
	c.Assert(profilePolicy.CanTransition(moderation.StatusDraft, moderation.StatusPublished, moderation.ActorOwner), qt.IsFalse)
	c.Assert(profilePolicy.CanTransition(moderation.StatusPendingReview, moderation.StatusDraft, moderation.ActorOwner), qt.IsFalse)
	c.Assert(profilePolicy.CanTransition(moderation.StatusPendingReview, moderation.StatusPublished, moderation.ActorOwner), qt.IsFalse)
	c.Assert(profilePolicy.CanTransition(moderation.StatusPublished, moderation.StatusDraft, moderation.ActorOwner), qt.IsFalse)
}

func TestAdminTransitions(t *testing.T) {
	c := qt.New(t)

	c.Assert(profilePolicy.CanTransition(moderation.StatusPendingReview, moderation.StatusPublished, moderation.ActorAdmin), qt.IsTrue)
	c.Assert(profilePolicy.CanTransition(moderation.StatusPendingReview, moderation.StatusRejected, moderation.ActorAdmin), qt.IsTrue)

	// Review only applies to the pending queue.
	c.Assert(profilePolicy.CanTransition(moderation.StatusDraft, moderation.StatusPublished, moderation.ActorAdmin), qt.IsFalse)
	c.Assert(profilePolicy.CanTransition(moderation.StatusRejected, moderation.StatusPublished, moderation.ActorAdmin), qt.IsFalse)
	c.Assert(profilePolicy.CanTransition(moderation.StatusPublished, moderation.StatusRejected, moderation.ActorAdmin), qt.IsFalse)
}

func TestResubmissionAfterRejection(t *testing.T) {
	c := qt.New(t)

	// Posts reopen after rejection, the other kinds do not.
	c.Assert(postPolicy.CanTransition(moderation.StatusRejected, moderation.StatusDraft, moderation.ActorOwner), qt.IsTrue)
	c.Assert(postPolicy.CanTransition(moderation.StatusRejected, moderation.StatusPendingReview, moderation.ActorOwner), qt.IsTrue)
	c.Assert(profilePolicy.CanTransition(moderation.StatusRejected, moderation.StatusDraft, moderation.ActorOwner), qt.IsFalse)
	c.Assert(profilePolicy.CanTransition(moderation.StatusRejected, moderation.StatusPendingReview, moderation.ActorOwner), qt.IsFalse)
}

func TestOwnerEditable(t *testing.T) {
	c := qt.New(t)

	c.Assert(profilePolicy.OwnerEditable(moderation.StatusDraft), qt.IsTrue)
	c.Assert(profilePolicy.OwnerEditable(moderation.StatusPendingReview), qt.IsFalse)
	c.Assert(profilePolicy.OwnerEditable(moderation.StatusPublished), qt.IsFalse)
	c.Assert(profilePolicy.OwnerEditable(moderation.StatusRejected), qt.IsFalse)
	c.Assert(postPolicy.OwnerEditable(moderation.StatusRejected), qt.IsTrue)

	c.Assert(profilePolicy.OwnerEditableStates(), qt.DeepEquals, []moderation.Status{moderation.StatusDraft})
	c.Assert(postPolicy.OwnerEditableStates(), qt.DeepEquals, []moderation.Status{moderation.StatusDraft, moderation.StatusRejected})
}

func TestOwnerDeletable(t *testing.T) {
	c := qt.New(t)

	for _, p := range []moderation.Policy{postPolicy, profilePolicy} {
		c.Assert(p.OwnerDeletable(moderation.StatusDraft), qt.IsTrue)
		c.Assert(p.OwnerDeletable(moderation.StatusPendingReview), qt.IsTrue)
		c.Assert(p.OwnerDeletable(moderation.StatusRejected), qt.IsTrue)
		c.Assert(p.OwnerDeletable(moderation.StatusPublished), qt.IsFalse)
	}
}

func TestNoOpTransition(t *testing.T) {
	c := qt.New(t)

	// Restating the current status inside an edit only works while the row
	// is owner-editable at all.
	c.Assert(profilePolicy.CanTransition(moderation.StatusDraft, moderation.StatusDraft, moderation.ActorOwner), qt.IsTrue)
	c.Assert(profilePolicy.CanTransition(moderation.StatusPendingReview, moderation.StatusPendingReview, moderation.ActorOwner), qt.IsFalse)
	c.Assert(profilePolicy.CanTransition(moderation.StatusPublished, moderation.StatusPublished, moderation.ActorOwner), qt.IsFalse)
}

func TestStatusValidation(t *testing.T) {
	c := qt.New(t)

	c.Assert(moderation.ValidStatus("draft"), qt.IsTrue)
	c.Assert(moderation.ValidStatus("archived"), qt.IsFalse)
	c.Assert(moderation.ValidInitial(moderation.StatusDraft), qt.IsTrue)
	c.Assert(moderation.ValidInitial(moderation.StatusPendingReview), qt.IsTrue)
	c.Assert(moderation.ValidInitial(moderation.StatusPublished), qt.IsFalse)
	c.Assert(moderation.ValidInitial(moderation.StatusRejected), qt.IsFalse)
	c.Assert(moderation.ReviewOutcome(moderation.StatusPublished), qt.IsTrue)
	c.Assert(moderation.ReviewOutcome(moderation.StatusRejected), qt.IsTrue)
	c.Assert(moderation.ReviewOutcome(moderation.StatusDraft), qt.IsFalse)
}
