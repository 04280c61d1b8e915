package controllers

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/lib/pq"

	"github.com/mfghub/api-go/models"
	"github.com/mfghub/api-go/moderation"
)

func draftPost() *models.Post {
	post := &models.Post{Title: "t", Body: "b"}
	post.SetStatus(moderation.StatusDraft)
	return post
}

func TestEditableUpdatesStatusRestatement(t *testing.T) {
	c := qt.New(t)
	cc := &ContributorController{}
	post := draftPost()

	// A payload that only restates the current status is a no-op, not an
	// empty request.
	updates, restated, err := cc.editableUpdates(post, post.Policy(), map[string]interface{}{
		"status": "draft",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(restated, qt.IsTrue)
	c.Assert(updates, qt.HasLen, 0)

	updates, restated, err = cc.editableUpdates(post, post.Policy(), map[string]interface{}{
		"status": "pending_review",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(restated, qt.IsFalse)
	c.Assert(updates["status"], qt.Equals, "pending_review")
}

func TestEditableUpdatesRejectsInvalidTransitions(t *testing.T) {
	c := qt.New(t)
	cc := &ContributorController{}
	post := draftPost()

	_, _, err := cc.editableUpdates(post, post.Policy(), map[string]interface{}{
		"status": "published",
	})
	c.Assert(err, qt.ErrorMatches, "cannot move submission from draft to published")

	_, _, err = cc.editableUpdates(post, post.Policy(), map[string]interface{}{
		"status": "archived",
	})
	c.Assert(err, qt.ErrorMatches, `unknown status "archived"`)
}

func TestEditableUpdatesFiltersColumns(t *testing.T) {
	c := qt.New(t)
	cc := &ContributorController{}
	post := draftPost()

	updates, restated, err := cc.editableUpdates(post, post.Policy(), map[string]interface{}{
		"title":       "New title",
		"tags":        []interface{}{"cnc", "oee"},
		"author_id":   99,
		"reviewer_id": 7,
		"is_public":   true,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(restated, qt.IsFalse)
	c.Assert(updates["title"], qt.Equals, "New title")
	c.Assert(updates["tags"], qt.DeepEquals, pq.StringArray{"cnc", "oee"})

	// Owner, review and visibility columns never pass the whitelist.
	_, ok := updates["author_id"]
	c.Assert(ok, qt.IsFalse)
	_, ok = updates["reviewer_id"]
	c.Assert(ok, qt.IsFalse)
	_, ok = updates["is_public"]
	c.Assert(ok, qt.IsFalse)
}
