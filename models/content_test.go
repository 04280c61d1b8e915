package models_test

import (
	"encoding/json"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/mfghub/api-go/models"
)

func TestResetManagedStripsClientColumns(t *testing.T) {
	c := qt.New(t)

	payload := []byte(`{
		"id": 4242,
		"created_at": "2020-01-01T00:00:00Z",
		"updated_at": "2020-01-01T00:00:00Z",
		"deleted_at": "2026-01-01T00:00:00Z",
		"title": "Smuggled columns",
		"body": "A create payload picks neither its id nor its delete marker."
	}`)

	item, ok := models.NewSubmittable("posts")
	c.Assert(ok, qt.IsTrue)
	c.Assert(json.Unmarshal(payload, item), qt.IsNil)

	post := item.(*models.Post)
	c.Assert(post.ID, qt.Equals, uint(4242))
	c.Assert(post.DeletedAt.Valid, qt.IsTrue)

	item.ResetManaged()

	c.Assert(post.ID, qt.Equals, uint(0))
	c.Assert(post.CreatedAt, qt.Equals, time.Time{})
	c.Assert(post.UpdatedAt, qt.Equals, time.Time{})
	c.Assert(post.DeletedAt.Valid, qt.IsFalse)
	c.Assert(post.Title, qt.Equals, "Smuggled columns")
}

func TestClearReviewStripsReviewColumns(t *testing.T) {
	c := qt.New(t)

	payload := []byte(`{
		"title": "Self review",
		"body": "b",
		"status": "draft",
		"reviewer_id": 7,
		"reviewed_at": "2026-01-01T00:00:00Z",
		"review_notes": "looks great",
		"is_public": true,
		"published_at": "2026-01-01T00:00:00Z"
	}`)

	var post models.Post
	c.Assert(json.Unmarshal(payload, &post), qt.IsNil)

	post.ClearReview()

	c.Assert(post.ReviewerID, qt.IsNil)
	c.Assert(post.ReviewedAt, qt.IsNil)
	c.Assert(post.ReviewNotes, qt.Equals, "")
	c.Assert(post.IsPublic, qt.IsFalse)
	c.Assert(post.PublishedAt, qt.IsNil)
}
