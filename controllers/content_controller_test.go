package controllers

import (
	"errors"
	"fmt"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/lib/pq"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mfghub/api-go/models"
	"github.com/mfghub/api-go/moderation"
)

// newTestDB opens a throwaway in-memory database, named per test so
// parallel packages do not share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Role{}, &models.User{}, &models.RefreshToken{}, &models.Post{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func seedPost(t *testing.T, db *gorm.DB, slug string, status moderation.Status) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:    "Post " + slug,
		Slug:     slug,
		Body:     "body",
		Tags:     pq.StringArray{"manufacturing"},
		AuthorID: 1,
	}
	post.SetStatus(status)
	if status == moderation.StatusPublished {
		now := time.Now()
		post.IsPublic = true
		post.PublishedAt = &now
		post.ReviewedAt = &now
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("seed post %s: %v", slug, err)
	}
	return post
}

func TestPublishedScopeVisibility(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)

	seedPost(t, db, "still-draft", moderation.StatusDraft)
	seedPost(t, db, "in-review", moderation.StatusPendingReview)
	seedPost(t, db, "sent-back", moderation.StatusRejected)
	published := seedPost(t, db, "live-article", moderation.StatusPublished)

	var posts []models.Post
	c.Assert(publishedScope(db).Find(&posts).Error, qt.IsNil)
	c.Assert(posts, qt.HasLen, 1)
	c.Assert(posts[0].ID, qt.Equals, published.ID)
	c.Assert(posts[0].Slug, qt.Equals, "live-article")

	// Anything below published is indistinguishable from missing.
	for _, slug := range []string{"still-draft", "in-review", "sent-back"} {
		var post models.Post
		err := publishedScope(db).First(&post, "slug = ?", slug).Error
		c.Assert(errors.Is(err, gorm.ErrRecordNotFound), qt.IsTrue, qt.Commentf("slug %s", slug))
	}
}

func TestOwnerEditGuardSkipsNonEditableRows(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)

	pending := seedPost(t, db, "under-review", moderation.StatusPendingReview)
	draft := seedPost(t, db, "still-editable", moderation.StatusDraft)
	editable := statusStrings(pending.Policy().OwnerEditableStates())

	// The conditional UPDATE leaves a row alone once it left the owner's
	// editable states, even if the handler read it as editable earlier.
	result := db.Model(pending).
		Where("author_id = ?", uint(1)).
		Where("status IN ?", editable).
		Updates(map[string]interface{}{"title": "Changed anyway"})
	c.Assert(result.Error, qt.IsNil)
	c.Assert(result.RowsAffected, qt.Equals, int64(0))

	var reloaded models.Post
	c.Assert(db.First(&reloaded, pending.ID).Error, qt.IsNil)
	c.Assert(reloaded.Title, qt.Equals, "Post under-review")
	c.Assert(reloaded.GetStatus(), qt.Equals, moderation.StatusPendingReview)

	// The same statement applies to a draft row.
	result = db.Model(draft).
		Where("author_id = ?", uint(1)).
		Where("status IN ?", editable).
		Updates(map[string]interface{}{"title": "Edited draft"})
	c.Assert(result.Error, qt.IsNil)
	c.Assert(result.RowsAffected, qt.Equals, int64(1))
}

func TestDuplicateSlugLeavesFirstRowIntact(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)

	first := seedPost(t, db, "taken-slug", moderation.StatusDraft)

	dup := &models.Post{Title: "Second claim", Slug: "taken-slug", Body: "body", AuthorID: 2}
	dup.SetStatus(moderation.StatusDraft)
	err := db.Create(dup).Error
	c.Assert(errors.Is(err, gorm.ErrDuplicatedKey), qt.IsTrue)

	var kept models.Post
	c.Assert(db.First(&kept, "slug = ?", "taken-slug").Error, qt.IsNil)
	c.Assert(kept.ID, qt.Equals, first.ID)
	c.Assert(kept.Title, qt.Equals, "Post taken-slug")
	c.Assert(kept.AuthorID, qt.Equals, uint(1))
}
