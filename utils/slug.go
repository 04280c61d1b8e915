package utils

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

// Slugify derives a URL slug from a title or name. An input with no
// sluggable characters falls back to a timestamped placeholder so the
// not-null constraint holds; uniqueness is still enforced by the database.
func Slugify(source string) string {
	s := slug.Make(source)
	if s == "" {
		return fmt.Sprintf("untitled-%d", time.Now().Unix())
	}
	if len(s) > 150 {
		s = s[:150]
	}
	return s
}
