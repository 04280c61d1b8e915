package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mfghub/api-go/middleware"
	"github.com/mfghub/api-go/models"
)

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Role{}, &models.User{}, &models.RefreshToken{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func signToken(t *testing.T, userID uint, role string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func adminTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", middleware.AuthMiddleware(), middleware.AdminMiddleware(db), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminMiddlewareRevokesDemotedAdmin(t *testing.T) {
	c := qt.New(t)
	t.Setenv("JWT_SECRET", "test-secret")

	db := newAuthTestDB(t)
	adminRole := models.Role{Name: models.RoleAdmin}
	contributorRole := models.Role{Name: models.RoleContributor}
	c.Assert(db.Create(&adminRole).Error, qt.IsNil)
	c.Assert(db.Create(&contributorRole).Error, qt.IsNil)

	user := models.User{Username: "reviewer", Email: "reviewer@example.com", RoleID: adminRole.ID}
	c.Assert(db.Create(&user).Error, qt.IsNil)

	r := adminTestRouter(db)
	token := signToken(t, user.ID, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusOK)

	// Demotion takes effect on the next request; the still-valid token
	// carrying an admin claim no longer gets through.
	c.Assert(db.Model(&user).Update("role_id", contributorRole.ID).Error, qt.IsNil)

	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusForbidden)
}

func TestAdminMiddlewareRequiresToken(t *testing.T) {
	c := qt.New(t)
	t.Setenv("JWT_SECRET", "test-secret")

	db := newAuthTestDB(t)
	r := adminTestRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
}

func TestAdminMiddlewareRejectsUnknownUser(t *testing.T) {
	c := qt.New(t)
	t.Setenv("JWT_SECRET", "test-secret")

	db := newAuthTestDB(t)
	r := adminTestRouter(db)

	// Valid signature, but no matching row: deleted accounts lose access
	// even with a live token.
	token := signToken(t, 999, models.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
}
