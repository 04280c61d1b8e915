package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mfghub/api-go/models"
)

func InitDB() *gorm.DB {
	dbHost := os.Getenv("DB_HOST")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort)

	// TranslateError lets handlers detect unique-slug violations as
	// gorm.ErrDuplicatedKey instead of matching driver error strings.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto Migrate models
	db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.RefreshToken{},
		&models.Post{},
		&models.CompanyProfile{},
		&models.PersonProfile{},
		&models.ProductProfile{},
		&models.ConferenceProposal{},
		&models.ReviewLog{},
		&models.Course{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.Subscriber{},
	)

	seedRoles(db)

	return db
}

func seedRoles(db *gorm.DB) {
	for _, name := range []string{models.RoleContributor, models.RoleAdmin} {
		var role models.Role
		if err := db.Where("name = ?", name).FirstOrCreate(&role, models.Role{Name: name}).Error; err != nil {
			log.Printf("Failed to seed role %s: %v", name, err)
		}
	}
}
