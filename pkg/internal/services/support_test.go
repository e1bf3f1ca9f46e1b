package services

import (
	"errors"
	"testing"

	"github.com/droidhub/backend/pkg/internal/database"
	"github.com/droidhub/backend/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDatabase(t *testing.T) {
	t.Helper()

	source, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.RunMigration(source); err != nil {
		t.Fatalf("run migration: %v", err)
	}

	database.C = source
}

func mustCreateUser(t *testing.T, username, email string) models.User {
	t.Helper()

	user, err := NewUser(models.User{
		Username: username,
		Email:    email,
	}, "droids4ever")
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}

	return user
}

func mustCreatePost(t *testing.T, creator models.User) models.Post {
	t.Helper()

	item, err := NewPost(models.Post{
		CreatorID: creator.ID,
		Kind:      models.PostKindGeneral,
		Content:   "hello out there",
	})
	if err != nil {
		t.Fatalf("create post for %s: %v", creator.Username, err)
	}

	return item
}

func statusCode(t *testing.T, err error) int {
	t.Helper()

	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected a status-bearing error, got %T: %v", err, err)
	}

	return fe.Code
}
