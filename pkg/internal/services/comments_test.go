package services

import (
	"errors"
	"testing"

	"github.com/droidhub/backend/pkg/internal/database"
	"github.com/droidhub/backend/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func TestCommentLinkage(t *testing.T) {
	setupTestDatabase(t)

	alice := mustCreateUser(t, "alice", "alice@droidhub.io")
	bob := mustCreateUser(t, "bob", "bob@droidhub.io")
	item := mustCreatePost(t, alice)

	comment, err := NewComment(models.Comment{
		UserID: bob.ID,
		PostID: item.ID,
		Body:   "hi",
	})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	post, _ := GetPost(item.ID)
	if !lo.Contains(post.CommentIDs, comment.ID) {
		t.Fatalf("expected the comment id on the parent post")
	}

	comments, users, err := ListPostComments(item.ID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 1 || comments[0].ID != comment.ID {
		t.Fatalf("expected the new comment back, got %d records", len(comments))
	}
	if _, ok := users[bob.ID]; !ok {
		t.Fatalf("expected the commenter in the user lookup")
	}
}

func TestNewCommentMissingParents(t *testing.T) {
	setupTestDatabase(t)

	alice := mustCreateUser(t, "alice", "alice@droidhub.io")
	item := mustCreatePost(t, alice)

	_, err := NewComment(models.Comment{UserID: 999, PostID: item.ID, Body: "hi"})
	if err == nil {
		t.Fatalf("expected a missing user to fail")
	}
	if code := statusCode(t, err); code != fiber.StatusNotFound {
		t.Fatalf("expected status 404, got %d", code)
	}

	_, err = NewComment(models.Comment{UserID: alice.ID, PostID: 999, Body: "hi"})
	if err == nil {
		t.Fatalf("expected a missing post to fail")
	}
	if code := statusCode(t, err); code != fiber.StatusNotFound {
		t.Fatalf("expected status 404, got %d", code)
	}
}

func TestEditCommentLatchesEdited(t *testing.T) {
	setupTestDatabase(t)

	alice := mustCreateUser(t, "alice", "alice@droidhub.io")
	item := mustCreatePost(t, alice)

	comment, err := NewComment(models.Comment{UserID: alice.ID, PostID: item.ID, Body: "first draft"})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if comment.IsEdited {
		t.Fatalf("expected a fresh comment to be unedited")
	}

	updated, err := EditComment(comment.ID, "second draft")
	if err != nil {
		t.Fatalf("edit comment: %v", err)
	}
	if updated.Body != "second draft" || !updated.IsEdited {
		t.Fatalf("expected the edit to land and latch the flag")
	}
	if !updated.UpdatedAt.After(comment.UpdatedAt) {
		t.Fatalf("expected the edit to bump the update timestamp")
	}

	_, err = EditComment(999, "nope")
	if err == nil {
		t.Fatalf("expected editing a missing comment to fail")
	}
	if code := statusCode(t, err); code != fiber.StatusNotFound {
		t.Fatalf("expected status 404, got %d", code)
	}
}

func TestDeleteCommentRetractsID(t *testing.T) {
	setupTestDatabase(t)

	alice := mustCreateUser(t, "alice", "alice@droidhub.io")
	item := mustCreatePost(t, alice)

	comment, err := NewComment(models.Comment{UserID: alice.ID, PostID: item.ID, Body: "hi"})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if _, err := DeleteComment(comment.ID); err != nil {
		t.Fatalf("delete comment: %v", err)
	}

	post, _ := GetPost(item.ID)
	if lo.Contains(post.CommentIDs, comment.ID) {
		t.Fatalf("expected the id to be retracted from the parent post")
	}

	var probe models.Comment
	err = database.C.Where("id = ?", comment.ID).First(&probe).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected the comment record to be gone, got %v", err)
	}

	_, err = DeleteComment(comment.ID)
	if err == nil {
		t.Fatalf("expected deleting twice to fail")
	}
	if code := statusCode(t, err); code != fiber.StatusNotFound {
		t.Fatalf("expected status 404, got %d", code)
	}
}
