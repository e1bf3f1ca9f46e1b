package services

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func TestToggleReactionRoundTrip(t *testing.T) {
	setupTestDatabase(t)

	alice := mustCreateUser(t, "alice", "alice@droidhub.io")
	bob := mustCreateUser(t, "bob", "bob@droidhub.io")
	item := mustCreatePost(t, alice)

	post, user, err := TogglePostReaction(item.ID, bob.ID)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !lo.Contains(post.LikerIDs, bob.ID) || !lo.Contains(user.LikedPostIDs, item.ID) {
		t.Fatalf("expected the edge on both sides after the first toggle")
	}
	if len(user.PasswordDigest) != 0 {
		t.Fatalf("expected the returned user to be redacted")
	}

	post, user, err = TogglePostReaction(item.ID, bob.ID)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if len(post.LikerIDs) != 0 || len(user.LikedPostIDs) != 0 {
		t.Fatalf("expected the second toggle to restore both lists")
	}
}

func TestToggleReactionNoDuplicates(t *testing.T) {
	setupTestDatabase(t)

	alice := mustCreateUser(t, "alice", "alice@droidhub.io")
	item := mustCreatePost(t, alice)

	for i := 0; i < 3; i++ {
		if _, _, err := TogglePostReaction(item.ID, alice.ID); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}

	post, _ := GetPost(item.ID)
	if len(post.LikerIDs) != 1 {
		t.Fatalf("expected an odd number of toggles to leave one liker, got %d", len(post.LikerIDs))
	}
}

func TestToggleReactionMissingEntities(t *testing.T) {
	setupTestDatabase(t)

	alice := mustCreateUser(t, "alice", "alice@droidhub.io")
	item := mustCreatePost(t, alice)

	_, _, err := TogglePostReaction(999, alice.ID)
	if err == nil {
		t.Fatalf("expected a missing post to fail")
	}
	if code := statusCode(t, err); code != fiber.StatusNotFound {
		t.Fatalf("expected status 404, got %d", code)
	}

	_, _, err = TogglePostReaction(item.ID, 999)
	if err == nil {
		t.Fatalf("expected a missing user to fail")
	}
	if code := statusCode(t, err); code != fiber.StatusNotFound {
		t.Fatalf("expected status 404, got %d", code)
	}
}
