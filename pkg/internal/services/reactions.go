package services

import (
	"errors"

	"github.com/droidhub/backend/pkg/internal/database"
	"github.com/droidhub/backend/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// TogglePostReaction flips the like edge between a user and a post.
// The edge is stored on both sides, so both records change inside one
// transaction. Toggling twice is a no-op.
func TogglePostReaction(postID, userID uint) (models.Post, models.User, error) {
	var post models.Post
	if err := database.C.Where("id = ?", postID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return post, models.User{}, fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		return post, models.User{}, err
	}

	var user models.User
	if err := database.C.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return post, user, fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return post, user, err
	}

	if lo.Contains(user.LikedPostIDs, postID) {
		user.LikedPostIDs = lo.Without(user.LikedPostIDs, postID)
		post.LikerIDs = lo.Without(post.LikerIDs, userID)
	} else {
		user.LikedPostIDs = append(user.LikedPostIDs, postID)
		post.LikerIDs = append(post.LikerIDs, userID)
	}

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		return tx.Save(&post).Error
	}); err != nil {
		return post, user, err
	}

	return post, RedactUser(user), nil
}
