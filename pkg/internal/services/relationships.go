package services

import (
	"errors"

	"github.com/droidhub/backend/pkg/internal/database"
	"github.com/droidhub/backend/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func getUserForRelationship(id uint, absentMessage string) (models.User, error) {
	var user models.User
	if err := database.C.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, fiber.NewError(fiber.StatusBadRequest, absentMessage)
		}
		return user, err
	}
	return user, nil
}

// FollowUser appends the edge on both records in one transaction so
// the mutual lists cannot drift apart halfway.
func FollowUser(userID, followID uint) (models.User, error) {
	user, err := getUserForRelationship(userID, "user not exists")
	if err != nil {
		return user, err
	}
	target, err := getUserForRelationship(followID, "follow user not exists")
	if err != nil {
		return user, err
	}

	if lo.Contains(user.FollowingIDs, followID) {
		return user, fiber.NewError(fiber.StatusBadRequest, "you already follow this user")
	}

	user.FollowingIDs = append(user.FollowingIDs, followID)
	target.FollowerIDs = append(target.FollowerIDs, userID)

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		return tx.Save(&target).Error
	}); err != nil {
		return user, err
	}

	return RedactUser(user), nil
}

func UnfollowUser(userID, unfollowID uint) (models.User, error) {
	user, err := getUserForRelationship(userID, "user not exists")
	if err != nil {
		return user, err
	}
	target, err := getUserForRelationship(unfollowID, "unfollow user not exists")
	if err != nil {
		return user, err
	}

	if !lo.Contains(user.FollowingIDs, unfollowID) {
		return user, fiber.NewError(fiber.StatusBadRequest, "you already unfollow this user")
	}

	user.FollowingIDs = lo.Without(user.FollowingIDs, unfollowID)
	target.FollowerIDs = lo.Without(target.FollowerIDs, userID)

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		return tx.Save(&target).Error
	}); err != nil {
		return user, err
	}

	return RedactUser(user), nil
}
