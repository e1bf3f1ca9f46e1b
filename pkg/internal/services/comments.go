package services

import (
	"errors"

	"github.com/droidhub/backend/pkg/internal/database"
	"github.com/droidhub/backend/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// NewComment persists the comment and appends its id to the parent
// post's list in one transaction.
func NewComment(item models.Comment) (models.Comment, error) {
	var user models.User
	if err := database.C.Where("id = ?", item.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fiber.NewError(fiber.StatusNotFound, "user or post not found")
		}
		return item, err
	}

	var post models.Post
	if err := database.C.Where("id = ?", item.PostID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fiber.NewError(fiber.StatusNotFound, "user or post not found")
		}
		return item, err
	}

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		post.CommentIDs = append(post.CommentIDs, item.ID)
		return tx.Save(&post).Error
	}); err != nil {
		log.Error().Err(err).Msg("An error occurred when creating comment...")
		return item, err
	}

	return item, nil
}

// ListPostComments returns the post's comments plus the commenting
// users keyed by id.
func ListPostComments(postID uint) ([]models.Comment, map[uint]models.User, error) {
	post, err := GetPost(postID)
	if err != nil {
		return nil, nil, err
	}

	var comments []models.Comment
	if err := database.C.
		Where("id IN ?", []uint(post.CommentIDs)).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return comments, nil, err
	}

	idx := lo.Uniq(lo.Map(comments, func(item models.Comment, index int) uint {
		return item.UserID
	}))

	users, err := GetUsers(idx)
	if err != nil {
		return comments, nil, err
	}

	return comments, lo.SliceToMap(users, func(item models.User) (uint, models.User) {
		return item.ID, item
	}), nil
}

func EditComment(id uint, body string) (models.Comment, error) {
	var item models.Comment
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fiber.NewError(fiber.StatusNotFound, "comment not found")
		}
		return item, err
	}

	item.Body = body
	item.IsEdited = true

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// DeleteComment also retracts the id from the parent post so the
// post's list never points at a missing record.
func DeleteComment(id uint) (models.Comment, error) {
	var item models.Comment
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fiber.NewError(fiber.StatusNotFound, "comment not found")
		}
		return item, err
	}

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}

		var post models.Post
		if err := tx.Where("id = ?", item.PostID).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		post.CommentIDs = lo.Without(post.CommentIDs, item.ID)
		return tx.Save(&post).Error
	}); err != nil {
		log.Error().Err(err).Uint("comment", id).Msg("An error occurred when deleting comment...")
		return item, err
	}

	return item, nil
}
