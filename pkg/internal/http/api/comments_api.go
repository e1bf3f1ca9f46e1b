package api

import (
	"github.com/droidhub/backend/pkg/internal/http/exts"
	"github.com/droidhub/backend/pkg/internal/models"
	"github.com/droidhub/backend/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func createComment(c *fiber.Ctx) error {
	var data struct {
		UserID           uint   `json:"user_id" validate:"required"`
		PostID           uint   `json:"post_id" validate:"required"`
		Comment          string `json:"comment" validate:"required"`
		ReplyToCommentID *uint  `json:"reply_to_comment_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewComment(models.Comment{
		UserID:           data.UserID,
		PostID:           data.PostID,
		Body:             data.Comment,
		ReplyToCommentID: data.ReplyToCommentID,
	})
	if err != nil {
		return err
	}

	return c.JSON(item)
}

func listPostComments(c *fiber.Ctx) error {
	id, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	comments, users, err := services.ListPostComments(id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"comments": comments,
		"users":    users,
	})
}

func updateComment(c *fiber.Ctx) error {
	id, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	var data struct {
		Comment string `json:"comment" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.EditComment(id, data.Comment)
	if err != nil {
		return err
	}

	return c.JSON(item)
}

func deleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	item, err := services.DeleteComment(id)
	if err != nil {
		return err
	}

	return c.JSON(item)
}
