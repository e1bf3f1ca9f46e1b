package api

import (
	"github.com/droidhub/backend/pkg/internal/http/exts"
	"github.com/droidhub/backend/pkg/internal/models"
	"github.com/droidhub/backend/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func listPosts(c *fiber.Ctx) error {
	take := c.QueryInt("limit", 10)
	offset := c.QueryInt("skip", 0)

	posts, users, err := services.ListPosts(take, offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"posts": posts,
		"users": users,
	})
}

func getPost(c *fiber.Ctx) error {
	id, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	item, err := services.GetPost(id)
	if err != nil {
		return err
	}

	return c.JSON(item)
}

func createPost(c *fiber.Ctx) error {
	var data struct {
		CreatorID uint     `json:"creator_id" validate:"required"`
		Kind      string   `json:"kind" validate:"omitempty,oneof=general text image video"`
		Content   string   `json:"content"`
		Images    []string `json:"images"`
		Videos    []string `json:"videos"`
		Caption   string   `json:"caption"`
		Tags      []string `json:"tags"`
		Resources []string `json:"resources"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPost(models.Post{
		CreatorID: data.CreatorID,
		Kind:      data.Kind,
		Content:   data.Content,
		Images:    datatypes.NewJSONSlice(data.Images),
		Videos:    datatypes.NewJSONSlice(data.Videos),
		Caption:   data.Caption,
		Tags:      datatypes.NewJSONSlice(data.Tags),
		Resources: datatypes.NewJSONSlice(data.Resources),
	})
	if err != nil {
		return err
	}

	return c.JSON(item)
}

func updatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	var patch services.PostPatch
	if err := exts.BindAndValidate(c, &patch); err != nil {
		return err
	}

	item, err := services.EditPost(id, patch)
	if err != nil {
		return err
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	item, err := services.DeletePost(id)
	if err != nil {
		return err
	}

	return c.JSON(item)
}

func togglePostReaction(c *fiber.Ctx) error {
	var data struct {
		PostID uint `json:"post_id" validate:"required"`
		UserID uint `json:"user_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	post, user, err := services.TogglePostReaction(data.PostID, data.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"post": post,
		"user": user,
	})
}
