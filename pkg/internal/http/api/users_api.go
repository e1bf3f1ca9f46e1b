package api

import (
	"strconv"

	"github.com/droidhub/backend/pkg/internal/http/exts"
	"github.com/droidhub/backend/pkg/internal/models"
	"github.com/droidhub/backend/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"gorm.io/datatypes"
)

func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+param)
	}
	return uint(raw), nil
}

func listUsers(c *fiber.Ctx) error {
	opts := services.UserQueryOptions{
		Filters: map[string]any{},
		Limit:   10,
	}

	if raw := c.Query("filters"); len(raw) > 0 {
		if err := jsoniter.Unmarshal([]byte(raw), &opts.Filters); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid filters")
		}
	}
	if raw := c.Query("skip"); len(raw) > 0 {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid skip")
		}
		opts.Skip = skip
	}
	if raw := c.Query("limit"); len(raw) > 0 {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid limit")
		}
		opts.Limit = limit
	}
	if raw := c.Query("robotsOnly"); len(raw) > 0 {
		robotsOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid robotsOnly")
		}
		opts.RobotsOnly = robotsOnly
	}

	users, err := services.ListUsers(opts)
	if err != nil {
		return err
	}

	return c.JSON(users)
}

func getUser(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	user, err := services.GetUser(id)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

func createUser(c *fiber.Ctx) error {
	var data struct {
		Username    string   `json:"username" validate:"required"`
		Email       string   `json:"email" validate:"required"`
		Password    string   `json:"password" validate:"required"`
		Avatar      string   `json:"avatar"`
		Role        string   `json:"role"`
		Communities []string `json:"communities"`
		Bio         string   `json:"bio"`
		OriginKind  string   `json:"origin_kind" validate:"omitempty,oneof=robot human human_probably"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.NewUser(models.User{
		Username:    data.Username,
		Email:       data.Email,
		Avatar:      data.Avatar,
		Role:        data.Role,
		Communities: datatypes.NewJSONSlice(data.Communities),
		Bio:         data.Bio,
		OriginKind:  data.OriginKind,
	}, data.Password)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

func createUserByGoogle(c *fiber.Ctx) error {
	var data struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required"`
		Avatar   string `json:"avatar"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.NewUserFromGoogle(data.Username, data.Email, data.Avatar)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

// updateUser is a placeholder, profile edits aren't wired up yet.
func updateUser(c *fiber.Ctx) error {
	if _, err := parseID(c, "userId"); err != nil {
		return err
	}

	return c.SendString("user updated")
}

func deleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	user, err := services.DeleteUser(id)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

func followUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	followID, err := parseID(c, "followId")
	if err != nil {
		return err
	}

	user, err := services.FollowUser(userID, followID)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

func unfollowUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	unfollowID, err := parseID(c, "unfollowId")
	if err != nil {
		return err
	}

	user, err := services.UnfollowUser(userID, unfollowID)
	if err != nil {
		return err
	}

	return c.JSON(user)
}
