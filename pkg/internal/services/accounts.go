package services

import (
	"errors"
	"strings"

	"github.com/droidhub/backend/pkg/internal/database"
	"github.com/droidhub/backend/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func HashPassword(password string) (string, error) {
	cost := viper.GetInt("security.password_cost")
	if cost < bcrypt.MinCost {
		cost = 10
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// RedactUser strips the password digest off a record before it leaves
// the store. Every read path goes through this, the only exception is
// the local registration response.
func RedactUser(user models.User) models.User {
	user.PasswordDigest = ""
	return user
}

func RedactUserList(users []models.User) []models.User {
	return lo.Map(users, func(item models.User, index int) models.User {
		return RedactUser(item)
	})
}

func applyUserDefaults(user models.User) models.User {
	if len(user.Role) == 0 {
		user.Role = models.UserDefaultRole
	}
	if len(user.Bio) == 0 {
		user.Bio = models.UserDefaultBio
	}
	if len(user.OriginKind) == 0 {
		user.OriginKind = models.UserOriginKindRobot
	}
	return user
}

func NewUser(user models.User, password string) (models.User, error) {
	var probe models.User
	if err := database.C.Where("email = ?", user.Email).First(&probe).Error; err == nil {
		return user, fiber.NewError(fiber.StatusBadRequest, "user already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, err
	}

	digest, err := HashPassword(password)
	if err != nil {
		return user, err
	}

	user = applyUserDefaults(user)
	user.PasswordDigest = digest

	if err := database.C.Create(&user).Error; err != nil {
		log.Error().Err(err).Msg("An error occurred when creating user...")
		return user, err
	}

	return user, nil
}

// NewUserFromGoogle is an upsert by email. An existing account is
// returned unchanged, without a local password digest a new one gets
// the human_probably origin.
func NewUserFromGoogle(username, email, avatar string) (models.User, error) {
	var probe models.User
	if err := database.C.Where("email = ?", email).First(&probe).Error; err == nil {
		return RedactUser(probe), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return probe, err
	}

	user := applyUserDefaults(models.User{
		Username:   username,
		Email:      email,
		Avatar:     avatar,
		OriginKind: models.UserOriginKindHumanProbably,
	})

	if err := database.C.Create(&user).Error; err != nil {
		log.Error().Err(err).Msg("An error occurred when creating user via google...")
		return user, err
	}

	return user, nil
}

type UserQueryOptions struct {
	Filters    map[string]any
	Skip       int
	Limit      int
	RobotsOnly bool
}

func ListUsers(opts UserQueryOptions) ([]models.User, error) {
	tx := database.C
	if len(opts.Filters) > 0 {
		tx = tx.Where(opts.Filters)
	}

	var users []models.User
	if err := tx.
		Offset(opts.Skip).
		Limit(opts.Limit).
		Find(&users).Error; err != nil {
		return users, err
	}

	// The robots filter runs after the page is fetched, it narrows the
	// page rather than widening the query.
	if opts.RobotsOnly {
		users = lo.Filter(users, func(item models.User, index int) bool {
			return item.OriginKind == models.UserOriginKindRobot
		})
	}

	return RedactUserList(users), nil
}

// GetUser reports a missing user as a bad request, not a not found.
func GetUser(id uint) (models.User, error) {
	var user models.User
	if err := database.C.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, fiber.NewError(fiber.StatusBadRequest, "user not exists")
		}
		return user, err
	}

	return RedactUser(user), nil
}

// GetUsers silently omits the ids without a record.
func GetUsers(idx []uint) ([]models.User, error) {
	var users []models.User
	if err := database.C.Where("id IN ?", idx).Find(&users).Error; err != nil {
		return users, err
	}

	return RedactUserList(users), nil
}

func GetUsersByName(probe string) ([]models.User, error) {
	var users []models.User
	if err := database.C.
		Where("LOWER(username) LIKE ?", "%"+strings.ToLower(probe)+"%").
		Find(&users).Error; err != nil {
		return users, err
	}

	return RedactUserList(users), nil
}

func DeleteUser(id uint) (models.User, error) {
	user, err := GetUser(id)
	if err != nil {
		return user, err
	}

	if err := database.C.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		log.Error().Err(err).Uint("user", id).Msg("An error occurred when deleting user...")
		return user, err
	}

	return user, nil
}

// GetUsersByPosts builds the author lookup for a page of posts, keyed
// by creator id, one entry per distinct creator in the page.
func GetUsersByPosts(posts []models.Post) (map[uint]models.User, error) {
	idx := lo.Uniq(lo.Map(posts, func(item models.Post, index int) uint {
		return item.CreatorID
	}))

	users, err := GetUsers(idx)
	if err != nil {
		return nil, err
	}

	return lo.SliceToMap(users, func(item models.User) (uint, models.User) {
		return item.ID, item
	}), nil
}
