package services

import (
	"errors"
	"strings"
	"sync"

	"github.com/droidhub/backend/pkg/internal/database"
	"github.com/droidhub/backend/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var languageDetector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		WithLowAccuracyMode().
		Build()
})

func DetectLanguage(content string) string {
	if len(strings.TrimSpace(content)) == 0 {
		return "unknown"
	}

	if language, ok := languageDetector().DetectLanguageOf(content); ok {
		return strings.ToLower(language.IsoCode639_1().String())
	}

	return "unknown"
}

func validatePostKind(item models.Post) error {
	switch item.Kind {
	case models.PostKindText:
		if len(item.Content) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "content is required for text posts")
		}
	case models.PostKindImage:
		if len(item.Images) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "images are required for image posts")
		}
	case models.PostKindVideo:
		if len(item.Videos) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "videos are required for video posts")
		}
	case models.PostKindGeneral:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown post kind")
	}

	return nil
}

// sanitizePost clears the media alternatives off a text post, a text
// post never retains image, video or caption data even when supplied.
func sanitizePost(item models.Post) models.Post {
	if item.Kind == models.PostKindText {
		item.Images = nil
		item.Videos = nil
		item.Caption = ""
	}
	return item
}

func NewPost(item models.Post) (models.Post, error) {
	if len(item.Kind) == 0 {
		item.Kind = models.PostKindGeneral
	}

	if err := validatePostKind(item); err != nil {
		return item, err
	}

	item = sanitizePost(item)
	item.Language = DetectLanguage(strings.TrimSpace(item.Content + " " + item.Caption))

	if err := database.C.Save(&item).Error; err != nil {
		log.Error().Err(err).Msg("An error occurred when creating post...")
		return item, err
	}

	return item, nil
}

// ListPosts pages through the posts in insertion order and joins the
// distinct creators in process memory.
func ListPosts(take int, offset int) ([]models.Post, map[uint]models.User, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Post
	if err := database.C.
		Limit(take).Offset(offset).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return items, nil, err
	}

	users, err := GetUsersByPosts(items)
	if err != nil {
		return items, nil, err
	}

	return items, users, nil
}

func GetPost(id uint) (models.Post, error) {
	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		return item, err
	}

	return item, nil
}

// PostPatch is the whitelist of mutable post fields, anything else in
// an update payload is dropped on the floor.
type PostPatch struct {
	Kind      *string  `json:"kind"`
	Content   *string  `json:"content"`
	Images    []string `json:"images"`
	Videos    []string `json:"videos"`
	Caption   *string  `json:"caption"`
	Tags      []string `json:"tags"`
	Resources []string `json:"resources"`
}

func EditPost(id uint, patch PostPatch) (models.Post, error) {
	item, err := GetPost(id)
	if err != nil {
		return item, err
	}

	if patch.Kind != nil {
		item.Kind = *patch.Kind
	}
	if patch.Content != nil {
		item.Content = *patch.Content
	}
	if patch.Images != nil {
		item.Images = datatypes.NewJSONSlice(patch.Images)
	}
	if patch.Videos != nil {
		item.Videos = datatypes.NewJSONSlice(patch.Videos)
	}
	if patch.Caption != nil {
		item.Caption = *patch.Caption
	}
	if patch.Tags != nil {
		item.Tags = datatypes.NewJSONSlice(patch.Tags)
	}
	if patch.Resources != nil {
		item.Resources = datatypes.NewJSONSlice(patch.Resources)
	}

	if err := validatePostKind(item); err != nil {
		return item, err
	}

	item = sanitizePost(item)
	item.Language = DetectLanguage(strings.TrimSpace(item.Content + " " + item.Caption))

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func DeletePost(id uint) (models.Post, error) {
	item, err := GetPost(id)
	if err != nil {
		return item, err
	}

	if err := database.C.Delete(&item).Error; err != nil {
		log.Error().Err(err).Uint("post", id).Msg("An error occurred when deleting post...")
		return item, err
	}

	return item, nil
}
