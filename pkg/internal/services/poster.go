package services

import (
	"time"

	"github.com/droidhub/backend/pkg/internal/database"
	"github.com/rs/zerolog/log"
)

// StartPoster will drive the scheduled-posting feature once it lands.
// TODO: pick up queued posts and publish them on their schedule.
func StartPoster() error {
	log.Info().Msg("Poster requested to start, scheduled posting isn't implemented yet.")
	return nil
}

// DoAutoDatabaseCleanup prunes rows that were soft-deleted more than a
// month ago.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-30 * 24 * time.Hour)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range database.AutoMaintainRange {
		tx := database.C.Unscoped().
			Where("deleted_at IS NOT NULL").
			Where("deleted_at < ?", deadline).
			Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto cleanup...")
		}
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
