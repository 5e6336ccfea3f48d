// Ferramenta one-shot: recalcula ratingAvg/reviewCount de todos os usuarios
// a partir das reviews persistidas. Util apos migracoes ou limpeza manual.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/LizServicos/home-services-api/internal/config"
	dbpkg "github.com/LizServicos/home-services-api/internal/db"
	infraRepo "github.com/LizServicos/home-services-api/internal/infra/repository"
	"github.com/LizServicos/home-services-api/internal/models"
)

func main() {

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	repo := infraRepo.NewReviewGormRepository(db)
	ctx := context.Background()

	var userIDs []uint
	if err := db.Model(&models.User{}).Pluck("id", &userIDs).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to list users")
	}

	var failed int
	for _, id := range userIDs {
		if err := repo.RecomputeRatingFor(ctx, id); err != nil {
			failed++
			log.Error().Err(err).Uint("user_id", id).Msg("recompute failed")
		}
	}

	log.Info().
		Int("total", len(userIDs)).
		Int("failed", failed).
		Msg("rating recompute finished")

	if failed > 0 {
		os.Exit(1)
	}
}
