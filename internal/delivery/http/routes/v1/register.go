package v1

import (
	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/infrastructure/identity"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cacheClient *cache.Redis) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	authMw := middleware.NewAuthMiddleware(jwtSvc)
	provider := identity.NewHTTPClient(cfg.Identity)

	var cacheSvc usecase.Cache
	if cacheClient != nil {
		cacheSvc = cacheClient
	}

	citizenRepo := repository.NewPostgresCitizenRepository(db)
	continentRepo := repository.NewPostgresContinentRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	searchRepo := repository.NewPostgresSearchRepository(db)
	successRepo := repository.NewPostgresSuccessRepository(db)
	listingRepo := repository.NewPostgresListingRepository(db)

	citizenUC := usecase.NewCitizenUsecase(db, citizenRepo, provider, jwtSvc)
	continentUC := usecase.NewContinentUsecase(continentRepo, cacheSvc)
	profileUC := usecase.NewProfileUsecase(db, profileRepo, skillRepo, citizenRepo, continentRepo)
	searchUC := usecase.NewSearchUsecase(searchRepo, cacheSvc)
	successUC := usecase.NewSuccessUsecase(successRepo)
	listingUC := usecase.NewListingUsecase(listingRepo)

	citizenHandler := handler.NewCitizenHandler(citizenUC)
	continentHandler := handler.NewContinentHandler(continentUC)
	profileHandler := handler.NewProfileHandler(profileUC, searchUC)
	successHandler := handler.NewSuccessHandler(successUC)
	listingHandler := handler.NewListingHandler(listingUC)

	citizenHandler.RegisterPublicRoutes(r.Group("/citizens"))
	continentHandler.RegisterRoutes(r.Group("/continents"))
	profileHandler.RegisterPublicRoutes(r.Group("/profile"))

	protected := r.Group("", authMw.Middleware())

	citizenHandler.RegisterProtectedRoutes(protected.Group("/citizens"))
	profileHandler.RegisterProtectedRoutes(protected.Group("/profile"))
	successHandler.RegisterRoutes(protected.Group("/success"))
	listingHandler.RegisterRoutes(protected.Group("/listings"))
}
