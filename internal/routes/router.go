package routes

import (
	"log/slog"
	"net/http"
	"time"

	"gamecatalog/internal/catalog"
	"gamecatalog/internal/controllers"
	"gamecatalog/internal/importer"
	"gamecatalog/internal/middleware"
	"gamecatalog/internal/services"
	"gamecatalog/internal/storage/localcache"
	"gamecatalog/internal/storage/mariadb"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	json "github.com/goccy/go-json"
)

func SetupRouter(
	log *slog.Logger,
	source catalog.Source,
	storage *mariadb.Storage,
	cache *localcache.Cache,
	admin *middleware.AdminAuth,
	corsOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(100, 15*time.Minute))

	gameService := services.NewGameService(source, log)
	favoritesService := services.NewFavoritesService(storage, cache, source, log)
	recommendService := services.NewRecommendService(source, log)

	gameController := controllers.NewGameController(gameService, favoritesService, importer.New(log), log)
	favoritesController := controllers.NewFavoritesController(favoritesService, log)
	aiController := controllers.NewAIController(recommendService, log)
	authController := controllers.NewAuthController(admin, log)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Get("/", gameController.GetAll)
			r.With(admin.Require).Post("/", gameController.Create)
			r.With(admin.Require).Post("/import", gameController.ImportFromURL)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", gameController.GetByID)
				r.With(admin.Require).Patch("/", gameController.Update)
				r.With(admin.Require).Delete("/", gameController.Delete)
			})
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", favoritesController.GetByUser)
			r.Post("/", favoritesController.Add)
			r.Delete("/", favoritesController.Remove)
			r.Get("/check", favoritesController.Check)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Get("/moods", aiController.GetMoods)
			r.Post("/recommend", aiController.Recommend)
		})

		r.Post("/admin/login", authController.Login)
	})

	return r
}
