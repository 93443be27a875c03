package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/docs" // swagger docs

	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/auth"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/cache"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/config"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/db"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/handler"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/repository"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Movie Recommend Auth API
// @version 1.0
// @description Cuentas de usuario y sesión para el frontend de recomendaciones
// @host localhost:4000
// @BasePath /
func main() {
	cfg := config.Load()

	// Mongo y Redis
	mongoDB := db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository(mongoDB)

	// el índice único de email es la defensa real contra registros
	// concurrentes con el mismo email, así que sin índice no arrancamos
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			cancel()
			log.Fatalf("[mongo] no se pudo crear índice de users: %v", err)
		}
		cancel()
	}

	// services
	tokens := auth.NewTokenCodec(cfg.JWTSecret)
	authSvc := service.NewAuthService(userRepo, tokens)
	profileSvc := service.NewProfileService(userRepo)

	// handlers
	cookies := handler.CookiePolicyFor(cfg.IsProduction())
	authH := handler.NewAuthHandler(authSvc, cookies)
	meH := handler.NewMeHandler(profileSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "X-Requested-With", "Content-Type", "Accept"},
		AllowCredentials: true, // la cookie de sesión viaja cross-origin
		MaxAge:           300,
	}))

	// =============
	// Rutas públicas
	// =============
	r.Get("/api/health", handler.Health)

	r.Post("/api/auth/register", authH.Register)
	r.Post("/api/auth/login", authH.Login)
	r.Post("/api/auth/logout", authH.Logout)

	// ===========================
	// Rutas protegidas con cookie
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(handler.RequireAuth(authSvc))

		r.Route("/api/me", func(r chi.Router) {
			r.Get("/", meH.Me)
			r.Put("/mood", meH.SetMood)
			r.Post("/favorites", meH.AddFavorite)
			r.Delete("/favorites/{movieId}", meH.RemoveFavorite)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s (env=%s)", cfg.HTTPPort, cfg.Env)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
