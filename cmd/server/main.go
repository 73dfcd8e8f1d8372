package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/wmastover/labupops-lead-qualifier/internal/app/router"
	authadapters "github.com/wmastover/labupops-lead-qualifier/internal/feature/auth/adapters"
	authhandler "github.com/wmastover/labupops-lead-qualifier/internal/feature/auth/transport/handler"
	authusecase "github.com/wmastover/labupops-lead-qualifier/internal/feature/auth/usecase"
	backgroundgemini "github.com/wmastover/labupops-lead-qualifier/internal/feature/background/adapters/gemini"
	backgroundhandler "github.com/wmastover/labupops-lead-qualifier/internal/feature/background/transport/handler"
	backgroundusecase "github.com/wmastover/labupops-lead-qualifier/internal/feature/background/usecase"
	logogemini "github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/adapters/gemini"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/adapters/httpimg"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/adapters/page"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/adapters/vision"
	logohandler "github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/transport/handler"
	logousecase "github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/db"
	platformhttp "github.com/wmastover/labupops-lead-qualifier/internal/platform/http"
	jwtmw "github.com/wmastover/labupops-lead-qualifier/internal/platform/jwt"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/render"
	"github.com/wmastover/labupops-lead-qualifier/internal/shared/ratelimiter"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	// db
	conn := db.OpenDB()

	// Auth
	userRepo := authadapters.NewUserGorm(conn)
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)

	// Logo finder
	var extractor logousecase.PageExtractor
	renderCfg := render.LoadConfig()
	if renderCfg.BaseURL != "" {
		renderClient := render.NewClient(renderCfg, platformhttp.NewHTTPClient(renderCfg.Timeout))
		extractor = page.NewRenderedExtractor(renderClient, page.DefaultSelectors)
	} else {
		log.Println("[WARN] RENDER_API_URL not set, falling back to static HTML extraction.")
		extractor = page.NewStaticExtractor(platformhttp.NewHTTPClient(15*time.Second), nil)
	}
	validator, err := logogemini.NewGeminiValidator(ctx)
	if err != nil {
		log.Fatal("failed to create validator:", err)
	}
	var annotator logousecase.LogoAnnotator
	if detector, err := vision.NewVisionLogoDetector(ctx); err != nil {
		log.Println("[WARN] Cloud Vision unavailable, skipping brand cross-check:", err)
	} else {
		annotator = detector
		defer func() {
			if err := detector.Close(); err != nil {
				log.Println("[ERROR] Failed to close Vision client:", err)
			}
		}()
	}
	downloader := httpimg.NewDownloader(platformhttp.NewHTTPClient(30 * time.Second))
	logoUC := logousecase.NewLogoFinderUsecase(
		extractor,
		logousecase.NewRanker(logousecase.DefaultRankerConfig()),
		downloader,
		validator,
		annotator,
		ratelimiter.NewFixedDelay(time.Second),
	)

	// Background generation
	analyzer, err := backgroundgemini.NewGeminiAnalyzer(ctx)
	if err != nil {
		log.Fatal("failed to create analyzer:", err)
	}
	generator, err := backgroundgemini.NewImagenGenerator(ctx)
	if err != nil {
		log.Fatal("failed to create generator:", err)
	}
	backgroundUC := backgroundusecase.NewBackgroundUsecase(downloader, analyzer, generator)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	logoH := logohandler.NewLogoFinderHandler(logoUC)
	backgroundH := backgroundhandler.NewBackgroundHandler(backgroundUC)

	r := router.NewRouter(authH, logoH, backgroundH)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
