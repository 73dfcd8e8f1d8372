package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/places/adapters/googleplaces"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/places/adapters/leadstore"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/places/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/cache"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/csvio"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/db"
	platformhttp "github.com/wmastover/labupops-lead-qualifier/internal/platform/http"
	platformredis "github.com/wmastover/labupops-lead-qualifier/internal/platform/redis"
	"github.com/wmastover/labupops-lead-qualifier/internal/shared/ratelimiter"
)

var csvHeader = []string{
	"name", "place_id", "address", "latitude", "longitude", "rating",
	"user_ratings_total", "price_level", "types", "business_status",
	"phone_number", "website", "opening_hours",
}

func main() {
	_ = godotenv.Load()

	town := flag.String("town", "", "town to search, e.g. \"Banbury\"")
	placeType := flag.String("type", "", "single place type to search instead of the food defaults")
	radius := flag.Int("radius", usecase.DefaultRadius, "search radius in metres")
	details := flag.Bool("details", false, "fetch full details (opening hours) for every place")
	saveDB := flag.Bool("db", false, "also upsert the results into the leads database")
	out := flag.String("out", "", "output CSV path (default <town>_restaurants.csv)")
	flag.Parse()

	if *town == "" {
		log.Fatal("usage: scrape -town <name> [-type <place type>] [-radius <m>] [-details] [-db]")
	}
	outPath := *out
	if outPath == "" {
		outPath = strings.ToLower(strings.ReplaceAll(*town, " ", "_")) + "_restaurants.csv"
	}

	cfg := googleplaces.LoadConfig()
	client := googleplaces.NewClient(cfg, platformhttp.NewHTTPClient(cfg.Timeout))

	// Geocoding results are stable, so cache them when Redis is around.
	var geocoder usecase.Geocoder = client
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without geocode cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
		geocoder = cache.NewCachingGeocoder(rdb, 0, client, "")
	}

	limiter := ratelimiter.NewFixedDelay(100 * time.Millisecond)
	uc := usecase.NewScrapeUsecase(geocoder, client, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	places, err := uc.Scrape(ctx, usecase.ScrapeParams{
		Town:           *town,
		PlaceType:      *placeType,
		Radius:         *radius,
		IncludeDetails: *details,
	})
	if err != nil {
		log.Fatal(err)
	}

	rows := make([]map[string]string, 0, len(places))
	for _, p := range places {
		rows = append(rows, map[string]string{
			"name":               p.Name,
			"place_id":           p.PlaceID,
			"address":            p.Address,
			"latitude":           strconv.FormatFloat(p.Latitude, 'f', -1, 64),
			"longitude":          strconv.FormatFloat(p.Longitude, 'f', -1, 64),
			"rating":             strconv.FormatFloat(p.Rating, 'f', -1, 64),
			"user_ratings_total": strconv.Itoa(p.UserRatingsTotal),
			"price_level":        strconv.Itoa(p.PriceLevel),
			"types":              strings.Join(p.Types, ", "),
			"business_status":    p.BusinessStatus,
			"phone_number":       p.PhoneNumber,
			"website":            p.Website,
			"opening_hours":      p.OpeningHours,
		})
	}
	if err := csvio.Write(outPath, csvHeader, rows); err != nil {
		log.Fatal(err)
	}

	if *saveDB {
		conn := db.OpenDB()
		store := leadstore.NewLeadStore(conn)
		if err := store.SaveAll(ctx, *town, places); err != nil {
			log.Fatal("failed to save leads:", err)
		}
	}

	fmt.Printf("found %d places in %s, saved to %s\n", len(places), *town, outPath)
}
