package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/chainfilter/adapters/gemini"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/chainfilter/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/chainfilter/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/csvio"
	"github.com/wmastover/labupops-lead-qualifier/internal/shared/ratelimiter"
)

func main() {
	_ = godotenv.Load()

	in := flag.String("in", "", "input CSV of scraped restaurants")
	out := flag.String("out", "", "output CSV path (default <in>_filtered.csv)")
	batch := flag.Int("batch", usecase.DefaultBatchSize, "businesses per model call")
	flag.Parse()

	if *in == "" {
		log.Fatal("usage: filter -in <restaurants.csv> [-out <filtered.csv>]")
	}
	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(*in, ".csv") + "_filtered.csv"
	}

	header, rows, err := csvio.Read(*in)
	if err != nil {
		log.Fatal(err)
	}

	businesses := make([]entity.Business, 0, len(rows))
	for _, row := range rows {
		businesses = append(businesses, entity.Business{
			Name:    row["name"],
			Address: row["address"],
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	classifier, err := gemini.NewGeminiClassifier(ctx)
	if err != nil {
		log.Fatal("failed to create classifier:", err)
	}

	// Stay under the model's per-minute request quota on large lead lists.
	limiter := ratelimiter.NewRateLimiter(15, time.Minute)
	uc := usecase.NewChainFilterUsecase(classifier, *batch, limiter)
	kept, err := uc.FilterIndices(ctx, businesses)
	if err != nil {
		log.Fatal(err)
	}

	keptRows := make([]map[string]string, 0, len(kept))
	for _, i := range kept {
		keptRows = append(keptRows, rows[i])
	}
	if err := csvio.Write(outPath, header, keptRows); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("kept %d of %d businesses, saved to %s\n", len(keptRows), len(rows), outPath)
}
