package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/adapters/gemini"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/adapters/httpimg"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/adapters/page"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/adapters/vision"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/csvio"
	platformhttp "github.com/wmastover/labupops-lead-qualifier/internal/platform/http"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/render"
	"github.com/wmastover/labupops-lead-qualifier/internal/shared/ratelimiter"
)

var resultColumns = []string{
	"logo_found", "logo_url", "logo_confidence", "logo_reasoning", "logo_type",
	"has_business_name", "logo_quality", "vision_brand", "candidates_found", "logo_error",
}

func main() {
	_ = godotenv.Load()

	in := flag.String("in", "", "input CSV to process in batch")
	out := flag.String("out", "", "output CSV path (default <in>_logos.csv)")
	siteURL := flag.String("url", "", "single website URL to process instead of a CSV")
	siteName := flag.String("name", "", "website name for the single URL")
	flag.Parse()

	if *in == "" && *siteURL == "" {
		log.Fatal("usage: logo -url <website> [-name <name>] | logo -in <restaurants.csv> [-out <logos.csv>]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Minute)
	defer cancel()

	uc := buildUsecase(ctx)

	if *siteURL != "" {
		result, err := uc.FindLogo(ctx, *siteURL, *siteName)
		if err != nil {
			log.Fatal(err)
		}
		printResult(result)
		return
	}

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(*in, ".csv") + "_logos.csv"
	}
	header, rows, err := csvio.Read(*in)
	if err != nil {
		log.Fatal(err)
	}

	outHeader := append(header, resultColumns...)
	processed := 0
	for _, row := range rows {
		for _, col := range resultColumns {
			row[col] = ""
		}
		if row["website"] == "" {
			continue
		}
		result, err := uc.FindLogo(ctx, row["website"], row["name"])
		if err != nil {
			row["logo_error"] = err.Error()
			continue
		}
		row["logo_found"] = strconv.FormatBool(result.LogoFound)
		row["logo_url"] = result.LogoURL
		row["logo_confidence"] = strconv.Itoa(result.LogoConfidence)
		row["logo_reasoning"] = result.LogoReasoning
		row["logo_type"] = result.LogoType
		row["has_business_name"] = strconv.FormatBool(result.HasBusinessName)
		row["logo_quality"] = result.LogoQuality
		row["vision_brand"] = result.VisionBrand
		row["candidates_found"] = strconv.Itoa(result.CandidatesFound)
		row["logo_error"] = result.Error
		processed++

		// Intermediate save so long batches survive interruption.
		if processed%10 == 0 {
			if err := csvio.Write(outPath, outHeader, rows); err != nil {
				log.Fatal(err)
			}
		}
	}

	if err := csvio.Write(outPath, outHeader, rows); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("processed %d of %d websites, saved to %s\n", processed, len(rows), outPath)
}

// logoFinder is the slice of the usecase this command drives.
type logoFinder interface {
	FindLogo(ctx context.Context, siteURL, siteName string) (*entity.LogoResult, error)
}

// buildUsecase wires the logo finder. The rendering service is preferred for
// candidate discovery; without one, plain HTML parsing still finds most logos.
func buildUsecase(ctx context.Context) logoFinder {
	var extractor usecase.PageExtractor
	renderCfg := render.LoadConfig()
	if renderCfg.BaseURL != "" {
		renderClient := render.NewClient(renderCfg, platformhttp.NewHTTPClient(renderCfg.Timeout))
		extractor = page.NewRenderedExtractor(renderClient, page.DefaultSelectors)
	} else {
		log.Println("[WARN] RENDER_API_URL not set, falling back to static HTML extraction.")
		extractor = page.NewStaticExtractor(platformhttp.NewHTTPClient(15*time.Second), nil)
	}

	validator, err := gemini.NewGeminiValidator(ctx)
	if err != nil {
		log.Fatal("failed to create validator:", err)
	}

	var annotator usecase.LogoAnnotator
	if detector, err := vision.NewVisionLogoDetector(ctx); err != nil {
		log.Println("[WARN] Cloud Vision unavailable, skipping brand cross-check:", err)
	} else {
		annotator = detector
	}

	return usecase.NewLogoFinderUsecase(
		extractor,
		usecase.NewRanker(usecase.DefaultRankerConfig()),
		httpimg.NewDownloader(platformhttp.NewHTTPClient(30*time.Second)),
		validator,
		annotator,
		ratelimiter.NewFixedDelay(time.Second),
	)
}

func printResult(result *entity.LogoResult) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatal(err)
	}
}
