package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/adapters/gemini"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/adapters/httpimg"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/csvio"
	platformhttp "github.com/wmastover/labupops-lead-qualifier/internal/platform/http"
)

var resultHeader = []string{"company", "logo_url", "background_path", "prompt", "error"}

// backgroundGenerator is the slice of the usecase this command drives.
type backgroundGenerator interface {
	GenerateBackground(ctx context.Context, logoURL string, opts usecase.GenerateOptions) (*entity.GeneratedBackground, error)
}

func main() {
	_ = godotenv.Load()

	logoURL := flag.String("logo", "", "URL of the company logo to match")
	company := flag.String("company", "", "company name")
	description := flag.String("description", "", "what the company does")
	style := flag.String("style", "", "overall style preference")
	out := flag.String("out", "background.png", "output image path (single mode)")
	in := flag.String("in", "", "CSV with logo_url (+ optional company columns) for batch mode")
	dir := flag.String("dir", "generated_backgrounds", "output directory for batch mode")
	flag.Parse()

	if *logoURL == "" && *in == "" {
		log.Fatal("usage: background -logo <url> [-company <name>] [-description <text>] [-style <text>] [-out <path>] | background -in <logos.csv> [-dir <dir>]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Minute)
	defer cancel()

	analyzer, err := gemini.NewGeminiAnalyzer(ctx)
	if err != nil {
		log.Fatal("failed to create analyzer:", err)
	}
	generator, err := gemini.NewImagenGenerator(ctx)
	if err != nil {
		log.Fatal("failed to create generator:", err)
	}

	uc := usecase.NewBackgroundUsecase(
		httpimg.NewDownloader(platformhttp.NewHTTPClient(30*time.Second)),
		analyzer,
		generator,
	)

	if *logoURL != "" {
		result, err := uc.GenerateBackground(ctx, *logoURL, usecase.GenerateOptions{
			CompanyName:        *company,
			CompanyDescription: *description,
			StylePreference:    *style,
		})
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*out, result.Image, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("prompt: %s\n", result.Prompt)
		fmt.Printf("saved background to %s\n", *out)
		return
	}

	runBatch(ctx, uc, *in, *dir)
}

// runBatch generates one background per CSV row with a usable logo URL and
// writes a timestamped results CSV next to the images.
func runBatch(ctx context.Context, uc backgroundGenerator, in, dir string) {
	_, rows, err := csvio.Read(in)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}

	var results []map[string]string
	generated := 0
	for _, row := range rows {
		logoURL := row["logo_url"]
		if logoURL == "" {
			logoURL = row["logo_path"]
		}
		if logoURL == "" {
			continue
		}
		company := row["company"]
		if company == "" {
			company = row["name"]
		}
		result := map[string]string{"company": company, "logo_url": logoURL}
		results = append(results, result)

		background, err := uc.GenerateBackground(ctx, logoURL, usecase.GenerateOptions{
			CompanyName:        company,
			CompanyDescription: row["description"],
			StylePreference:    row["style"],
		})
		if err != nil {
			log.Printf("background generation failed for %s: %v", company, err)
			result["error"] = err.Error()
			continue
		}

		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", sanitizeName(company), time.Now().Format("20060102_150405")))
		if err := os.WriteFile(path, background.Image, 0o644); err != nil {
			log.Printf("failed to save %s: %v", path, err)
			result["error"] = err.Error()
			continue
		}
		result["background_path"] = path
		result["prompt"] = background.Prompt
		generated++
	}

	resultsPath := filepath.Join(dir, fmt.Sprintf("results_%s.csv", time.Now().Format("20060102_150405")))
	if err := csvio.Write(resultsPath, resultHeader, results); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("generated %d backgrounds, results in %s\n", generated, resultsPath)
}

// sanitizeName makes a company name safe for filenames.
func sanitizeName(name string) string {
	if name == "" {
		return "company"
	}
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "company"
	}
	return b.String()
}
