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

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/audit/adapters/gemini"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/audit/adapters/shots"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/audit/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/audit/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/csvio"
	platformhttp "github.com/wmastover/labupops-lead-qualifier/internal/platform/http"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/render"
	"github.com/wmastover/labupops-lead-qualifier/internal/shared/ratelimiter"
)

var resultColumns = []string{
	"design_judgment", "design_reason", "design_confidence",
	"screenshot_taken", "screenshot_path", "timestamp",
}

func main() {
	_ = godotenv.Load()

	in := flag.String("in", "", "input CSV of filtered restaurants")
	out := flag.String("out", "", "output CSV path (default <in>_qualified.csv)")
	shotsDir := flag.String("shots", "screenshots", "directory for saved screenshots")
	flag.Parse()

	if *in == "" {
		log.Fatal("usage: qualify -in <filtered.csv> [-out <qualified.csv>] [-shots <dir>]")
	}
	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(*in, ".csv") + "_qualified.csv"
	}

	header, rows, err := csvio.Read(*in)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Minute)
	defer cancel()

	renderCfg := render.LoadConfig()
	renderClient := render.NewClient(renderCfg, platformhttp.NewHTTPClient(renderCfg.Timeout))
	classifier, err := gemini.NewGeminiClassifier(ctx)
	if err != nil {
		log.Fatal("failed to create classifier:", err)
	}
	store := shots.NewFileStore(*shotsDir)
	limiter := ratelimiter.NewFixedDelay(2 * time.Second)

	uc := usecase.NewAuditUsecase(renderClient, classifier, store, limiter)

	// Only rows with a website can be audited; keep row order for the merge.
	var urls []string
	var audited []int
	for i, row := range rows {
		if row["website"] != "" {
			urls = append(urls, row["website"])
			audited = append(audited, i)
		}
	}

	results := uc.AuditAll(ctx, urls)

	for _, row := range rows {
		row["design_judgment"] = entity.JudgmentUnclear
		row["design_reason"] = "No website"
		row["design_confidence"] = "0"
		row["screenshot_taken"] = "false"
		row["screenshot_path"] = ""
		row["timestamp"] = ""
	}
	for j, res := range results {
		row := rows[audited[j]]
		row["design_judgment"] = res.Judgment
		row["design_reason"] = res.Reason
		row["design_confidence"] = strconv.Itoa(res.Confidence)
		row["screenshot_taken"] = strconv.FormatBool(res.ScreenshotTaken)
		row["screenshot_path"] = res.ScreenshotPath
		row["timestamp"] = res.Timestamp.Format(time.RFC3339)
	}

	if err := csvio.Write(outPath, append(header, resultColumns...), rows); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("audited %d of %d businesses, saved to %s\n", len(urls), len(rows), outPath)
}
