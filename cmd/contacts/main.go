package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/contacts/adapters/gemini"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/contacts/adapters/site"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/contacts/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/contacts/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/csvio"
	platformhttp "github.com/wmastover/labupops-lead-qualifier/internal/platform/http"
	"github.com/wmastover/labupops-lead-qualifier/internal/shared/ratelimiter"
)

var resultColumns = []string{
	"email", "phone_found", "contact_address", "contact_form_url",
	"additional_emails", "additional_phones", "contact_notes", "contact_status",
}

func main() {
	_ = godotenv.Load()

	in := flag.String("in", "", "input CSV of qualified restaurants")
	out := flag.String("out", "", "output CSV path (default <in>_contacts.csv)")
	all := flag.Bool("all", false, "search every row instead of only Outdated ones")
	flag.Parse()

	if *in == "" {
		log.Fatal("usage: contacts -in <qualified.csv> [-out <contacts.csv>] [-all]")
	}
	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(*in, ".csv") + "_contacts.csv"
	}

	header, rows, err := csvio.Read(*in)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Minute)
	defer cancel()

	crawler := site.NewCrawler(platformhttp.NewHTTPClient(15*time.Second), site.DefaultMaxPages)
	extractor, err := gemini.NewGeminiExtractor(ctx)
	if err != nil {
		log.Fatal("failed to create extractor:", err)
	}
	limiter := ratelimiter.NewFixedDelay(2 * time.Second)

	// Pacing happens here so the CSV can be saved after every row.
	uc := usecase.NewContactsUsecase(crawler, extractor, nil)

	for _, row := range rows {
		for _, col := range resultColumns {
			row[col] = ""
		}
		row["contact_status"] = "skipped"
	}

	outHeader := append(header, resultColumns...)
	var results []*entity.ContactResult
	searched := 0
	for _, row := range rows {
		if row["website"] == "" {
			row["contact_status"] = "no_website"
			continue
		}
		// Outdated sites are the leads worth contacting.
		if !*all && !strings.EqualFold(row["design_judgment"], "Outdated") {
			continue
		}
		if searched > 0 {
			limiter.WaitIfNeeded()
		}
		searched++

		res := uc.FindContacts(ctx, row["name"], row["website"])
		results = append(results, res)
		row["email"] = res.Contact.Email
		row["phone_found"] = res.Contact.Phone
		row["contact_address"] = res.Contact.Address
		row["contact_form_url"] = res.Contact.ContactFormURL
		row["additional_emails"] = strings.Join(res.Contact.AdditionalEmails, "; ")
		row["additional_phones"] = strings.Join(res.Contact.AdditionalPhones, "; ")
		row["contact_notes"] = res.Contact.Notes
		row["contact_status"] = res.SearchStatus

		// Save progress so a crash loses at most one row.
		if err := csvio.Write(outPath, outHeader, rows); err != nil {
			log.Fatal(err)
		}
	}

	if err := csvio.Write(outPath, outHeader, rows); err != nil {
		log.Fatal(err)
	}
	if err := writeBackup(strings.TrimSuffix(outPath, ".csv")+".json", results); err != nil {
		log.Println("[WARN] Failed to write JSON backup:", err)
	}

	fmt.Printf("searched %d of %d businesses for contacts, saved to %s\n", searched, len(rows), outPath)
}

func writeBackup(path string, results []*entity.ContactResult) error {
	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
