// Package usecase implements the contact information search.
package usecase

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/contacts/domain/entity"
)

// SiteCrawler gathers text and contact links from a website.
// Following Go convention, interfaces are defined on the consumer (usecase) side.
type SiteCrawler interface {
	Crawl(ctx context.Context, siteURL string) (*entity.CrawledSite, error)
}

// ContactExtractor pulls structured contact data out of crawled text.
type ContactExtractor interface {
	Extract(ctx context.Context, site *entity.CrawledSite, siteURL, name string) (*entity.ContactInfo, error)
}

// Limiter paces external calls.
type Limiter interface {
	WaitIfNeeded()
}

// contactsUsecase finds contact details for restaurant websites.
type contactsUsecase struct {
	crawler   SiteCrawler
	extractor ContactExtractor // optional
	limiter   Limiter          // optional
}

// NewContactsUsecase creates a new contactsUsecase. extractor and limiter may
// be nil; without an extractor only the pattern-based fallback runs.
func NewContactsUsecase(crawler SiteCrawler, extractor ContactExtractor, limiter Limiter) *contactsUsecase {
	return &contactsUsecase{crawler: crawler, extractor: extractor, limiter: limiter}
}

// FindContacts crawls one website and extracts its contact information. The
// model-based extractor runs first; if it fails or comes back empty the
// pattern-based fallback scans the crawled text. Crawl failures produce an
// error-status result, never a returned error.
func (u *contactsUsecase) FindContacts(ctx context.Context, name, siteURL string) *entity.ContactResult {
	result := &entity.ContactResult{
		RestaurantName: name,
		URL:            siteURL,
		Timestamp:      time.Now(),
	}

	site, err := u.crawler.Crawl(ctx, siteURL)
	if err != nil {
		slog.Warn("site crawl failed", "url", siteURL, "error", err)
		result.SearchStatus = entity.StatusError
		result.Error = err.Error()
		return result
	}
	slog.Info("site crawled", "url", siteURL, "pages", site.PagesViewed,
		"mailto_links", len(site.MailtoLinks), "forms", len(site.FormURLs))

	var contact entity.ContactInfo
	if u.extractor != nil {
		extracted, err := u.extractor.Extract(ctx, site, siteURL, name)
		if err != nil {
			slog.Warn("contact extraction failed, falling back to patterns", "url", siteURL, "error", err)
		} else if extracted != nil {
			contact = *extracted
		}
	}
	if contact.Empty() {
		contact = ExtractFromText(site.Text)
	}
	mergeCrawlFindings(&contact, site)

	result.Contact = contact
	if contact.Email != "" || contact.Phone != "" {
		result.SearchStatus = entity.StatusSuccess
	} else {
		result.SearchStatus = entity.StatusNoContactFound
	}
	return result
}

// Restaurant identifies one lead to search.
type Restaurant struct {
	Name string
	URL  string
}

// FindAll processes the restaurants in order, pacing between sites.
func (u *contactsUsecase) FindAll(ctx context.Context, restaurants []Restaurant) []*entity.ContactResult {
	results := make([]*entity.ContactResult, 0, len(restaurants))
	for i, r := range restaurants {
		slog.Info("searching contact info", "name", r.Name, "index", i+1, "total", len(restaurants))
		results = append(results, u.FindContacts(ctx, r.Name, r.URL))
		if u.limiter != nil && i < len(restaurants)-1 {
			u.limiter.WaitIfNeeded()
		}
	}
	return results
}

// mergeCrawlFindings backfills fields the extractor missed from the crawl's
// own findings: mailto addresses outrank text matches, and the first form URL
// stands in when no contact form was identified.
func mergeCrawlFindings(contact *entity.ContactInfo, site *entity.CrawledSite) {
	for _, email := range site.MailtoLinks {
		if contact.Email == "" {
			contact.Email = email
		} else if email != contact.Email && !contains(contact.AdditionalEmails, email) {
			contact.AdditionalEmails = append(contact.AdditionalEmails, email)
		}
	}
	if contact.ContactFormURL == "" && len(site.FormURLs) > 0 {
		contact.ContactFormURL = site.FormURLs[0]
	}
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`),
		regexp.MustCompile(`\b\d{11}\b`),
		regexp.MustCompile(`\b\d{10}\b`),
	}
	// addresses like noreply@ are never a usable contact
	excludedEmailParts = []string{"noreply", "no-reply", "admin@", "webmaster@"}
)

// ExtractFromText scans free text for contact details. Excluded system
// addresses only win when nothing else matched.
func ExtractFromText(text string) entity.ContactInfo {
	var contact entity.ContactInfo

	emails := dedupe(emailPattern.FindAllString(text, -1))
	var usable []string
	for _, e := range emails {
		if !isExcludedEmail(e) {
			usable = append(usable, e)
		}
	}
	if len(usable) == 0 {
		usable = emails
	}
	if len(usable) > 0 {
		contact.Email = usable[0]
		contact.AdditionalEmails = usable[1:]
		if len(contact.AdditionalEmails) == 0 {
			contact.AdditionalEmails = nil
		}
	}

	var phones []string
	for _, p := range phonePatterns {
		phones = append(phones, p.FindAllString(text, -1)...)
	}
	phones = dedupe(phones)
	if len(phones) > 0 {
		contact.Phone = phones[0]
		contact.AdditionalPhones = phones[1:]
		if len(contact.AdditionalPhones) == 0 {
			contact.AdditionalPhones = nil
		}
	}
	return contact
}

func isExcludedEmail(email string) bool {
	lower := strings.ToLower(email)
	for _, part := range excludedEmailParts {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
