// Package site crawls restaurant websites for contact material.
package site

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/contacts/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/contacts/usecase"
)

// DefaultMaxPages bounds one crawl: the homepage plus the most promising
// contact pages.
const DefaultMaxPages = 5

// contact pages are linked with these words somewhere in the href or label
var contactLinkKeywords = []string{"contact", "get-in-touch", "getintouch", "about", "find-us", "findus", "location", "reach"}

// Crawler fetches a site's homepage and its contact-related pages.
type Crawler struct {
	client   *http.Client
	maxPages int
}

// Crawler implements usecase.SiteCrawler; verified at compile time.
var _ usecase.SiteCrawler = (*Crawler)(nil)

// NewCrawler creates a Crawler. maxPages <= 0 uses DefaultMaxPages.
func NewCrawler(client *http.Client, maxPages int) *Crawler {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Crawler{client: client, maxPages: maxPages}
}

// Crawl fetches the homepage, follows same-host links that look like contact
// pages and accumulates visible text, mailto addresses and form actions.
// Failures on secondary pages are logged and skipped; only an unreachable
// homepage fails the crawl.
func (c *Crawler) Crawl(ctx context.Context, siteURL string) (*entity.CrawledSite, error) {
	if !strings.HasPrefix(siteURL, "http://") && !strings.HasPrefix(siteURL, "https://") {
		siteURL = "https://" + siteURL
	}
	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("parse site URL %q: %w", siteURL, err)
	}

	site := &entity.CrawledSite{}
	seen := map[string]bool{}

	queue := []string{siteURL}
	for len(queue) > 0 && site.PagesViewed < c.maxPages {
		pageURL := queue[0]
		queue = queue[1:]
		if seen[pageURL] {
			continue
		}
		seen[pageURL] = true

		doc, err := c.fetch(ctx, pageURL)
		if err != nil {
			if site.PagesViewed == 0 {
				return nil, err
			}
			slog.Warn("secondary page fetch failed", "url", pageURL, "error", err)
			continue
		}
		site.PagesViewed++

		c.harvest(doc, base, site)
		if site.PagesViewed == 1 {
			queue = append(queue, contactLinks(doc, base)...)
		}
	}
	return site, nil
}

func (c *Crawler) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: http %d", pageURL, res.StatusCode)
	}
	return goquery.NewDocumentFromReader(res.Body)
}

// harvest appends the page's text, mailto addresses and form actions.
func (c *Crawler) harvest(doc *goquery.Document, base *url.URL, site *entity.CrawledSite) {
	if text := strings.TrimSpace(doc.Find("body").Text()); text != "" {
		if site.Text != "" {
			site.Text += "\n"
		}
		site.Text += text
	}

	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		addr := strings.TrimPrefix(href, "mailto:")
		if i := strings.IndexByte(addr, '?'); i >= 0 {
			addr = addr[:i]
		}
		if addr != "" && !containsStr(site.MailtoLinks, addr) {
			site.MailtoLinks = append(site.MailtoLinks, addr)
		}
	})

	doc.Find("form[action]").Each(func(_ int, s *goquery.Selection) {
		action, _ := s.Attr("action")
		if action == "" {
			return
		}
		if u, err := url.Parse(action); err == nil {
			abs := base.ResolveReference(u).String()
			if !containsStr(site.FormURLs, abs) {
				site.FormURLs = append(site.FormURLs, abs)
			}
		}
	})
}

// contactLinks returns same-host links whose href or label mentions a contact
// keyword, in document order.
func contactLinks(doc *goquery.Document, base *url.URL) []string {
	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		blob := strings.ToLower(href + " " + s.Text())
		if !matchesContactKeyword(blob) {
			return
		}
		u, err := url.Parse(href)
		if err != nil || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
			return
		}
		abs := base.ResolveReference(u)
		if abs.Host != base.Host {
			return
		}
		abs.Fragment = ""
		links = append(links, abs.String())
	})
	return links
}

func matchesContactKeyword(blob string) bool {
	for _, kw := range contactLinkKeywords {
		if strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
