// Package entity defines the domain entities of the contacts feature.
package entity

import "time"

// Search statuses.
const (
	StatusSuccess        = "success"
	StatusNoContactFound = "no_contact_found"
	StatusError          = "error"
)

// ContactInfo is the structured contact data extracted from a website.
type ContactInfo struct {
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Address          string   `json:"address"`
	ContactFormURL   string   `json:"contact_form_url"`
	AdditionalEmails []string `json:"additional_emails"`
	AdditionalPhones []string `json:"additional_phones"`
	Notes            string   `json:"notes"`
}

// Empty reports whether no usable contact method was found.
func (c ContactInfo) Empty() bool {
	return c.Email == "" && c.Phone == "" && c.Address == "" && c.ContactFormURL == ""
}

// CrawledSite is the raw material a crawl gathers for extraction.
type CrawledSite struct {
	Text        string   // visible text of all crawled pages
	MailtoLinks []string // addresses from mailto: hrefs, in discovery order
	FormURLs    []string // absolute form action URLs, in discovery order
	PagesViewed int
}

// ContactResult is the outcome of a contact search for one restaurant.
type ContactResult struct {
	RestaurantName string
	URL            string
	Contact        ContactInfo
	SearchStatus   string
	Error          string
	Timestamp      time.Time
}
