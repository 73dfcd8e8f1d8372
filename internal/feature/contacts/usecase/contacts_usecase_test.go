package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/contacts/domain/entity"
)

// mockCrawler is a mock implementation of the SiteCrawler interface.
type mockCrawler struct {
	CrawlFunc func(ctx context.Context, siteURL string) (*entity.CrawledSite, error)
}

func (m *mockCrawler) Crawl(ctx context.Context, siteURL string) (*entity.CrawledSite, error) {
	return m.CrawlFunc(ctx, siteURL)
}

// mockExtractor is a mock implementation of the ContactExtractor interface.
type mockExtractor struct {
	ExtractFunc func(ctx context.Context, site *entity.CrawledSite, siteURL, name string) (*entity.ContactInfo, error)
}

func (m *mockExtractor) Extract(ctx context.Context, site *entity.CrawledSite, siteURL, name string) (*entity.ContactInfo, error) {
	return m.ExtractFunc(ctx, site, siteURL, name)
}

func TestFindContacts_ExtractorSuccess(t *testing.T) {
	crawler := &mockCrawler{
		CrawlFunc: func(ctx context.Context, siteURL string) (*entity.CrawledSite, error) {
			return &entity.CrawledSite{Text: "Call us on 01295 000000", PagesViewed: 2}, nil
		},
	}
	extractor := &mockExtractor{
		ExtractFunc: func(ctx context.Context, site *entity.CrawledSite, siteURL, name string) (*entity.ContactInfo, error) {
			return &entity.ContactInfo{Email: "hello@rubys.example.com", Phone: "01295 000000"}, nil
		},
	}

	uc := NewContactsUsecase(crawler, extractor, nil)
	result := uc.FindContacts(context.Background(), "Ruby's", "https://rubys.example.com")

	if result.SearchStatus != entity.StatusSuccess {
		t.Errorf("expected success, got %q", result.SearchStatus)
	}
	if result.Contact.Email != "hello@rubys.example.com" {
		t.Errorf("unexpected email %q", result.Contact.Email)
	}
}

func TestFindContacts_ExtractorFailureFallsBackToPatterns(t *testing.T) {
	crawler := &mockCrawler{
		CrawlFunc: func(ctx context.Context, siteURL string) (*entity.CrawledSite, error) {
			return &entity.CrawledSite{Text: "Email bookings@rubys.example.com or ring 0129 500 0000"}, nil
		},
	}
	extractor := &mockExtractor{
		ExtractFunc: func(ctx context.Context, site *entity.CrawledSite, siteURL, name string) (*entity.ContactInfo, error) {
			return nil, errors.New("model overloaded")
		},
	}

	uc := NewContactsUsecase(crawler, extractor, nil)
	result := uc.FindContacts(context.Background(), "Ruby's", "https://rubys.example.com")

	if result.SearchStatus != entity.StatusSuccess {
		t.Errorf("expected success from fallback, got %q", result.SearchStatus)
	}
	if result.Contact.Email != "bookings@rubys.example.com" {
		t.Errorf("unexpected email %q", result.Contact.Email)
	}
	if result.Contact.Phone == "" {
		t.Error("expected a phone number from the fallback")
	}
}

func TestFindContacts_CrawlFailure(t *testing.T) {
	crawler := &mockCrawler{
		CrawlFunc: func(ctx context.Context, siteURL string) (*entity.CrawledSite, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := NewContactsUsecase(crawler, nil, nil)
	result := uc.FindContacts(context.Background(), "Ruby's", "https://down.example.com")

	if result.SearchStatus != entity.StatusError {
		t.Errorf("expected error status, got %q", result.SearchStatus)
	}
	if result.Error == "" {
		t.Error("expected the crawl error to be recorded")
	}
}

func TestFindContacts_MailtoBackfillsEmail(t *testing.T) {
	crawler := &mockCrawler{
		CrawlFunc: func(ctx context.Context, siteURL string) (*entity.CrawledSite, error) {
			return &entity.CrawledSite{
				Text:        "Welcome to Ruby's Diner",
				MailtoLinks: []string{"info@rubys.example.com", "events@rubys.example.com"},
				FormURLs:    []string{"https://rubys.example.com/contact"},
			}, nil
		},
	}

	uc := NewContactsUsecase(crawler, nil, nil)
	result := uc.FindContacts(context.Background(), "Ruby's", "https://rubys.example.com")

	if result.Contact.Email != "info@rubys.example.com" {
		t.Errorf("mailto should backfill the email, got %q", result.Contact.Email)
	}
	if !reflect.DeepEqual(result.Contact.AdditionalEmails, []string{"events@rubys.example.com"}) {
		t.Errorf("unexpected additional emails %v", result.Contact.AdditionalEmails)
	}
	if result.Contact.ContactFormURL != "https://rubys.example.com/contact" {
		t.Errorf("form URL should backfill, got %q", result.Contact.ContactFormURL)
	}
	if result.SearchStatus != entity.StatusSuccess {
		t.Errorf("expected success, got %q", result.SearchStatus)
	}
}

func TestFindContacts_NoContactFound(t *testing.T) {
	crawler := &mockCrawler{
		CrawlFunc: func(ctx context.Context, siteURL string) (*entity.CrawledSite, error) {
			return &entity.CrawledSite{Text: "Great food, friendly staff."}, nil
		},
	}

	uc := NewContactsUsecase(crawler, nil, nil)
	result := uc.FindContacts(context.Background(), "Ruby's", "https://rubys.example.com")
	if result.SearchStatus != entity.StatusNoContactFound {
		t.Errorf("expected no_contact_found, got %q", result.SearchStatus)
	}
}

func TestExtractFromText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantEmail  string
		wantExtras []string
	}{
		{
			name:      "plain email and phone",
			text:      "Reach us at hello@rubys.example.com or 01295 000000",
			wantEmail: "hello@rubys.example.com",
		},
		{
			name:       "excluded system addresses are skipped",
			text:       "noreply@rubys.example.com bookings@rubys.example.com",
			wantEmail:  "bookings@rubys.example.com",
			wantExtras: nil,
		},
		{
			name:      "excluded address wins when nothing else matches",
			text:      "webmaster@rubys.example.com",
			wantEmail: "webmaster@rubys.example.com",
		},
		{
			name:       "duplicates collapse, extras preserved in order",
			text:       "a@x.com b@x.com a@x.com",
			wantEmail:  "a@x.com",
			wantExtras: []string{"b@x.com"},
		},
		{
			name:      "no contact data",
			text:      "Great food, friendly staff.",
			wantEmail: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFromText(tt.text)
			if got.Email != tt.wantEmail {
				t.Errorf("email: got %q, want %q", got.Email, tt.wantEmail)
			}
			if !reflect.DeepEqual(got.AdditionalEmails, tt.wantExtras) {
				t.Errorf("extras: got %v, want %v", got.AdditionalEmails, tt.wantExtras)
			}
		})
	}
}

func TestExtractFromText_PhoneFormats(t *testing.T) {
	for _, text := range []string{
		"Call (555) 123-4567 today",
		"Call 555.123.4567 today",
		"Call 5551234567 today",
		"Call 01295123456 today",
	} {
		got := ExtractFromText(text)
		if got.Phone == "" {
			t.Errorf("no phone extracted from %q", text)
		}
	}
}

func TestFindAll_PreservesOrder(t *testing.T) {
	crawler := &mockCrawler{
		CrawlFunc: func(ctx context.Context, siteURL string) (*entity.CrawledSite, error) {
			return &entity.CrawledSite{Text: "hello@" + siteURL + ".com"}, nil
		},
	}

	uc := NewContactsUsecase(crawler, nil, nil)
	results := uc.FindAll(context.Background(), []Restaurant{
		{Name: "A", URL: "a"}, {Name: "B", URL: "b"},
	})
	if len(results) != 2 || results[0].RestaurantName != "A" || results[1].RestaurantName != "B" {
		t.Errorf("unexpected results order: %+v", results)
	}
}
