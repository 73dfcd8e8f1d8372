// Package gemini provides the Gemini-backed contact extractor.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/contacts/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/contacts/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/llmjson"
)

const (
	// DefaultModel is the default Gemini model for contact extraction.
	DefaultModel = "gemini-2.5-flash"

	// maxTextLen truncates very large sites to keep prompts inside token limits.
	maxTextLen = 30000
)

const extractPromptFormat = `Below is the text of the website %s for %s, followed by the mailto links and form URLs found on it. Find ALL their contact information.

Please thoroughly search for:
1. **Email addresses** - contact/footer/about sections, mailto links
2. **Phone numbers** - main contact, reservation/booking numbers
3. **Physical address** - full street address, location information
4. **Contact forms** - contact us, get in touch, reservation or feedback forms

Respond with a JSON object containing:
- "email": the primary/main email address (or empty string)
- "phone": the primary/main phone number (or empty string)
- "address": the complete physical address (or empty string)
- "contact_form_url": full URL to any contact form (or empty string)
- "additional_emails": list of any other emails found
- "additional_phones": list of any other phone numbers found
- "notes": any other relevant contact information

WEBSITE TEXT:
%s

MAILTO LINKS: %s
FORM URLS: %s`

// GeminiExtractor extracts structured contact data with the Gemini API.
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// GeminiExtractor implements usecase.ContactExtractor; verified at compile time.
var _ usecase.ContactExtractor = (*GeminiExtractor)(nil)

// NewGeminiExtractor creates a GeminiExtractor using ADC. The environment
// variables GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION are required.
func NewGeminiExtractor(ctx context.Context) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiExtractor{client: client, model: DefaultModel}, nil
}

// Extract sends the crawled material and decodes the structured contact data.
func (g *GeminiExtractor) Extract(ctx context.Context, site *entity.CrawledSite, siteURL, name string) (*entity.ContactInfo, error) {
	text := site.Text
	if len(text) > maxTextLen {
		text = text[:maxTextLen]
	}
	prompt := fmt.Sprintf(extractPromptFormat, siteURL, name, text,
		strings.Join(site.MailtoLinks, ", "), strings.Join(site.FormURLs, ", "))

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.1),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	var info entity.ContactInfo
	if err := llmjson.Unmarshal(resp.Text(), &info); err != nil {
		return nil, fmt.Errorf("parse contact response: %w", err)
	}
	return &info, nil
}
