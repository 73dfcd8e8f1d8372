// Package usecase implements the chain restaurant filter.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/chainfilter/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/llmjson"
)

// DefaultBatchSize bounds the numbered list per prompt to stay inside token
// limits.
const DefaultBatchSize = 20

// ChainClassifier sends a filter prompt to the language model.
// Following Go convention, interfaces are defined on the consumer (usecase) side.
type ChainClassifier interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// Limiter keeps batch classification inside the model's request quota.
type Limiter interface {
	WaitIfNeeded()
}

// chainFilterUsecase removes certain major chains from a lead list, keeping
// everything the model is unsure about.
type chainFilterUsecase struct {
	classifier ChainClassifier
	batchSize  int
	limiter    Limiter // optional
}

// NewChainFilterUsecase creates a new chainFilterUsecase. batchSize <= 0 uses
// DefaultBatchSize. limiter may be nil.
func NewChainFilterUsecase(classifier ChainClassifier, batchSize int, limiter Limiter) *chainFilterUsecase {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &chainFilterUsecase{classifier: classifier, batchSize: batchSize, limiter: limiter}
}

// FilterIndices classifies the businesses in batches and returns the indices
// (into the input slice) of those to keep. The filter is conservative at every
// failure point: a classifier error, an unparseable response or an
// uncategorized business all keep the affected rows.
func (u *chainFilterUsecase) FilterIndices(ctx context.Context, businesses []entity.Business) ([]int, error) {
	var kept []int
	for start := 0; start < len(businesses); start += u.batchSize {
		if start > 0 && u.limiter != nil {
			u.limiter.WaitIfNeeded()
		}
		end := min(start+u.batchSize, len(businesses))
		batch := businesses[start:end]
		slog.Info("filtering batch", "from", start+1, "to", end, "total", len(businesses))

		kept = append(kept, u.filterBatch(ctx, batch, start)...)
	}
	return kept, nil
}

// filterBatch returns the global indices to keep from one batch.
func (u *chainFilterUsecase) filterBatch(ctx context.Context, batch []entity.Business, offset int) []int {
	keepAll := func() []int {
		all := make([]int, len(batch))
		for i := range batch {
			all[i] = offset + i
		}
		return all
	}

	resp, err := u.classifier.Classify(ctx, buildFilterPrompt(batch))
	if err != nil {
		slog.Warn("batch classification failed, keeping all", "error", err)
		return keepAll()
	}

	var decision entity.Decision
	if err := llmjson.Unmarshal(resp, &decision); err != nil {
		slog.Warn("could not parse filter response, keeping all", "error", err)
		return keepAll()
	}

	mentioned := make(map[int]bool, len(batch))
	var kept []int
	for _, idx := range decision.Keep {
		if idx < 1 || idx > len(batch) {
			slog.Warn("invalid keep index", "index", idx, "batch_size", len(batch))
			continue
		}
		mentioned[idx] = true
		kept = append(kept, offset+idx-1)
	}
	for _, idx := range decision.Remove {
		if idx < 1 || idx > len(batch) {
			continue
		}
		mentioned[idx] = true
		slog.Info("removing chain", "name", batch[idx-1].Name)
	}
	// anything the model did not categorize stays in
	for idx := 1; idx <= len(batch); idx++ {
		if !mentioned[idx] {
			slog.Warn("business not categorized, keeping by default", "name", batch[idx-1].Name)
			kept = append(kept, offset+idx-1)
		}
	}
	return kept
}

// buildFilterPrompt renders the numbered list with the conservative filtering
// instructions.
func buildFilterPrompt(batch []entity.Business) string {
	var list strings.Builder
	for i, b := range batch {
		name, address := b.Name, b.Address
		if name == "" {
			name = "N/A"
		}
		if address == "" {
			address = "N/A"
		}
		fmt.Fprintf(&list, "%d. %s - %s\n", i+1, name, address)
	}

	return fmt.Sprintf(`I have a list of restaurants and takeaways from a local area. I need to identify which ones are DEFINITELY large chains vs local independent businesses.

IMPORTANT: Only mark a business for removal if you are CERTAIN it's a major chain. When in doubt, keep it.

DEFINITELY REMOVE (only if you're 100%% certain):
- Well-known fast food chains: McDonald's, KFC, Subway, Burger King, Domino's, Pizza Hut, Papa John's
- Major coffee chains: Starbucks, Costa Coffee, Caffè Nero
- Large restaurant chains: Pizza Express, Prezzo, Nando's, TGI Fridays, Harvester
- Pub chains: Wetherspoon, Greene King, Stonegate pubs
- Gas station food: Shell, BP, Tesco Express, Sainsbury's Local
- Major supermarket cafes/delis

ALWAYS KEEP (err on side of caution):
- Any name that could be local/independent
- Ethnic restaurants (even if chain-sounding names)
- Names you're not 100%% sure about
- Local-sounding names
- Independent pubs, cafes, takeaways

Here is the list:

%s
Please respond with a JSON object containing two arrays:
{
  "remove": [list of numbers for businesses you're CERTAIN are major chains],
  "keep": [list of numbers for businesses that should be kept - local/independent or uncertain]
}

Be conservative - only put numbers in "remove" if you're absolutely certain it's a major chain.`, list.String())
}
