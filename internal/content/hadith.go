package content

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sort"

	"github.com/qattan/daily-post-bot/internal/domain/entity"
)

const hadithBaseURL = "https://api.sunnah.com"

// hadithCollections maps a sunnah.com collection name to the number of
// narrations it contains, so a reference can be picked at random.
var hadithCollections = map[string]int{
	"forty":   42,
	"virtues": 93,
}

// collectionTitles maps collection names to their display titles.
var collectionTitles = map[string]string{
	"forty":   "An-Nawawi's 40 Hadith",
	"virtues": "The Book of Virtues",
}

// HadithProvider renders a random hadith fetched from the sunnah.com API.
type HadithProvider struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	collections []string
}

func NewHadithProvider(apiKey string, client *http.Client) *HadithProvider {
	if client == nil {
		client = defaultHTTPClient()
	}

	collections := make([]string, 0, len(hadithCollections))
	for name := range hadithCollections {
		collections = append(collections, name)
	}
	sort.Strings(collections)

	return &HadithProvider{
		client:      client,
		baseURL:     hadithBaseURL,
		apiKey:      apiKey,
		collections: collections,
	}
}

type narration struct {
	Lang         string `json:"lang"`
	ChapterTitle string `json:"chapterTitle"`
	Body         string `json:"body"`
}

type hadithResponse struct {
	Collection   string      `json:"collection"`
	HadithNumber string      `json:"hadithNumber"`
	Hadith       []narration `json:"hadith"`
}

// Render fetches a random hadith. With arabic set, the Arabic narration is
// preferred, falling back to English when the API has no Arabic text.
func (p *HadithProvider) Render(ctx context.Context, arabic bool) (*entity.Post, error) {
	collection := p.collections[rand.IntN(len(p.collections))]
	number := rand.IntN(hadithCollections[collection]) + 1
	return p.render(ctx, collection, number, arabic)
}

func (p *HadithProvider) render(ctx context.Context, collection string, number int, arabic bool) (*entity.Post, error) {
	url := fmt.Sprintf("%s/v1/collections/%s/hadiths/%d", p.baseURL, collection, number)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build hadith request: %w", err)
	}
	req.Header.Set("X-API-Key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hadith: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("hadith %s:%d: %w", collection, number, ErrNoContent)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hadith API returned status %d", resp.StatusCode)
	}

	var payload hadithResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode hadith response: %w", err)
	}

	chosen, ok := pickNarration(payload.Hadith, arabic)
	if !ok {
		return nil, fmt.Errorf("hadith %s:%d: %w", collection, number, ErrNoContent)
	}

	title := collectionTitles[collection]
	if chosen.ChapterTitle != "" {
		title = fmt.Sprintf("%s: %s", title, chosen.ChapterTitle)
	}

	return &entity.Post{
		Title:  title,
		Body:   stripTags(chosen.Body),
		Footer: fmt.Sprintf("%s, hadith %d", collectionTitles[collection], number),
	}, nil
}

func pickNarration(narrations []narration, arabic bool) (narration, bool) {
	want := "en"
	if arabic {
		want = "ar"
	}
	for _, n := range narrations {
		if n.Lang == want && n.Body != "" {
			return n, true
		}
	}
	// Fall back to any language rather than failing the whole post.
	for _, n := range narrations {
		if n.Body != "" {
			return n, true
		}
	}
	return narration{}, false
}
