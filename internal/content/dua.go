package content

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sort"

	"golang.org/x/net/html"

	"github.com/qattan/daily-post-bot/internal/domain/entity"
)

const duaBaseURL = "https://ahadith.co.uk"

// duaTopics maps a dua subject to its page number in the Fortress of the
// Muslim collection on ahadith.co.uk.
var duaTopics = map[string]int{
	"Afflictions":            49,
	"After Eating":           66,
	"After Sinning":          41,
	"After Sneezing":         72,
	"Angriness":              76,
	"Anxiety":                34,
	"Before Eating":          65,
	"Breaking Fast":          64,
	"Completing Wudu":        9,
	"Delight":                115,
	"Distress":               35,
	"Doubts":                 37,
	"During Adhan":           15,
	"During Rain":            60,
	"Entering Home":          11,
	"Entering Mosque":        13,
	"Fear Of Shirk":          86,
	"Forgiveness":            127,
	"Help From Debt":         38,
	"Leaving Home":           10,
	"Leaving Mosque":         14,
	"Pain":                   117,
	"Returning From Travel":  99,
	"Sorrow":                 34,
	"Travel":                 90,
	"Visiting Sick":          45,
	"Waking Up":              1,
	"Wearing Garment":        2,
}

// DuaProvider renders a random dua scraped from ahadith.co.uk.
type DuaProvider struct {
	client  *http.Client
	baseURL string
	topics  []string
}

func NewDuaProvider(client *http.Client) *DuaProvider {
	if client == nil {
		client = defaultHTTPClient()
	}

	topics := make([]string, 0, len(duaTopics))
	for topic := range duaTopics {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	return &DuaProvider{
		client:  client,
		baseURL: duaBaseURL,
		topics:  topics,
	}
}

// Render fetches the dua page for a random topic and extracts its text.
// Duas have no separate Arabic variant; the page already carries both
// scripts, so the arabic flag is ignored.
func (p *DuaProvider) Render(ctx context.Context, arabic bool) (*entity.Post, error) {
	topic := p.topics[rand.IntN(len(p.topics))]
	return p.render(ctx, topic)
}

func (p *DuaProvider) render(ctx context.Context, topic string) (*entity.Post, error) {
	url := fmt.Sprintf("%s/hisnulmuslim-dua-%d", p.baseURL, duaTopics[topic])

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build dua request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dua page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dua page returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dua page: %w", err)
	}

	texts := duaTexts(doc)
	if len(texts) == 0 {
		return nil, fmt.Errorf("dua %q: %w", topic, ErrNoContent)
	}

	body := texts[0]
	for _, text := range texts[1:] {
		body += "\n\n" + text
	}

	return &entity.Post{
		Title:  fmt.Sprintf("Dua: %s", topic),
		Body:   body,
		Footer: "Fortress of the Muslim (Hisnul Muslim)",
	}, nil
}

// duaTexts extracts the text of every search-item block on a dua page.
func duaTexts(doc *html.Node) []string {
	var texts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "search-item") {
			if text := textOf(n); text != "" {
				texts = append(texts, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return texts
}
