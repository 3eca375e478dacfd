// Package importer scrapes a store page into a game draft the admin UI can
// review before creating the game.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

type GameDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ReleaseDate string `json:"release_date"`
	Developer   string `json:"developer"`
	Publisher   string `json:"publisher"`
	CoverImage  string `json:"cover_image"`
	SourceURL   string `json:"source_url"`
}

type Importer struct {
	client *http.Client
	log    *slog.Logger
}

func New(log *slog.Logger) *Importer {
	return &Importer{
		client: &http.Client{Timeout: 5 * time.Second},
		log:    log,
	}
}

func (i *Importer) Import(ctx context.Context, pageURL string) (*GameDraft, error) {
	const op = "importer.Import"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status code: %d", op, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	draft := parseDocument(doc, pageURL)
	if draft.Title == "" {
		return nil, fmt.Errorf("%s: no title found at %s", op, pageURL)
	}

	return draft, nil
}

// parseDocument reads OpenGraph metadata first and falls back to
// Steam-specific markup for the fields OpenGraph does not carry.
func parseDocument(doc *goquery.Document, pageURL string) *GameDraft {
	draft := &GameDraft{SourceURL: pageURL}

	draft.Title = metaContent(doc, "og:title")
	if draft.Title == "" {
		draft.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	draft.Description = metaContent(doc, "og:description")
	if draft.Description == "" {
		draft.Description = strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	}

	draft.CoverImage = metaContent(doc, "og:image")

	doc.Find("#developers_list a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		draft.Developer = strings.TrimSpace(s.Text())
		return false
	})

	doc.Find(".dev_row").Each(func(_ int, s *goquery.Selection) {
		label := strings.TrimSpace(s.Find(".subtitle").Text())
		value := strings.TrimSpace(s.Find(".summary").Text())
		switch {
		case strings.EqualFold(label, "publisher:"):
			draft.Publisher = value
		case strings.EqualFold(label, "developer:") && draft.Developer == "":
			draft.Developer = value
		}
	})

	if raw := strings.TrimSpace(doc.Find(".release_date .date").First().Text()); raw != "" {
		if t, err := time.Parse("2 Jan, 2006", raw); err == nil {
			draft.ReleaseDate = t.Format("2006-01-02")
		}
	}

	return draft
}

func metaContent(doc *goquery.Document, property string) string {
	return strings.TrimSpace(doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).AttrOr("content", ""))
}
