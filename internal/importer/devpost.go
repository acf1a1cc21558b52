package importer

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"regexp"
	"strings"
	"time"

	"hackmate/internal/database"
	"hackmate/internal/domain/hackathon"
	"hackmate/internal/repository"

	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"
)

// DevpostImporter pulls public hackathon listings and upserts them so users
// have something to register for without manual seeding.
type DevpostImporter struct {
	db          database.DB
	repo        repository.HackathonRepository
	logger      *log.Logger
	baseURL     string
	allowedHost string
}

func NewDevpostImporter(db database.DB, repo repository.HackathonRepository, logger *log.Logger) *DevpostImporter {
	return NewDevpostImporterWithBaseURL(db, repo, logger, "https://devpost.com")
}

func NewDevpostImporterWithBaseURL(db database.DB, repo repository.HackathonRepository, logger *log.Logger, baseURL string) *DevpostImporter {
	if logger == nil {
		logger = log.Default()
	}
	s := &DevpostImporter{
		db:      db,
		repo:    repo,
		logger:  logger,
		baseURL: strings.TrimSpace(baseURL),
	}
	if s.baseURL == "" {
		s.baseURL = "https://devpost.com"
	}
	s.allowedHost = hostFromBaseURL(s.baseURL)
	return s
}

type listingItem struct {
	Link string
}

func (s *DevpostImporter) Import(ctx context.Context, pages, workers int) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("nil importer/repo")
	}
	if pages <= 0 {
		pages = 1
	}

	runID, err := createImportRun(ctx, s.db, "devpost")
	if err != nil {
		s.logger.Printf("import run not recorded | error=%v", err)
	}

	pool := NewWorkerPool(workers, workers*2)
	pool.SetRateLimit(4)
	results := pool.Run(ctx)

	for page := 1; page <= pages; page++ {
		listURL := fmt.Sprintf("%s/hackathons?page=%d", strings.TrimRight(s.baseURL, "/"), page)
		items, err := s.scrapeListingPage(ctx, listURL)
		if err != nil {
			s.logger.Printf("listing page failed | page=%d error=%v", page, err)
			continue
		}
		for _, it := range items {
			link := it.Link
			pool.Submit(func(ctx context.Context) error {
				h, err := s.scrapeDetailPage(ctx, link)
				if err != nil {
					return err
				}
				return s.repo.UpsertImported(ctx, h)
			})
		}
	}

	pool.Close()

	imported := 0
	failed := 0
	for res := range results {
		if res.Err != nil {
			failed++
			s.logger.Printf("hackathon import failed | error=%v", res.Err)
			continue
		}
		imported++
	}

	status := "finished"
	if imported == 0 && failed > 0 {
		status = "failed"
	}
	if runID != uuid.Nil {
		_ = finishImportRun(context.Background(), s.db, runID, status, imported)
	}

	s.logger.Printf("import finished | source=devpost imported=%d failed=%d", imported, failed)
	return nil
}

func (s *DevpostImporter) scrapeListingPage(ctx context.Context, listURL string) ([]listingItem, error) {
	c := colly.NewCollector(colly.AllowedDomains(s.allowedHost))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 400 * time.Millisecond, RandomDelay: 600 * time.Millisecond})

	items := make([]listingItem, 0)

	c.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" || !strings.Contains(href, "/hackathons/") && !strings.Contains(href, ".devpost.com") {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		items = append(items, listingItem{Link: abs})
	})

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]listingItem, 0, len(items))
	for _, it := range items {
		u := normalizeURL(it.Link)
		if u == "" {
			continue
		}
		if _, ok := dedup[u]; ok {
			continue
		}
		dedup[u] = struct{}{}
		out = append(out, listingItem{Link: u})
	}
	return out, nil
}

func (s *DevpostImporter) scrapeDetailPage(ctx context.Context, pageURL string) (hackathon.Hackathon, error) {
	// Detail pages live on per-hackathon subdomains; allow exactly that host.
	c := colly.NewCollector(colly.AllowedDomains(hostFromBaseURL(pageURL), s.allowedHost))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 450 * time.Millisecond, RandomDelay: 700 * time.Millisecond})

	var name string
	var starts, ends *time.Time
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if name == "" {
			name = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("title", func(e *colly.HTMLElement) {
		if name == "" {
			name = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("time[datetime]", func(e *colly.HTMLElement) {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Attr("datetime")))
		if err != nil {
			return
		}
		if starts == nil {
			starts = &t
			return
		}
		if ends == nil {
			ends = &t
		}
	})

	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return hackathon.Hackathon{}, ctx.Err()
	}
	if err := c.Visit(pageURL); err != nil {
		return hackathon.Hackathon{}, err
	}
	c.Wait()
	if reqErr != nil {
		return hackathon.Hackathon{}, reqErr
	}
	if name == "" {
		return hackathon.Hackathon{}, fmt.Errorf("no title at %s", pageURL)
	}

	h := hackathon.Hackathon{
		Name:       name,
		Slug:       slugify(name),
		ExternalID: externalIDFromURL(pageURL),
		SourceURL:  normalizeURL(pageURL),
	}
	if starts != nil {
		h.StartsAt = starts.UTC()
	}
	if ends != nil {
		h.EndsAt = ends.UTC()
	}
	return h, nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(s, "-")
}

// externalIDFromURL uses the last path segment when there is one, otherwise
// the hackathon's subdomain. Sources expose one or the other.
func externalIDFromURL(pageURL string) string {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil {
		return pageURL
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if last := parts[len(parts)-1]; last != "" && last != "hackathons" {
		return last
	}
	host := u.Hostname()
	if sub, rest, ok := strings.Cut(host, "."); ok && strings.Contains(rest, ".") && sub != "www" {
		return sub
	}
	return pageURL
}

func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Fragment = ""
	u.RawQuery = ""
	return u.String()
}

func hostFromBaseURL(base string) string {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || u.Host == "" {
		return "devpost.com"
	}
	host := u.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "HackmateImporter/0.1",
		"Accept-Language": "en-US,en;q=0.9",
	}
}
