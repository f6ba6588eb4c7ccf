package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	gocache "github.com/patrickmn/go-cache"
)

var promisingLinkKeywords = []string{"career", "job", "contact", "about", "team", "hiring", "recruit"}

// social networks require logins and render nothing useful to a plain GET
var socialHosts = []string{
	"linkedin.com", "facebook.com", "twitter.com", "x.com",
	"instagram.com", "youtube.com", "tiktok.com",
}

// PageScraper follows a search-result link and harvests addresses from the
// page body. Fetched pages are memoized so the same link found under several
// queries is downloaded once per cache window.
type PageScraper struct {
	httpClient *http.Client
	cache      *gocache.Cache
}

func NewPageScraper(timeout time.Duration) *PageScraper {
	return &PageScraper{
		httpClient: &http.Client{Timeout: timeout},
		cache:      gocache.New(10*time.Minute, 20*time.Minute),
	}
}

// IsPromisingLink reports whether a link is worth fetching: it must mention a
// hiring-related keyword and must not point at a social network.
func (s *PageScraper) IsPromisingLink(link string) bool {

	lower := strings.ToLower(link)

	if s.isSocialHost(lower) {
		return false
	}

	for _, keyword := range promisingLinkKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func (s *PageScraper) isSocialHost(link string) bool {
	parsed, err := url.Parse(link)
	if err != nil {
		return false
	}
	host := parsed.Hostname()
	for _, social := range socialHosts {
		if host == social || strings.HasSuffix(host, "."+social) {
			return true
		}
	}
	return false
}

// ScrapeEmails downloads one page and extracts every valid address from its
// text. Non-HTML responses yield an empty result.
func (s *PageScraper) ScrapeEmails(ctx context.Context, link string) ([]string, error) {

	if cached, found := s.cache.Get(link); found {
		return cached.([]string), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page request failed with status %v", resp.StatusCode)
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing page: %v", err)
	}

	emails := ExtractEmails(doc.Text())

	_ = s.cache.Add(link, emails, gocache.DefaultExpiration)
	return emails, nil
}
