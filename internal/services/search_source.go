package services

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mrsingh-rishi/job-outreach/internal/clients/websearch"
	"github.com/mrsingh-rishi/job-outreach/internal/config"
	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/mrsingh-rishi/job-outreach/internal/logger"
	"github.com/mrsingh-rishi/job-outreach/internal/metrics"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const resultsPerPage = 10

// addresses on freemail providers say nothing about the company domain, so
// they never seed the deep-search round
var freemailDomains = []string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "aol.com", "icloud.com",
}

type searchClient interface {
	Enabled() bool
	Search(ctx context.Context, parameters websearch.SearchParameters) ([]websearch.Result, error)
}

type linkScraper interface {
	IsPromisingLink(link string) bool
	ScrapeEmails(ctx context.Context, link string) ([]string, error)
}

// SearchSource harvests candidate addresses from an external search API.
// Queries run in fixed-size concurrent batches; batches run sequentially with
// a randomized sleep in between; each query paginates sequentially. Every
// query is individually fault-isolated: a failure contributes zero candidates
// and never aborts the batch.
type SearchSource struct {
	client  searchClient
	planner *QueryPlanner
	scraper linkScraper
	cfg     config.OutreachConfig
	sleep   func(d time.Duration)
}

func NewSearchSource(client searchClient, planner *QueryPlanner, scraper linkScraper,
	cfg config.OutreachConfig) *SearchSource {

	return &SearchSource{
		client:  client,
		planner: planner,
		scraper: scraper,
		cfg:     cfg,
		sleep:   time.Sleep,
	}
}

func (s *SearchSource) Name() string {
	return "websearch"
}

func (s *SearchSource) Discover(ctx context.Context, profile models.JobProfile) ([]string, error) {

	if !s.client.Enabled() {
		log.Info("search api credentials not configured, skipping search source")
		return nil, nil
	}

	found := s.runRound(ctx, s.planner.Plan(profile))

	deepQueries := s.deepSearchQueries(found)
	if len(deepQueries) > 0 {
		log.Infof("running deep search over %d domains", len(deepQueries))
		mergeInto(found, s.runRound(ctx, deepQueries))
	}

	if len(found) < s.cfg.CandidateFloor {
		log.Infof("only %d candidates found, running targeted keyword round", len(found))
		mergeInto(found, s.runRound(ctx, targetedQueries(profile)))
	}

	emails := make([]string, 0, len(found))
	for email := range found {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails, nil
}

func (s *SearchSource) runRound(ctx context.Context, queries []models.SearchQuery) map[string]struct{} {

	found := map[string]struct{}{}
	var mu sync.Mutex

	batches := lo.Chunk(queries, s.cfg.QueryBatchSize)
	for i, batch := range batches {

		var wg sync.WaitGroup
		for _, query := range batch {
			wg.Add(1)
			go func(query models.SearchQuery) {
				defer wg.Done()
				emails := s.executeQuery(ctx, query)
				mu.Lock()
				defer mu.Unlock()
				for _, email := range emails {
					found[email] = struct{}{}
				}
			}(query)
		}
		wg.Wait()

		if i < len(batches)-1 {
			s.sleep(s.interBatchDelay())
		}
	}

	return found
}

// executeQuery paginates one query and returns whatever it harvested before
// the first failure. A 429 aborts pagination and backs off; any other error
// is logged and ends the query.
func (s *SearchSource) executeQuery(ctx context.Context, query models.SearchQuery) []string {

	start := time.Now()
	defer func() {
		metrics.SearchQueryDuration.WithLabelValues(string(query.Facet)).
			Observe(time.Since(start).Seconds())
	}()

	seen := map[string]struct{}{}
	followedLinks := 0

	for page := 0; page < s.cfg.PagesPerQuery; page++ {

		results, err := s.client.Search(ctx, websearch.SearchParameters{
			Query: query.Text,
			Start: 1 + page*resultsPerPage,
			Num:   resultsPerPage,
		})
		if err != nil {
			if errors.Is(err, websearch.ErrRateLimited) {
				log.Warnf("rate limited on query %q, backing off", query.Text)
				s.sleep(s.backoffDelay())
			} else {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeSearchApi).
					Errorf("query %q failed: %v", query.Text, err)
			}
			break
		}

		if len(results) == 0 {
			break
		}

		for _, result := range results {
			text := result.Title + " " + result.Snippet + " " + result.Link
			for _, email := range ExtractEmails(text) {
				seen[email] = struct{}{}
			}

			if s.shouldFollow(result.Link, followedLinks) {
				followedLinks++
				for _, email := range s.scrapeLink(ctx, result.Link) {
					seen[email] = struct{}{}
				}
			}
		}

		if page < s.cfg.PagesPerQuery-1 {
			s.sleep(s.cfg.InterPageSleep)
		}
	}

	emails := make([]string, 0, len(seen))
	for email := range seen {
		emails = append(emails, email)
	}
	return emails
}

func (s *SearchSource) shouldFollow(link string, alreadyFollowed int) bool {
	return s.cfg.FollowLinks && s.scraper != nil &&
		alreadyFollowed < s.cfg.MaxLinksPerQuery &&
		s.scraper.IsPromisingLink(link)
}

func (s *SearchSource) scrapeLink(ctx context.Context, link string) []string {
	emails, err := s.scraper.ScrapeEmails(ctx, link)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeScrape).
			Errorf("failed to scrape %s: %v", link, err)
		return nil
	}
	return emails
}

// deepSearchQueries builds site:-scoped queries from the company domains of
// already-found addresses.
func (s *SearchSource) deepSearchQueries(found map[string]struct{}) []models.SearchQuery {

	domains := map[string]struct{}{}
	for email := range found {
		_, domain, ok := strings.Cut(email, "@")
		if !ok || lo.Contains(freemailDomains, domain) {
			continue
		}
		domains[domain] = struct{}{}
	}

	sorted := lo.Keys(domains)
	sort.Strings(sorted)
	sorted = firstN(sorted, s.cfg.DeepSearchDomains)

	queries := make([]models.SearchQuery, 0, len(sorted))
	for _, domain := range sorted {
		queries = append(queries, models.SearchQuery{
			Text:  fmt.Sprintf("site:%s recruiter OR careers email", domain),
			Facet: models.FacetDeep,
		})
	}
	return queries
}

func targetedQueries(profile models.JobProfile) []models.SearchQuery {
	templates := []string{
		`"we are hiring" "%s" email`,
		`"send resume" "%s"`,
		`"email your resume" "%s"`,
		`"join our team" "%s" contact`,
	}
	return buildQueries(models.FacetTargeted, templates, profile.JobTitle)
}

// jitter comes from the top-level math/rand source, which is safe to call
// from the concurrent query goroutines of a batch
func (s *SearchSource) interBatchDelay() time.Duration {
	return s.cfg.InterBatchBaseSleep + time.Duration(rand.Int63n(int64(time.Second)))
}

func (s *SearchSource) backoffDelay() time.Duration {
	return 3*time.Second + time.Duration(rand.Int63n(int64(3*time.Second)))
}

func mergeInto(dst, src map[string]struct{}) {
	for key := range src {
		dst[key] = struct{}{}
	}
}
