package services

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/samber/lo"
)

const (
	maxLocationFacets = 6
	maxCompanyFacets  = 10
	maxIndustryFacets = 6
	maxDomainFacets   = 6
)

var recruitingAgencies = []string{
	"Robert Half", "Hays", "Randstad", "Michael Page", "Adecco",
}

// QueryPlanner expands a job profile into a bounded, shuffled list of search
// queries. Shuffling before truncation spreads the query budget across facets
// probabilistically; no facet is guaranteed representation. Plan may be called
// from concurrent requests, so shuffling uses the top-level math/rand source.
type QueryPlanner struct {
	maxQueries int
}

func NewQueryPlanner(maxQueries int) *QueryPlanner {
	return &QueryPlanner{maxQueries: maxQueries}
}

func (p *QueryPlanner) Plan(profile models.JobProfile) []models.SearchQuery {

	title := strings.TrimSpace(profile.JobTitle)

	queries := p.baseQueries(title)
	queries = append(queries, p.locationQueries(title, profile.Locations)...)
	queries = append(queries, p.companyQueries(title, profile.TargetCompanies)...)
	queries = append(queries, p.industryQueries(title, profile.Industries)...)
	queries = append(queries, p.domainQueries(title, profile.Domains)...)
	queries = append(queries, p.agencyQueries(title)...)

	queries = lo.UniqBy(queries, func(q models.SearchQuery) string {
		return strings.ToLower(q.Text)
	})

	rand.Shuffle(len(queries), func(i, j int) {
		queries[i], queries[j] = queries[j], queries[i]
	})

	if len(queries) > p.maxQueries {
		queries = queries[:p.maxQueries]
	}
	return queries
}

func (p *QueryPlanner) baseQueries(title string) []models.SearchQuery {
	templates := []string{
		`"%s" recruiter email contact`,
		`"%s" hiring manager email`,
		`"%s" HR contact email`,
		`"%s" talent acquisition contact`,
		`"%s" careers page email`,
		`"%s" linkedin recruiter contact email`,
		`"%s" job board hiring email`,
		`"%s" startup hiring email`,
		`"%s" company hiring contact`,
	}
	return buildQueries(models.FacetBase, templates, title)
}

func (p *QueryPlanner) locationQueries(title string, locations []string) []models.SearchQuery {
	var queries []models.SearchQuery
	for _, location := range firstN(locations, maxLocationFacets) {
		queries = append(queries,
			models.SearchQuery{Text: fmt.Sprintf(`"%s" %s recruiter email`, title, location), Facet: models.FacetLocation},
			models.SearchQuery{Text: fmt.Sprintf(`"%s" jobs %s contact email`, title, location), Facet: models.FacetLocation},
		)
	}
	return queries
}

func (p *QueryPlanner) companyQueries(title string, companies []string) []models.SearchQuery {
	var queries []models.SearchQuery
	for _, company := range firstN(companies, maxCompanyFacets) {
		queries = append(queries,
			models.SearchQuery{Text: fmt.Sprintf(`%s "%s" recruiter email`, company, title), Facet: models.FacetCompany},
			models.SearchQuery{Text: fmt.Sprintf(`%s careers hiring contact`, company), Facet: models.FacetCompany},
			// bias one query toward the company's own domain
			models.SearchQuery{Text: fmt.Sprintf(`site:%s.com careers email`, models.CompanyToken(company)), Facet: models.FacetCompany},
		)
	}
	return queries
}

func (p *QueryPlanner) industryQueries(title string, industries []string) []models.SearchQuery {
	var queries []models.SearchQuery
	for _, industry := range firstN(industries, maxIndustryFacets) {
		queries = append(queries,
			models.SearchQuery{Text: fmt.Sprintf(`%s "%s" hiring email`, industry, title), Facet: models.FacetIndustry},
			models.SearchQuery{Text: fmt.Sprintf(`%s recruiter contact email`, industry), Facet: models.FacetIndustry},
		)
	}
	return queries
}

func (p *QueryPlanner) domainQueries(title string, domains []string) []models.SearchQuery {
	var queries []models.SearchQuery
	for _, domain := range firstN(domains, maxDomainFacets) {
		queries = append(queries,
			models.SearchQuery{Text: fmt.Sprintf(`%s %s recruiter email`, domain, title), Facet: models.FacetDomain},
		)
	}
	return queries
}

func (p *QueryPlanner) agencyQueries(title string) []models.SearchQuery {
	var queries []models.SearchQuery
	for _, agency := range recruitingAgencies {
		queries = append(queries,
			models.SearchQuery{Text: fmt.Sprintf(`%s "%s" recruiter email`, agency, title), Facet: models.FacetAgency},
		)
	}
	return queries
}

func buildQueries(facet models.QueryFacet, templates []string, title string) []models.SearchQuery {
	queries := make([]models.SearchQuery, 0, len(templates))
	for _, tpl := range templates {
		queries = append(queries, models.SearchQuery{Text: fmt.Sprintf(tpl, title), Facet: facet})
	}
	return queries
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
