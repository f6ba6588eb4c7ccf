package models

// QueryFacet names the profile dimension a search query was generated from.
// Ordering after shuffle decides which queries survive truncation, so the
// facet is kept for logging and per-facet metrics.
type QueryFacet string

const (
	FacetBase     QueryFacet = "base"
	FacetLocation QueryFacet = "location"
	FacetCompany  QueryFacet = "company"
	FacetIndustry QueryFacet = "industry"
	FacetDomain   QueryFacet = "domain"
	FacetAgency   QueryFacet = "agency"
	FacetDeep     QueryFacet = "deep"
	FacetTargeted QueryFacet = "targeted"
)

// SearchQuery is one generated search-engine query string plus the facet that
// produced it.
type SearchQuery struct {
	Text  string
	Facet QueryFacet
}
