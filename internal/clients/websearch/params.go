package websearch

import (
	"fmt"
	"net/url"
	"strconv"
)

// The API refuses offsets past the first hundred results.
const maxStartOffset = 91

type SearchParameters struct {
	Query string
	Start int
	Num   int
}

func (s SearchParameters) Validate() error {

	if s.Query == "" {
		return fmt.Errorf("query must not be empty")
	}

	if s.Start < 1 || s.Start > maxStartOffset {
		return fmt.Errorf("start must be between 1 and %d", maxStartOffset)
	}

	if s.Num < 1 || s.Num > 10 {
		return fmt.Errorf("num must be between 1 and 10")
	}

	return nil
}

func (s SearchParameters) ToUrlParams() url.Values {

	params := url.Values{}
	params.Add("q", s.Query)
	params.Add("start", strconv.Itoa(s.Start))
	params.Add("num", strconv.Itoa(s.Num))

	return params
}
