package services

import (
	"regexp"
	"sort"
	"strings"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// placeholder addresses and scraped-markup false positives that must never
// reach the dispatcher
var (
	denylistedDomains   = []string{"example.com", "example.org", "email.com", "domain.com"}
	denylistedLocals    = []string{"admin", "webmaster", "postmaster"}
	denylistedFragments = []string{"noreply", "no-reply", "donotreply"}
	fileExtensions    = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".pdf", ".css", ".js"}
)

const (
	minEmailLength = 6
	maxEmailLength = 100
)

// ExtractEmails pulls every syntactically valid address out of a block of
// text, lowercased and deduplicated. It is pure: malformed or empty input
// yields an empty slice, never an error.
func ExtractEmails(text string) []string {

	matches := emailPattern.FindAllString(text, -1)

	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		email := strings.ToLower(match)
		if !IsValidEmail(email) {
			continue
		}
		seen[email] = struct{}{}
	}

	emails := make([]string, 0, len(seen))
	for email := range seen {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}

// IsValidEmail applies the lexical pattern, the length bounds and the
// denylist to a single already-lowercased address.
func IsValidEmail(email string) bool {

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return false
	}

	if strings.Count(email, "@") != 1 {
		return false
	}

	if !emailPattern.MatchString(email) {
		return false
	}

	local, domain, _ := strings.Cut(email, "@")

	for _, blocked := range denylistedDomains {
		if domain == blocked || strings.HasSuffix(domain, "."+blocked) {
			return false
		}
	}

	for _, blocked := range denylistedLocals {
		if local == blocked || strings.HasPrefix(local, blocked+".") {
			return false
		}
	}

	for _, fragment := range denylistedFragments {
		if strings.Contains(local, fragment) {
			return false
		}
	}

	for _, ext := range fileExtensions {
		if strings.Contains(email, ext) {
			return false
		}
	}

	return true
}
