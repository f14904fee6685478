// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"strconv"
	"strings"

	"github.com/pdiddy/orcid-works/pkg/types"
)

const idPrefix = "https://openalex.org/"

// titleReplacer swaps the characters OpenAlex treats as filter syntax for
// spaces. Adjacent punctuation is not collapsed; search is fuzzy.
var titleReplacer = strings.NewReplacer(":", " ", ",", " ")

// SanitizeTitle replaces every colon and comma in title with a space.
func SanitizeTitle(title string) string {
	return titleReplacer.Replace(title)
}

// AuthorFilter builds the /authors filter matching a fuzzy display name at
// the author's last known (current) institution.
func AuthorFilter(q types.AuthorQuery) string {
	return "display_name.search:" + q.Name + ",last_known_institutions.ror:" + q.InstitutionROR
}

// WorkFilter builds the /works filter for one claim: sanitized title and
// author ID, plus an exact publication year when the claim has one.
func WorkFilter(authorID string, claim types.WorkClaim) string {
	filter := "display_name.search:" + SanitizeTitle(claim.Title) + ",author.id:" + authorID
	if claim.HasYear() {
		filter += ",publication_year:" + strconv.Itoa(claim.Year)
	}
	return filter
}

// ShortID strips the https://openalex.org/ prefix from an entity ID.
func ShortID(id string) string {
	return strings.TrimPrefix(id, idPrefix)
}

// AuthorID returns the short ID of the best author match, or "" when the
// response is absent or empty.
func AuthorID(resp *AuthorsResponse) string {
	if resp == nil || len(resp.Results) == 0 {
		return ""
	}
	return ShortID(resp.Results[0].ID)
}
