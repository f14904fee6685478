// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

// OpenAlex API JSON structures. Only the fields the mapping engine reads are
// decoded; JSON nulls decode to zero values and nested objects that may be
// null are pointers.

// Meta carries result counts for a list response.
type Meta struct {
	Count   int `json:"count" yaml:"count"`
	PerPage int `json:"per_page" yaml:"per_page"`
	Page    int `json:"page" yaml:"page"`
}

// WorksResponse is the body of a /works search.
type WorksResponse struct {
	Meta    Meta   `json:"meta" yaml:"meta"`
	Results []Work `json:"results" yaml:"results"`
}

// Work is one candidate work record.
type Work struct {
	ID              string       `json:"id" yaml:"id"`
	Type            string       `json:"type" yaml:"type"`
	Title           string       `json:"title" yaml:"title"`
	DOI             string       `json:"doi" yaml:"doi"`
	PublicationDate string       `json:"publication_date" yaml:"publication_date"`
	PublicationYear int          `json:"publication_year" yaml:"publication_year"`
	PrimaryLocation *Location    `json:"primary_location" yaml:"primary_location"`
	Authorships     []Authorship `json:"authorships" yaml:"authorships"`
}

// Location is where a work is hosted.
type Location struct {
	Source         *Source `json:"source" yaml:"source"`
	LandingPageURL string  `json:"landing_page_url" yaml:"landing_page_url"`
}

// Source is the venue (journal, repository, conference) of a location.
type Source struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// Authorship links a work to one of its authors.
type Authorship struct {
	AuthorPosition string `json:"author_position" yaml:"author_position"`
	Author         Author `json:"author" yaml:"author"`
}

// Author is the author stub embedded in an authorship.
type Author struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	ORCID       string `json:"orcid" yaml:"orcid"`
}

// JournalTitle returns the display name of the primary location's source.
// Each level is independently nullable; a missing level yields "".
func (w Work) JournalTitle() string {
	if w.PrimaryLocation == nil || w.PrimaryLocation.Source == nil {
		return ""
	}
	return w.PrimaryLocation.Source.DisplayName
}

// LandingPageURL returns the primary location's landing page, or "" when
// the work has no primary location.
func (w Work) LandingPageURL() string {
	if w.PrimaryLocation == nil {
		return ""
	}
	return w.PrimaryLocation.LandingPageURL
}

// AuthorsResponse is the body of an /authors search.
type AuthorsResponse struct {
	Meta    Meta           `json:"meta" yaml:"meta"`
	Results []AuthorRecord `json:"results" yaml:"results"`
}

// AuthorRecord is a full author entity.
type AuthorRecord struct {
	ID                    string        `json:"id" yaml:"id"`
	DisplayName           string        `json:"display_name" yaml:"display_name"`
	ORCID                 string        `json:"orcid" yaml:"orcid"`
	WorksCount            int           `json:"works_count" yaml:"works_count"`
	LastKnownInstitutions []Institution `json:"last_known_institutions" yaml:"last_known_institutions"`
}

// Institution is an affiliation record.
type Institution struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	ROR         string `json:"ror" yaml:"ror"`
}
