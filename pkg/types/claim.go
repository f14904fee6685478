// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared inbound data structures and configuration for
// the orcid-works pipeline: the author being harvested, the publications
// claimed for that author, and per-stage settings.
package types

// AuthorQuery identifies the author to resolve against OpenAlex. The author
// is matched by fuzzy display name and current institutional affiliation.
type AuthorQuery struct {
	// Name is the author's display name as the caller knows it.
	Name string `json:"name" yaml:"name" validate:"required"`

	// InstitutionROR is the ROR identifier of the author's current
	// institution (e.g. "https://ror.org/012aaaa34" or "012aaaa34").
	InstitutionROR string `json:"institution_ror" yaml:"institution_ror" validate:"required"`
}

// WorkClaim is a publication the caller believes the author produced.
type WorkClaim struct {
	// Title is the publication title. Colons and commas are stripped before
	// it is used in a search filter.
	Title string `json:"title" yaml:"title" validate:"required"`

	// Year is the publication year. Zero means no year was supplied and no
	// year filter is applied.
	Year int `json:"year,omitempty" yaml:"year,omitempty" validate:"omitempty,min=1000,max=9999"`
}

// HasYear reports whether the claim carries a publication year.
func (c WorkClaim) HasYear() bool {
	return c.Year != 0
}
