// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orcid holds the value objects of an ORCID work record and renders
// them as ORCID v3.0 API JSON. It has no knowledge of where the values came
// from.
package orcid

import "strings"

// WorkType is a member of the ORCID work-type vocabulary.
type WorkType string

const (
	TypeJournalArticle     WorkType = "journal-article"
	TypeBookChapter        WorkType = "book-chapter"
	TypeBook               WorkType = "book"
	TypeDataSet            WorkType = "data-set"
	TypeDissertationThesis WorkType = "dissertation-thesis"
	TypePreprint           WorkType = "preprint"
	TypeEncyclopediaEntry  WorkType = "encyclopedia-entry"
	TypeBookReview         WorkType = "book-review"
	TypeReport             WorkType = "report"
	TypeReview             WorkType = "review"
	TypeStandardsAndPolicy WorkType = "standards-and-policy"
	TypeOther              WorkType = "other"
)

// Work is a normalized publication ready for submission to ORCID. It is
// built once and not modified afterwards.
type Work struct {
	Title           string        `json:"title" yaml:"title"`
	Type            WorkType      `json:"type" yaml:"type"`
	JournalTitle    string        `json:"journal_title,omitempty" yaml:"journal_title,omitempty"`
	PublicationDate FuzzyDate     `json:"publication_date" yaml:"publication_date"`
	DOI             string        `json:"doi" yaml:"doi"`
	URL             string        `json:"url,omitempty" yaml:"url,omitempty"`
	Contributors    []Contributor `json:"contributors" yaml:"contributors"`
}

var doiPrefixes = []string{"https://doi.org/", "http://doi.org/", "https://dx.doi.org/", "doi:"}

// BareDOI strips resolver prefixes, returning e.g. "10.1/x".
func BareDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	for _, p := range doiPrefixes {
		if len(doi) >= len(p) && strings.EqualFold(doi[:len(p)], p) {
			return doi[len(p):]
		}
	}
	return doi
}
