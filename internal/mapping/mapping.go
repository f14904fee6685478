// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapping turns an OpenAlex works search for one claimed
// publication into an ORCID work, or decides that no trustworthy match
// exists. Mapping holds no state between calls and is safe for concurrent
// use on independent responses.
package mapping

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/orcid-works/internal/openalex"
	"github.com/pdiddy/orcid-works/internal/orcid"
)

// ErrMalformedWork wraps failures to build value objects from a selected
// candidate (bad date or a contributor without a name).
var ErrMalformedWork = errors.New("malformed OpenAlex work")

// Skip explains why no work was produced for a response.
type Skip string

const (
	SkipNone    Skip = ""
	SkipNoMatch Skip = "no_match"
	SkipNoDOI   Skip = "no_doi"
)

// duplicateThreshold is the candidate count above which duplicate
// resolution runs; at or below it the first result is taken as is.
const duplicateThreshold = 2

// Mapper converts OpenAlex works responses to ORCID works.
type Mapper struct {
	logger zerolog.Logger
}

// New creates a Mapper that reports skipped claims to logger.
func New(logger zerolog.Logger) *Mapper {
	return &Mapper{logger: logger.With().Str("component", "mapping").Logger()}
}

// Select returns the candidate to map from raw, or nil when raw is absent or
// reports zero matches.
func Select(raw *openalex.WorksResponse) (*openalex.Work, error) {
	if raw == nil || raw.Meta.Count == 0 {
		return nil, nil
	}
	if len(raw.Results) > duplicateThreshold {
		w, err := ResolveDuplicates(raw.Results)
		if err != nil {
			return nil, err
		}
		return &w, nil
	}
	if len(raw.Results) == 0 {
		return nil, fmt.Errorf("meta.count is %d: %w", raw.Meta.Count, ErrNoCandidates)
	}
	return &raw.Results[0], nil
}

// ToWork maps raw to an ORCID work. It returns a nil work and a Skip reason
// when there is no match or the chosen candidate has no DOI. Errors are
// fatal: an *UnknownTypeError, ErrNoCandidates, or ErrMalformedWork.
func (m *Mapper) ToWork(raw *openalex.WorksResponse) (*orcid.Work, Skip, error) {
	cand, err := Select(raw)
	if err != nil {
		return nil, SkipNone, err
	}
	if cand == nil {
		m.logger.Debug().Msg("no match")
		return nil, SkipNoMatch, nil
	}
	if cand.DOI == "" {
		m.logger.Debug().Str("work", cand.ID).Msg("candidate has no DOI")
		return nil, SkipNoDOI, nil
	}

	w, err := m.buildWork(*cand)
	if err != nil {
		return nil, SkipNone, err
	}
	return w, SkipNone, nil
}

func (m *Mapper) buildWork(cand openalex.Work) (*orcid.Work, error) {
	workType, err := LookupType(cand.Type)
	if err != nil {
		return nil, fmt.Errorf("work %s: %w", cand.ID, err)
	}
	date, err := orcid.ParseFuzzyDate(cand.PublicationDate)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformedWork, cand.ID, err)
	}
	contributors, err := orcid.NewContributors(m.dropInvalidORCIDs(cand.ID, ExtractContributors(cand.Authorships)))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformedWork, cand.ID, err)
	}

	return &orcid.Work{
		Title:           cand.Title,
		Type:            workType,
		JournalTitle:    cand.JournalTitle(),
		PublicationDate: date,
		DOI:             cand.DOI,
		URL:             cand.LandingPageURL(),
		Contributors:    contributors,
	}, nil
}

// ExtractContributors lists each authorship's display name and ORCID in
// authorship order.
func ExtractContributors(authorships []openalex.Authorship) []orcid.Contributor {
	out := make([]orcid.Contributor, 0, len(authorships))
	for _, a := range authorships {
		out = append(out, orcid.Contributor{
			CreditName: a.Author.DisplayName,
			ORCID:      a.Author.ORCID,
		})
	}
	return out
}

// dropInvalidORCIDs clears ORCID iDs that fail validation. The contributor
// is kept with an empty iD and the problem is logged.
func (m *Mapper) dropInvalidORCIDs(workID string, in []orcid.Contributor) []orcid.Contributor {
	for i, c := range in {
		if _, err := orcid.NormalizeORCID(c.ORCID); err != nil {
			m.logger.Warn().Err(err).Str("work", workID).Str("contributor", c.CreditName).
				Msg("dropping invalid ORCID iD")
			in[i].ORCID = ""
		}
	}
	return in
}
