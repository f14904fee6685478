// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest resolves an author in OpenAlex, fetches each claimed work,
// and maps the matches to ORCID works. Claims are processed one at a time in
// input order. A claim with no match, no DOI, or a failed request is
// recorded and skipped; a mapping error stops the run.
package harvest

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/orcid-works/internal/mapping"
	"github.com/pdiddy/orcid-works/internal/observability"
	"github.com/pdiddy/orcid-works/internal/openalex"
	"github.com/pdiddy/orcid-works/internal/orcid"
	"github.com/pdiddy/orcid-works/pkg/types"
)

var (
	// ErrAuthorLookupFailed means the author request itself failed.
	ErrAuthorLookupFailed = errors.New("author lookup failed")

	// ErrAuthorNotFound means the lookup succeeded with no matching author.
	ErrAuthorNotFound = errors.New("author not found")
)

// Source looks up authors and works. *openalex.Client implements it.
type Source interface {
	ResolveAuthor(ctx context.Context, q types.AuthorQuery) *openalex.AuthorsResponse
	FetchWorks(ctx context.Context, authorID string, claims []types.WorkClaim) iter.Seq2[types.WorkClaim, *openalex.WorksResponse]
}

// Mapper converts one works response. *mapping.Mapper implements it.
type Mapper interface {
	ToWork(raw *openalex.WorksResponse) (*orcid.Work, mapping.Skip, error)
}

// Reasons recorded for claims that produced no work.
const (
	ReasonNoMatch     = "no_match"
	ReasonNoDOI       = "no_doi"
	ReasonFetchFailed = "fetch_failed"
)

// ResolveAuthorID looks up q and returns the best match's short OpenAlex ID.
func ResolveAuthorID(ctx context.Context, src Source, q types.AuthorQuery) (string, error) {
	resp := src.ResolveAuthor(ctx, q)
	if resp == nil {
		return "", fmt.Errorf("%w: %s", ErrAuthorLookupFailed, q.Name)
	}
	id := openalex.AuthorID(resp)
	if id == "" {
		return "", fmt.Errorf("%w: %s at %s", ErrAuthorNotFound, q.Name, q.InstitutionROR)
	}
	return id, nil
}

// Run harvests claims for author. The returned report is never nil; on a
// fatal mapping error it holds everything processed before the failure.
func Run(ctx context.Context, src Source, m Mapper, author types.AuthorQuery, claims []types.WorkClaim, logger zerolog.Logger) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Author:    author,
		Timestamp: time.Now().UTC(),
	}
	report.Summary.Claims = len(claims)

	authorID, err := ResolveAuthorID(ctx, src, author)
	if err != nil {
		return report, err
	}
	report.AuthorID = authorID
	logger.Info().Str("author_id", authorID).Int("claims", len(claims)).Msg("resolved author")

	for claim, raw := range src.FetchWorks(ctx, authorID, claims) {
		log := observability.WithClaimContext(logger, claim.Title, claim.Year)

		if raw == nil {
			report.skip(claim, ReasonFetchFailed)
			log.Warn().Msg("fetch failed, skipping claim")
			continue
		}

		work, skip, err := m.ToWork(raw)
		if err != nil {
			return report, fmt.Errorf("claim %q: %w", claim.Title, err)
		}
		switch skip {
		case mapping.SkipNoMatch:
			report.skip(claim, ReasonNoMatch)
			log.Info().Msg("no match")
			continue
		case mapping.SkipNoDOI:
			report.skip(claim, ReasonNoDOI)
			log.Info().Msg("match has no DOI")
			continue
		}

		report.Works = append(report.Works, MatchedWork{Claim: claim, Work: *work})
		report.Summary.Matched++
		log.Debug().Str("doi", work.DOI).Msg("matched")
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}
