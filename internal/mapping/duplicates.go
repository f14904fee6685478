// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapping

import (
	"errors"

	"github.com/pdiddy/orcid-works/internal/openalex"
)

// ErrNoCandidates is returned when a response claims matches but offers
// nothing to choose from.
var ErrNoCandidates = errors.New("no candidate works to choose from")

const preprintType = "preprint"

// Partition splits items into those failing and those satisfying pred.
// Every item lands in exactly one group and relative order is kept.
func Partition[T any](items []T, pred func(T) bool) (rejected, accepted []T) {
	for _, item := range items {
		if pred(item) {
			accepted = append(accepted, item)
		} else {
			rejected = append(rejected, item)
		}
	}
	return rejected, accepted
}

// IsPreprint reports whether w is typed as a preprint.
func IsPreprint(w openalex.Work) bool {
	return w.Type == preprintType
}

// ResolveDuplicates picks one work from several candidates for the same
// claim. A published version beats a preprint; within each group the
// earliest (most relevant, as OpenAlex orders results) wins.
func ResolveDuplicates(works []openalex.Work) (openalex.Work, error) {
	others, preprints := Partition(works, IsPreprint)
	if len(others) > 0 {
		return others[0], nil
	}
	if len(preprints) > 0 {
		return preprints[0], nil
	}
	return openalex.Work{}, ErrNoCandidates
}
