// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/pdiddy/orcid-works/internal/orcid"
)

// ErrUnknownType is wrapped by UnknownTypeError.
var ErrUnknownType = errors.New("unknown OpenAlex work type")

// UnknownTypeError reports an OpenAlex type missing from the vocabulary
// table. It means upstream added a type and the table needs updating.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownType, e.Type)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// typeTable maps OpenAlex work types to ORCID work types.
// See https://api.openalex.org/works?group_by=type for the source vocabulary.
var typeTable = map[string]orcid.WorkType{
	"article":                 orcid.TypeJournalArticle,
	"book-chapter":            orcid.TypeBookChapter,
	"book":                    orcid.TypeBook,
	"dataset":                 orcid.TypeDataSet,
	"dissertation":            orcid.TypeDissertationThesis,
	"preprint":                orcid.TypePreprint,
	"reference-entry":         orcid.TypeEncyclopediaEntry,
	"review":                  orcid.TypeBookReview,
	"report":                  orcid.TypeReport,
	"other":                   orcid.TypeOther,
	"peer-review":             orcid.TypeReview,
	"standard":                orcid.TypeStandardsAndPolicy,
	"editorial":               orcid.TypeOther,
	"erratum":                 orcid.TypeOther,
	"letter":                  orcid.TypeOther,
	"supplementary-materials": orcid.TypeOther,
}

// LookupType returns the ORCID type for an OpenAlex type. There is no
// default: an unlisted type is an *UnknownTypeError.
func LookupType(openAlexType string) (orcid.WorkType, error) {
	t, ok := typeTable[openAlexType]
	if !ok {
		return "", &UnknownTypeError{Type: openAlexType}
	}
	return t, nil
}

// KnownTypes lists the OpenAlex types the table covers, sorted.
func KnownTypes() []string {
	return slices.Sorted(maps.Keys(typeTable))
}
