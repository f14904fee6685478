// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapping

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/orcid-works/internal/openalex"
	"github.com/pdiddy/orcid-works/internal/orcid"
)

func response(works ...openalex.Work) *openalex.WorksResponse {
	return &openalex.WorksResponse{Meta: openalex.Meta{Count: len(works)}, Results: works}
}

func fullWork() openalex.Work {
	return openalex.Work{
		ID:              "https://openalex.org/W1",
		Type:            "article",
		Title:           "A Study",
		DOI:             "10.1/x",
		PublicationDate: "2021-03-04",
		PrimaryLocation: &openalex.Location{
			Source:         &openalex.Source{DisplayName: "Journal of Things"},
			LandingPageURL: "https://example.org/w1",
		},
		Authorships: []openalex.Authorship{
			{Author: openalex.Author{DisplayName: "Jane Doe", ORCID: "https://orcid.org/0000-0002-1825-0097"}},
			{Author: openalex.Author{DisplayName: "John Roe"}},
		},
	}
}

func TestToWork_Article(t *testing.T) {
	m := New(zerolog.Nop())
	w, skip, err := m.ToWork(response(fullWork()))
	require.NoError(t, err)
	assert.Equal(t, SkipNone, skip)
	require.NotNil(t, w)

	assert.Equal(t, &orcid.Work{
		Title:           "A Study",
		Type:            orcid.TypeJournalArticle,
		JournalTitle:    "Journal of Things",
		PublicationDate: orcid.FuzzyDate{Year: 2021, Month: 3, Day: 4},
		DOI:             "10.1/x",
		URL:             "https://example.org/w1",
		Contributors: []orcid.Contributor{
			{CreditName: "Jane Doe", ORCID: "0000-0002-1825-0097"},
			{CreditName: "John Roe"},
		},
	}, w)
}

func TestToWork_Absent(t *testing.T) {
	var logs bytes.Buffer
	m := New(zerolog.New(&logs))

	for name, raw := range map[string]*openalex.WorksResponse{
		"nil response": nil,
		"zero count":   {Meta: openalex.Meta{Count: 0}},
		"zero count with stale results": {
			Meta:    openalex.Meta{Count: 0},
			Results: []openalex.Work{fullWork()},
		},
	} {
		t.Run(name, func(t *testing.T) {
			w, skip, err := m.ToWork(raw)
			require.NoError(t, err)
			assert.Nil(t, w)
			assert.Equal(t, SkipNoMatch, skip)
		})
	}
	assert.NotContains(t, logs.String(), `"level":"error"`, "no-match is not an error")
}

func TestToWork_NoDOI(t *testing.T) {
	m := New(zerolog.Nop())

	noDOI := fullWork()
	noDOI.DOI = ""
	w, skip, err := m.ToWork(response(noDOI))
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.Equal(t, SkipNoDOI, skip)

	// No DOI wins even over an otherwise fatal type.
	noDOI.Type = "unknown-foo"
	w, skip, err = m.ToWork(response(noDOI))
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.Equal(t, SkipNoDOI, skip)
}

func TestToWork_UnknownTypeIsFatal(t *testing.T) {
	m := New(zerolog.Nop())
	bad := fullWork()
	bad.Type = "unknown-foo"

	w, _, err := m.ToWork(response(bad))
	assert.Nil(t, w)
	require.ErrorIs(t, err, ErrUnknownType)
	var ute *UnknownTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "unknown-foo", ute.Type)
}

func TestToWork_MissingPrimaryLocation(t *testing.T) {
	m := New(zerolog.Nop())
	cand := fullWork()
	cand.PrimaryLocation = nil

	w, _, err := m.ToWork(response(cand))
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Empty(t, w.JournalTitle)
	assert.Empty(t, w.URL)
}

func TestToWork_LocationWithoutSource(t *testing.T) {
	m := New(zerolog.Nop())
	cand := fullWork()
	cand.PrimaryLocation = &openalex.Location{LandingPageURL: "https://example.org/landing"}

	w, _, err := m.ToWork(response(cand))
	require.NoError(t, err)
	assert.Empty(t, w.JournalTitle)
	assert.Equal(t, "https://example.org/landing", w.URL)
}

func TestToWork_SelectionBySize(t *testing.T) {
	m := New(zerolog.Nop())

	preprint := fullWork()
	preprint.Type = "preprint"
	preprint.Title = "Preprint"
	article := fullWork()
	article.Title = "Article"

	// Two candidates: first is taken without duplicate resolution.
	w, _, err := m.ToWork(response(preprint, article))
	require.NoError(t, err)
	assert.Equal(t, "Preprint", w.Title)
	assert.Equal(t, orcid.TypePreprint, w.Type)

	// Three candidates: the article beats the preprints around it.
	w, _, err = m.ToWork(response(preprint, article, preprint))
	require.NoError(t, err)
	assert.Equal(t, "Article", w.Title)
	assert.Equal(t, orcid.TypeJournalArticle, w.Type)
}

func TestToWork_CountWithoutResultsIsFatal(t *testing.T) {
	m := New(zerolog.Nop())
	_, _, err := m.ToWork(&openalex.WorksResponse{Meta: openalex.Meta{Count: 3}})
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestToWork_MalformedCandidates(t *testing.T) {
	m := New(zerolog.Nop())

	badDate := fullWork()
	badDate.PublicationDate = "sometime"
	_, _, err := m.ToWork(response(badDate))
	assert.ErrorIs(t, err, ErrMalformedWork)
	assert.ErrorIs(t, err, orcid.ErrInvalidDate)

	noName := fullWork()
	noName.Authorships = []openalex.Authorship{{}}
	_, _, err = m.ToWork(response(noName))
	assert.ErrorIs(t, err, ErrMalformedWork)
	assert.ErrorIs(t, err, orcid.ErrInvalidContributor)
}

func TestToWork_FromDecodedJSON(t *testing.T) {
	raw := `{
	  "meta": {"count": 1},
	  "results": [{
	    "id": "https://openalex.org/W9",
	    "type": "article",
	    "title": "Decoded",
	    "doi": "10.1/x",
	    "publication_date": "2019-07",
	    "primary_location": null,
	    "authorships": [{"author": {"display_name": "Ann Poe", "orcid": null}}]
	  }]
	}`
	var resp openalex.WorksResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	w, _, err := New(zerolog.Nop()).ToWork(&resp)
	require.NoError(t, err)
	assert.Equal(t, orcid.TypeJournalArticle, w.Type)
	assert.Equal(t, orcid.PrecisionMonth, w.PublicationDate.Precision())
	assert.Equal(t, []orcid.Contributor{{CreditName: "Ann Poe"}}, w.Contributors)
}

func TestToWork_InvalidORCIDDropped(t *testing.T) {
	var logs bytes.Buffer
	m := New(zerolog.New(&logs))

	raw := fullWork()
	raw.Authorships[0].Author.ORCID = "https://orcid.org/0000-0002-1825-0098"

	w, skip, err := m.ToWork(response(raw))
	require.NoError(t, err)
	assert.Equal(t, SkipNone, skip)
	require.NotNil(t, w)
	assert.Equal(t, []orcid.Contributor{
		{CreditName: "Jane Doe"},
		{CreditName: "John Roe"},
	}, w.Contributors)
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), "dropping invalid ORCID iD")
}

func TestExtractContributors(t *testing.T) {
	got := ExtractContributors([]openalex.Authorship{
		{Author: openalex.Author{DisplayName: "B", ORCID: "https://orcid.org/0000-0001-2345-6789"}},
		{Author: openalex.Author{DisplayName: "A"}},
	})
	assert.Equal(t, []orcid.Contributor{
		{CreditName: "B", ORCID: "https://orcid.org/0000-0001-2345-6789"},
		{CreditName: "A"},
	}, got)
	assert.Empty(t, ExtractContributors(nil))
}
