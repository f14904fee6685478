// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/orcid-works/internal/orcid"
	"github.com/pdiddy/orcid-works/pkg/types"
)

func sampleReport() *Report {
	r := &Report{
		RunID:     "6f1c2a8e-0000-4000-8000-000000000001",
		Author:    janeDoe,
		AuthorID:  "A42",
		Timestamp: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		Works: []MatchedWork{{
			Claim: types.WorkClaim{Title: "A Study: On Things, and Stuff", Year: 2021},
			Work: orcid.Work{
				Title:           "A Study: On Things, and Stuff",
				Type:            orcid.TypeJournalArticle,
				JournalTitle:    "Journal of Things",
				PublicationDate: orcid.FuzzyDate{Year: 2021, Month: 3},
				DOI:             "https://doi.org/10.1/x",
				URL:             "https://example.org/x",
				Contributors:    []orcid.Contributor{{CreditName: "Jane Doe", ORCID: "0000-0002-1825-0097"}},
			},
		}},
		Summary: Summary{Claims: 2, Matched: 1},
	}
	r.skip(types.WorkClaim{Title: "Lost Paper"}, ReasonNoMatch)
	return r
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleReport(), &buf)
	out := buf.String()

	assert.Contains(t, out, "A Study: On Things, and Stuff")
	assert.Contains(t, out, "journal-article")
	assert.Contains(t, out, "2021-03")
	assert.Contains(t, out, "10.1/x")
	assert.NotContains(t, out, "https://doi.org/")
	assert.Contains(t, out, "Skipped claims:")
	assert.Contains(t, out, "no_match")
	assert.Contains(t, out, "1 of 2 claims matched (1 no match, 0 no DOI, 0 failed)")
}

func TestFormatTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(&Report{Summary: Summary{Claims: 0}}, &buf)
	assert.Contains(t, buf.String(), "No works matched.")
	assert.Contains(t, buf.String(), "0 of 0 claims matched\n")
}

func TestFormatTable_TruncatesLongTitles(t *testing.T) {
	r := sampleReport()
	r.Works[0].Work.Title = strings.Repeat("x", 80)
	var buf bytes.Buffer
	FormatTable(r, &buf)
	assert.Contains(t, buf.String(), strings.Repeat("x", 47)+"...")
}

func TestTruncate_Multibyte(t *testing.T) {
	got := truncate(strings.Repeat("é", 40), 30)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 27)+"...", got)

	short := strings.Repeat("é", 40)
	assert.Equal(t, short, truncate(short, 50), "40 runes fit in 50 even though the string is 80 bytes")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(sampleReport(), &buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "A42", decoded["author_id"])
	works := decoded["works"].([]any)
	require.Len(t, works, 1)
	work := works[0].(map[string]any)["work"].(map[string]any)
	assert.Equal(t, "2021-03", work["publication_date"])
	assert.Equal(t, "journal-article", work["type"])
}

func TestFormatORCID(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatORCID(sampleReport(), &buf))

	var payloads []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payloads))
	require.Len(t, payloads, 1)
	assert.Equal(t, "journal-article", payloads[0]["type"])
	ids := payloads[0]["external-ids"].(map[string]any)["external-id"].([]any)
	assert.Equal(t, "10.1/x", ids[0].(map[string]any)["external-id-value"])
}

func TestWrite_Formats(t *testing.T) {
	r := sampleReport()
	for _, f := range []types.OutputFormat{"", types.OutputTable, types.OutputJSON, types.OutputYAML, types.OutputORCID} {
		var buf bytes.Buffer
		require.NoError(t, Write(r, f, &buf), f)
		assert.NotEmpty(t, buf.String(), f)
	}

	var buf bytes.Buffer
	assert.ErrorContains(t, Write(r, "xml", &buf), "unknown output format")
}

func TestReportFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harvest.yaml")
	want := sampleReport()
	require.NoError(t, WriteReportFile(path, want))

	got, err := ReadReportFile(path)
	require.NoError(t, err)
	assert.Equal(t, want.RunID, got.RunID)
	assert.True(t, want.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, want.Works, got.Works)
	assert.Equal(t, want.Unmatched, got.Unmatched)
	assert.Equal(t, want.Summary, got.Summary)
	assert.Equal(t, want.ORCIDWorks(), got.ORCIDWorks())
}

func TestReadReportFile_Errors(t *testing.T) {
	_, err := ReadReportFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading report file")
}
