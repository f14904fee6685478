// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/orcid-works/internal/orcid"
	"github.com/pdiddy/orcid-works/pkg/types"
)

// Report is the outcome of one harvest run. It can be saved to a YAML file
// and reloaded later without re-querying OpenAlex.
type Report struct {
	RunID     string            `json:"run_id" yaml:"run_id"`
	Author    types.AuthorQuery `json:"author" yaml:"author"`
	AuthorID  string            `json:"author_id" yaml:"author_id"`
	Timestamp time.Time         `json:"timestamp" yaml:"timestamp"`
	Works     []MatchedWork     `json:"works" yaml:"works"`
	Unmatched []Unmatched       `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`
	Summary   Summary           `json:"summary" yaml:"summary"`
}

// MatchedWork pairs a claim with the work it resolved to.
type MatchedWork struct {
	Claim types.WorkClaim `json:"claim" yaml:"claim"`
	Work  orcid.Work      `json:"work" yaml:"work"`
}

// Unmatched records a claim that produced no work and why.
type Unmatched struct {
	Claim  types.WorkClaim `json:"claim" yaml:"claim"`
	Reason string          `json:"reason" yaml:"reason"`
}

// Summary counts claim outcomes.
type Summary struct {
	Claims      int `json:"claims" yaml:"claims"`
	Matched     int `json:"matched" yaml:"matched"`
	NoMatch     int `json:"no_match" yaml:"no_match"`
	NoDOI       int `json:"no_doi" yaml:"no_doi"`
	FetchFailed int `json:"fetch_failed" yaml:"fetch_failed"`
}

// Processed returns how many claims reached an outcome.
func (s Summary) Processed() int {
	return s.Matched + s.NoMatch + s.NoDOI + s.FetchFailed
}

func (r *Report) skip(claim types.WorkClaim, reason string) {
	r.Unmatched = append(r.Unmatched, Unmatched{Claim: claim, Reason: reason})
	switch reason {
	case ReasonNoMatch:
		r.Summary.NoMatch++
	case ReasonNoDOI:
		r.Summary.NoDOI++
	case ReasonFetchFailed:
		r.Summary.FetchFailed++
	}
}

// ORCIDWorks returns the matched works in claim order.
func (r *Report) ORCIDWorks() []orcid.Work {
	works := make([]orcid.Work, len(r.Works))
	for i, m := range r.Works {
		works[i] = m.Work
	}
	return works
}

// Write renders r to w in the given format.
func Write(r *Report, format types.OutputFormat, w io.Writer) error {
	switch format {
	case types.OutputTable, "":
		FormatTable(r, w)
		return nil
	case types.OutputJSON:
		return FormatJSON(r, w)
	case types.OutputYAML:
		return FormatYAML(r, w)
	case types.OutputORCID:
		return FormatORCID(r, w)
	default:
		return fmt.Errorf("unknown output format %q (want table, json, yaml, or orcid)", format)
	}
}

// FormatTable writes matched works and skipped claims as a human-readable table.
func FormatTable(r *Report, w io.Writer) {
	if len(r.Works) == 0 {
		fmt.Fprintln(w, "No works matched.")
	} else {
		fmt.Fprintf(w, "%-4s  %-50s  %-16s  %-10s  %s\n", "#", "Title", "Type", "Date", "DOI")
		fmt.Fprintln(w, strings.Repeat("-", 110))
		for i, m := range r.Works {
			fmt.Fprintf(w, "%-4d  %-50s  %-16s  %-10s  %s\n",
				i+1, truncate(m.Work.Title, 50), m.Work.Type, m.Work.PublicationDate, orcid.BareDOI(m.Work.DOI))
		}
	}

	if len(r.Unmatched) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Skipped claims:")
		for _, u := range r.Unmatched {
			fmt.Fprintf(w, "  %-12s  %s\n", u.Reason, truncate(u.Claim.Title, 90))
		}
	}

	s := r.Summary
	fmt.Fprintf(w, "\n%d of %d claims matched", s.Matched, s.Claims)
	if skipped := s.NoMatch + s.NoDOI + s.FetchFailed; skipped > 0 {
		fmt.Fprintf(w, " (%d no match, %d no DOI, %d failed)", s.NoMatch, s.NoDOI, s.FetchFailed)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the full report as indented JSON.
func FormatJSON(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// FormatYAML writes the full report as YAML.
func FormatYAML(r *Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

// FormatORCID writes the matched works as a JSON array of ORCID v3.0 work
// payloads.
func FormatORCID(r *Report, w io.Writer) error {
	payloads := make([]orcid.Payload, 0, len(r.Works))
	for _, m := range r.Works {
		payloads = append(payloads, m.Work.Payload())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payloads)
}

// WriteReportFile saves r as YAML at path.
func WriteReportFile(path string, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReportFile loads a report saved by WriteReportFile.
func ReadReportFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report file: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report file: %w", err)
	}
	return &r, nil
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
