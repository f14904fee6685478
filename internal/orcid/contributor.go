// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orcid

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidContributor is returned for a contributor without a credit name
// or with a malformed ORCID iD.
var ErrInvalidContributor = errors.New("invalid contributor")

var orcidIDRegex = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

var orcidURLPrefixes = []string{"https://orcid.org/", "http://orcid.org/"}

// Contributor is one author credit on a work. ORCID is the bare iD
// (0000-0002-1825-0097) or empty.
type Contributor struct {
	CreditName string `json:"credit_name" yaml:"credit_name"`
	ORCID      string `json:"orcid,omitempty" yaml:"orcid,omitempty"`
}

// NewContributors normalizes an ordered contributor list: names are trimmed,
// ORCID URLs are reduced to bare iDs and checksum-verified, and exact
// repeats are dropped. Order is preserved and applying it twice changes
// nothing.
func NewContributors(in []Contributor) ([]Contributor, error) {
	out := make([]Contributor, 0, len(in))
	seen := make(map[Contributor]bool, len(in))
	for i, c := range in {
		n := Contributor{CreditName: strings.TrimSpace(c.CreditName)}
		if n.CreditName == "" {
			return nil, fmt.Errorf("%w: contributor %d has no credit name", ErrInvalidContributor, i)
		}
		id, err := NormalizeORCID(c.ORCID)
		if err != nil {
			return nil, fmt.Errorf("contributor %q: %w", n.CreditName, err)
		}
		n.ORCID = id
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}

// NormalizeORCID strips an orcid.org URL prefix and validates the iD,
// including its ISO 7064 11-2 check digit. Empty input is allowed.
func NormalizeORCID(s string) (string, error) {
	id := strings.TrimSpace(s)
	for _, p := range orcidURLPrefixes {
		id = strings.TrimPrefix(id, p)
	}
	if id == "" {
		return "", nil
	}
	if !orcidIDRegex.MatchString(id) {
		return "", fmt.Errorf("%w: malformed ORCID iD %q", ErrInvalidContributor, s)
	}
	if checkDigit(id) != id[len(id)-1] {
		return "", fmt.Errorf("%w: bad ORCID check digit in %q", ErrInvalidContributor, s)
	}
	return id, nil
}

func checkDigit(id string) byte {
	total := 0
	for _, r := range id[:len(id)-1] {
		if r == '-' {
			continue
		}
		total = (total + int(r-'0')) * 2
	}
	result := (12 - total%11) % 11
	if result == 10 {
		return 'X'
	}
	return byte('0' + result)
}
