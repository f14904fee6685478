// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package claims

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/orcid-works/pkg/types"
)

const sampleClaims = `author:
  name: Jane Doe
  institution_ror: https://ror.org/00hx57361
claims:
  - title: "A Study: On Things, and Stuff"
    year: 2021
  - title: "  Untitled Notes  "
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleClaims), NewValidator())
	require.NoError(t, err)

	require.NotNil(t, f.Author)
	assert.Equal(t, types.AuthorQuery{Name: "Jane Doe", InstitutionROR: "https://ror.org/00hx57361"}, *f.Author)
	assert.Equal(t, []types.WorkClaim{
		{Title: "A Study: On Things, and Stuff", Year: 2021},
		{Title: "Untitled Notes"},
	}, f.Claims)
	assert.True(t, f.Claims[0].HasYear())
	assert.False(t, f.Claims[1].HasYear())
}

func TestParse_AuthorOptional(t *testing.T) {
	f, err := Parse([]byte("claims:\n  - title: Only\n"), NewValidator())
	require.NoError(t, err)
	assert.Nil(t, f.Author)
	assert.Len(t, f.Claims, 1)
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"no claims", "claims: []\n", "claims"},
		{"missing claims key", "author:\n  name: X\n  institution_ror: Y\n", "claims"},
		{"blank title", "claims:\n  - title: Fine\n  - title: '   '\n", "claims[1].title"},
		{"year too small", "claims:\n  - title: Old\n    year: 99\n", "claims[0].year"},
		{"year too large", "claims:\n  - title: Future\n    year: 20210\n", "claims[0].year"},
		{"author without ror", "author:\n  name: X\nclaims:\n  - title: T\n", "author.institution_ror"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), NewValidator())
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("claims: [unclosed"), NewValidator())
	assert.ErrorContains(t, err, "parsing claims file")
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "claims.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleClaims), 0o644))

	f, err := ReadFile(path, NewValidator())
	require.NoError(t, err)
	assert.Len(t, f.Claims, 2)

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"), NewValidator())
	assert.ErrorContains(t, err, "reading claims file")
}

func TestValidator_AuthorQuery(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(types.AuthorQuery{Name: "A", InstitutionROR: "B"}))

	err := v.Validate(types.AuthorQuery{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["name"])
	assert.Equal(t, "is required", verr.Fields["institution_ror"])
}

func TestCountDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.yaml"),
		[]byte("claims:\n  - title: A\n  - title: B\n    year: 2020\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.yaml"),
		[]byte("claims:\n  - title: C\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	files, n, err := CountDir(dir, NewValidator())
	require.NoError(t, err)
	assert.Equal(t, 2, files)
	assert.Equal(t, 3, n)
}

func TestCountDir_MissingDir(t *testing.T) {
	files, n, err := CountDir(filepath.Join(t.TempDir(), "absent"), NewValidator())
	require.NoError(t, err)
	assert.Zero(t, files)
	assert.Zero(t, n)
}

func TestCountDir_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("claims: []\n"), 0o644))

	_, _, err := CountDir(dir, NewValidator())
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
