// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/orcid-works/internal/claims"
	"github.com/pdiddy/orcid-works/internal/harvest"
	"github.com/pdiddy/orcid-works/internal/mapping"
	"github.com/pdiddy/orcid-works/internal/openalex"
	"github.com/pdiddy/orcid-works/pkg/types"
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Match claimed publications and convert them to ORCID works",
	Long: `Harvest reads a claims file (YAML list of titles with optional years),
resolves the author in OpenAlex, searches for each claim, and converts the
best match to an ORCID work.

Claims are processed in order. A claim with no match, a match without a
DOI, or a failed request is reported and skipped. An OpenAlex work type the
tool does not know stops the run; the partial report is still written.`,
	RunE: runHarvest,
}

func init() {
	harvestCmd.Flags().String("claims", "", "claims file (YAML)")
	harvestCmd.Flags().String("author", "", "author display name (overrides the claims file)")
	harvestCmd.Flags().String("format", string(types.OutputTable), "output format: table, json, yaml, or orcid")
	harvestCmd.Flags().String("out", "", "also save the report as YAML to this file")
	_ = harvestCmd.MarkFlagRequired("claims")

	rootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	claimsPath, _ := cmd.Flags().GetString("claims")
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	v := claims.NewValidator()
	f, err := claims.ReadFile(claimsPath, v)
	if err != nil {
		return err
	}

	author := authorFromInputs(f, cmd)
	if err := v.Validate(author); err != nil {
		return err
	}

	ctx, stop := interruptContext()
	defer stop()

	client := openalex.New(openAlexConfig(), logger)
	report, runErr := harvest.Run(ctx, client, mapping.New(logger), author, f.Claims, logger)

	if outPath != "" && report.AuthorID != "" {
		if err := harvest.WriteReportFile(outPath, report); err != nil {
			return err
		}
		logger.Info().Str("file", outPath).Msg("report saved")
	}
	if report.AuthorID != "" {
		if err := harvest.Write(report, types.OutputFormat(format), cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("harvest stopped after %d of %d claims: %w",
			report.Summary.Processed(), report.Summary.Claims, runErr)
	}
	return nil
}

// authorFromInputs takes the author from the claims file, with --author and
// --ror (or config) taking precedence.
func authorFromInputs(f *claims.File, cmd *cobra.Command) types.AuthorQuery {
	var q types.AuthorQuery
	if f.Author != nil {
		q = *f.Author
	}
	if name, _ := cmd.Flags().GetString("author"); name != "" {
		q.Name = name
	}
	if ror := viper.GetString("institution.ror"); ror != "" {
		q.InstitutionROR = ror
	}
	return q
}
