// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/orcid-works/internal/claims"
	"github.com/pdiddy/orcid-works/internal/harvest"
	"github.com/pdiddy/orcid-works/internal/openalex"
	"github.com/pdiddy/orcid-works/pkg/types"
)

var authorCmd = &cobra.Command{
	Use:   "author <name>",
	Short: "Look up an author in OpenAlex by name and institution",
	Long: `Author searches OpenAlex for authors whose display name matches <name> and
whose last known institution is the given ROR. The first result is the one
harvest would use.`,
	Args: cobra.ExactArgs(1),
	RunE: runAuthor,
}

func init() {
	authorCmd.Flags().Bool("json", false, "output the raw author records as JSON")
	rootCmd.AddCommand(authorCmd)
}

func runAuthor(cmd *cobra.Command, args []string) error {
	q := types.AuthorQuery{Name: args[0], InstitutionROR: viper.GetString("institution.ror")}
	if err := claims.NewValidator().Validate(q); err != nil {
		return err
	}

	client := openalex.New(openAlexConfig(), logger)
	ctx, stop := interruptContext()
	defer stop()

	resp := client.ResolveAuthor(ctx, q)
	if resp == nil {
		return fmt.Errorf("%w: %s", harvest.ErrAuthorLookupFailed, q.Name)
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp.Results)
	}
	formatAuthors(resp, out)
	return nil
}

func formatAuthors(resp *openalex.AuthorsResponse, w io.Writer) {
	if len(resp.Results) == 0 {
		fmt.Fprintln(w, "No authors found.")
		return
	}

	fmt.Fprintf(w, "%-14s  %-30s  %-21s  %-6s  %s\n", "ID", "Name", "ORCID", "Works", "Institution")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, a := range resp.Results {
		var inst []string
		for _, i := range a.LastKnownInstitutions {
			inst = append(inst, i.DisplayName)
		}
		fmt.Fprintf(w, "%-14s  %-30s  %-21s  %-6d  %s\n",
			openalex.ShortID(a.ID), a.DisplayName, strings.TrimPrefix(a.ORCID, "https://orcid.org/"),
			a.WorksCount, strings.Join(inst, "; "))
	}
	fmt.Fprintf(w, "\n%d author(s)\n", resp.Meta.Count)
}
