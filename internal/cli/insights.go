package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"go-hrpms/internal/insight"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func insightsCmd(open Opener) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Print the current workforce insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, open, func(db *gorm.DB) error {
				snap, err := insight.NewService(insight.NewRepository(db), nil).Snapshot(cmd.Context())
				if err != nil {
					return fmt.Errorf("insights: %w", err)
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(snap)
				}
				printSnapshot(cmd.OutOrStdout(), snap)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func printSnapshot(out io.Writer, snap insight.Snapshot) {
	fmt.Fprintf(out, "%s %d\n", bold("Active employees:"), snap.TotalActive)
	if snap.AvgSalary.Valid {
		fmt.Fprintf(out, "%s min %s / avg %s / max %s\n", bold("Salary:"),
			snap.MinSalary.Decimal.StringFixed(2),
			snap.AvgSalary.Decimal.StringFixed(2),
			snap.MaxSalary.Decimal.StringFixed(2))
	} else {
		fmt.Fprintf(out, "%s n/a\n", bold("Salary:"))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nDEPARTMENT\tHEADCOUNT\tAVG SALARY")
	for _, name := range sortedKeys(snap.HeadcountByDepartment) {
		avg := snap.AvgSalaryByDepartment[name]
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, snap.HeadcountByDepartment[name], avg.StringFixed(2))
	}
	w.Flush()

	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nTASK STATUS\tCOUNT")
	for _, status := range sortedKeys(snap.TasksByStatus) {
		fmt.Fprintf(w, "%s\t%d\n", status, snap.TasksByStatus[status])
	}
	w.Flush()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
