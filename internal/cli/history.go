package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
	"github.com/bryanwahyu/scamshield/internal/infra/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, search, clear or export past scans",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every scan, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listHistory(cmd, "")
	},
}

var historySearchCmd = &cobra.Command{
	Use:   "search TERM",
	Short: "List scans whose text contains TERM (case-insensitive)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listHistory(cmd, args[0])
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every stored scan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()
		if err := app.Scans.ClearHistory(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write scans to an Excel workbook",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	historyExportCmd.Flags().StringP("output", "o", "scamshield-history.xlsx", "output file")
	historyExportCmd.Flags().StringP("query", "q", "", "only export scans matching this term")
	historyCmd.AddCommand(historyListCmd, historySearchCmd, historyClearCmd, historyExportCmd)
}

func listHistory(cmd *cobra.Command, term string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	recs := app.Scans.SearchHistory(cmd.Context(), term)
	if len(recs) == 0 {
		if term != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No scans match %q.\n", term)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No scans yet.")
		}
		return nil
	}
	printRecords(cmd.OutOrStdout(), recs)
	return nil
}

func printRecords(w io.Writer, recs []domain.ScanRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tRISK\tSCORE\tTEXT")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			r.Date.Local().Format(time.DateTime), r.Type, r.RiskLevel.Label(), r.Score, preview(r.Text, 60))
	}
	tw.Flush()
}

func preview(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n-3]) + "..."
}

func runExport(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("output")
	term, _ := cmd.Flags().GetString("query")

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	recs := app.Scans.SearchHistory(cmd.Context(), term)
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if err := report.WriteHistory(f, recs); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d scans to %s\n", len(recs), out)
	return nil
}
