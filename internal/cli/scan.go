package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	appscans "github.com/bryanwahyu/scamshield/internal/application/scans"
	"github.com/bryanwahyu/scamshield/internal/application/source"
	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
	"github.com/bryanwahyu/scamshield/internal/middleware"
)

var scanCmd = &cobra.Command{
	Use:   "scan [text]",
	Short: "Assess a message or screenshot for scam risk",
	Long: `Classify a message and record it in the history.

Examples:
  scamshield scan "Your account is suspended, verify now"
  echo "You won a prize" | scamshield scan -
  scamshield scan --image screenshot.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringP("image", "i", "", "screenshot to extract the message from")
	scanCmd.Flags().Bool("json", false, "print the result as JSON")
}

func runScan(cmd *cobra.Command, args []string) error {
	imagePath, _ := cmd.Flags().GetString("image")
	asJSON, _ := cmd.Flags().GetBool("json")
	if imagePath != "" && len(args) > 0 {
		return errors.New("pass either text or --image, not both")
	}

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	scan := appscans.ScanCommand{Type: domain.TypeText}
	switch {
	case imagePath != "":
		text, err := extractImage(cmd, app.Scans, imagePath, app.Config.Extraction.MaxImageBytes)
		if err != nil {
			return err
		}
		scan = appscans.ScanCommand{Text: text, Type: domain.TypeImage}
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), middleware.MaxTextLen+1))
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		scan.Text = string(data)
	case len(args) == 1:
		scan.Text = args[0]
	default:
		return errors.New("nothing to scan: pass the message text, - for stdin, or --image")
	}
	if err := middleware.ValidateText(scan.Text); err != nil {
		return err
	}

	res, err := app.Scans.Scan(cmd.Context(), scan)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printResult(cmd.OutOrStdout(), scan.Text, res)
	return nil
}

// extractImage returns the screenshot's text. A failed extraction stops the
// scan: the terminal has no editable field to correct the placeholder in.
func extractImage(cmd *cobra.Command, svc *appscans.Service, path string, maxBytes int64) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	mimeType := http.DetectContentType(data)
	if err := middleware.ValidateImage(mimeType, int64(len(data)), maxBytes); err != nil {
		return "", err
	}
	ex := svc.Extract(cmd.Context(), data, mimeType)
	if ex.Status != source.StatusExtracted {
		fmt.Fprintln(cmd.ErrOrStderr(), ex.Text)
		return "", ex.Err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Extracted %d characters from %s\n", len(ex.Text), path)
	return ex.Text, nil
}

func printResult(w io.Writer, text string, res appscans.ScanResult) {
	r := res.Result
	fmt.Fprintf(w, "%s %s\n", levelStyle(r.RiskLevel).Render(fmt.Sprintf("%s (%d)", r.RiskLevel.Label(), r.Score)),
		dimStyle.Render(r.RiskLevel.Description()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, markPhrases(strings.TrimSpace(text), r.Highlights))
	fmt.Fprintln(w)

	if len(r.Explanation) > 0 {
		fmt.Fprintln(w, headingStyle.Render("Why"))
		for _, line := range r.Explanation {
			fmt.Fprintf(w, "  - %s\n", line)
		}
	}
	fmt.Fprintln(w, headingStyle.Render("What to do"))
	for _, a := range r.Actions {
		fmt.Fprintf(w, "  - %s\n", a)
	}
	if res.Record.ID != "" {
		fmt.Fprintln(w, dimStyle.Render("saved as "+res.Record.ID))
	}
}
