package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/Veraticus/deslop/internal/cli"
	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/config"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/scan"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const maxPreview = 72

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <glob...|->",
		Short: "Scan files the way a page scanner scans posts",
		Long: `Scan documents matched by glob patterns (** is supported). Each document is
split into elements: paragraphs by default, or single lines in the youtube
context where titles and comments are one-liners. Elements shorter than the
minimum length are skipped, and nothing is scanned when --url is whitelisted.

The counts are saved to scan history.`,
		Example: `  deslop scan 'drafts/**/*.md'
  deslop scan comments.txt --context youtube --url https://www.youtube.com/watch?v=abc`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScan,
	}
	addClassificationFlags(cmd)
	cmd.Flags().String("url", "", "page URL the text came from, checked against the whitelist")
	cmd.Flags().Int("min-length", -1, "minimum element length (default from config)")
	cmd.Flags().Int("workers", 0, "concurrent scorers (default from config)")
	cmd.Flags().Bool("show-all", false, "list every element, not just flagged ones")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	docs, source, err := collectDocuments(cmd, args)
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.cleanup()

	settings := config.LoadScan(viper.GetViper())
	opts := scan.Options{
		Config:    s.cfg,
		MinLength: settings.MinLengthFor(s.cfg.Context),
		Workers:   settings.Workers,
	}
	opts.URL, _ = cmd.Flags().GetString("url")
	if n, _ := cmd.Flags().GetInt("min-length"); n >= 0 {
		opts.MinLength = n
	}
	if n, _ := cmd.Flags().GetInt("workers"); n > 0 {
		opts.Workers = n
	}

	total := 0
	for _, d := range docs {
		total += len(scan.Split(d, s.cfg.Context))
	}
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress && total > 0 {
		bar := cli.NewProgressBar(cmd.ErrOrStderr(), total, "Scanning elements...")
		opts.OnFinding = func(scan.Finding) { cli.Step(bar) }
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context(), true)
	defer handler.Stop()

	report, err := scan.Scan(ctx, s.classifier, source, docs, opts)
	if err != nil {
		if handler.WasInterrupted() {
			return nil
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if report.Whitelisted {
		fmt.Fprintln(out, cli.FormatInfo(opts.URL+" is whitelisted; nothing was scanned"))
	} else {
		showAll, _ := cmd.Flags().GetBool("show-all")
		if err := printFindings(out, report.Findings, showAll); err != nil {
			return err
		}
	}

	if err := s.store.SaveScanRun(cmd.Context(), &report.Run); err != nil {
		slog.Warn("Failed to save scan history", "error", err)
	}

	fmt.Fprintln(out, cli.RenderBox("Scan Complete", cli.FormatScanRun(report.Run)))
	return nil
}

// collectDocuments expands args into documents; "-" reads stdin.
func collectDocuments(cmd *cobra.Command, args []string) ([]scan.Document, string, error) {
	var docs []scan.Document
	var globs []string
	for _, a := range args {
		if a != "-" {
			globs = append(globs, a)
			continue
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		docs = append(docs, scan.Document{Path: "stdin", Text: string(data)})
	}

	paths, err := scan.Discover(globs)
	if err != nil {
		return nil, "", err
	}
	files, err := scan.LoadDocuments(paths)
	if err != nil {
		return nil, "", err
	}
	docs = append(docs, files...)

	if len(docs) == 0 {
		return nil, "", common.NewUserError("no files matched", errors.New("nothing to scan"))
	}

	source := args[0]
	if len(args) > 1 {
		source = fmt.Sprintf("%s (+%d more)", args[0], len(args)-1)
	}
	return docs, source, nil
}

func printFindings(out io.Writer, findings []scan.Finding, showAll bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := 0
	for _, f := range findings {
		if f.Skipped || (!showAll && f.Classification == model.Clean) {
			continue
		}
		rows++
		fmt.Fprintf(w, "%s:%d\t%d\t%s\t%s\n",
			f.Source, f.Index+1,
			f.Result.Total,
			cli.ClassificationStyle(f.Classification).Render(string(f.Classification)),
			preview(f.Text))
	}
	if rows == 0 {
		fmt.Fprintln(out, cli.FormatSuccess("No slop found."))
		return nil
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table writer: %w", err)
	}
	return nil
}

func preview(text string) string {
	r := []rune(text)
	for i, c := range r {
		if c == '\n' {
			r[i] = ' '
		}
	}
	if len(r) > maxPreview {
		return string(r[:maxPreview-3]) + "..."
	}
	return string(r)
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := store.GetScanRuns(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No scans yet. Use 'deslop scan' to run one."))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("When"),
				cli.BoldStyle.Render("Source"),
				cli.BoldStyle.Render("Sens"),
				cli.BoldStyle.Render("Clean"),
				cli.BoldStyle.Render("Borderline"),
				cli.BoldStyle.Render("Blocked"),
				cli.BoldStyle.Render("Skipped"))
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
					r.StartedAt.Local().Format("2006-01-02 15:04"),
					r.Source, r.Sensitivity, r.Clean, r.Borderline, r.Blocked, r.Skipped)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to flush table writer: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", 20, "number of scans to show")
	return cmd
}

