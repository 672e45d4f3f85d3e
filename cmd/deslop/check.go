package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/deslop/internal/classification"
	"github.com/Veraticus/deslop/internal/cli"
	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/suggestion"
	"github.com/spf13/cobra"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [text|-]",
		Short: "Score text and show the per-category breakdown",
		Long: `Score text against the active pattern catalog. Prints the total, the
points contributed by each category and the resulting classification.

Reads from stdin when no text is given or the text is "-".`,
		Example: `  deslop score "Let's delve into this paradigm shift"
  pbpaste | deslop score --sensitivity 4`,
		RunE: runScore,
	}
	addClassificationFlags(cmd)
	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.cleanup()

	result, class := s.classifier.Evaluate(text, s.cfg)
	threshold := classification.Threshold(s.cfg.EffectiveSensitivity())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatScore(result.Total, threshold, class))
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.FormatBreakdown(result, s.classifier.Catalog()))
	return nil
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [text|-]",
		Short: "Classify text, highlight slop and suggest rewrites",
		Long: `Classify text and explain the verdict: the phrases that matched, a rewrite
suggestion for each, and advice for getting under the threshold.`,
		RunE: runCheck,
	}
	addClassificationFlags(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.cleanup()

	result, class := s.classifier.Evaluate(text, s.cfg)
	threshold := classification.Threshold(s.cfg.EffectiveSensitivity())
	matches := s.classifier.ResolveHighlightSpans(text, s.cfg)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatScore(result.Total, threshold, class))

	if len(matches) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.Highlight(text, matches))
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.BoldStyle.Render("Suggestions"))
		seen := make(map[string]bool)
		for _, m := range matches {
			key := suggestion.Normalize(m.Text)
			if seen[key] {
				continue
			}
			seen[key] = true
			fmt.Fprintf(out, "  %s %q → %s\n",
				cli.CategoryStyle(m.Category).Render(" "),
				m.Text,
				s.classifier.Suggest(m.Text, m.Category))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.BoldStyle.Render("Advice"))
	for _, line := range suggestion.Advice(result.Total, threshold, result) {
		fmt.Fprintf(out, "  • %s\n", line)
	}
	return nil
}

func highlightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highlight [text|-]",
		Short: "Render text with matched phrases highlighted",
		Long: `Render text with every non-overlapping match colored by category. Where
matches overlap, the one that starts first wins.`,
		RunE: runHighlight,
	}
	addClassificationFlags(cmd)
	cmd.Flags().Bool("spans", false, "print match offsets instead of colored text")
	return cmd
}

func runHighlight(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.cleanup()

	matches := s.classifier.ResolveHighlightSpans(text, s.cfg)
	out := cmd.OutOrStdout()

	if spans, _ := cmd.Flags().GetBool("spans"); spans {
		for _, m := range matches {
			fmt.Fprintf(out, "%d\t%d\t%s\t%q\n", m.Start, m.End, m.Category, m.Text)
		}
		return nil
	}

	fmt.Fprintln(out, cli.Highlight(text, matches))
	if len(matches) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.Legend(matches, s.classifier.Catalog()))
	}
	return nil
}

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <phrase>",
		Short: "Suggest a better alternative for a phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			phrase := strings.Join(args, " ")
			fmt.Fprintln(cmd.OutOrStdout(), suggestion.Suggest(phrase, model.CategoryName(category)))
			return nil
		},
	}
	cmd.Flags().StringP("category", "c", string(model.CategoryTier1), "category used for the fallback suggestion")
	return cmd
}

func thresholdsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thresholds <score>",
		Short: "Show whether a score passes at each sensitivity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("score must be an integer, got %q", args[0]), err)
			}
			current, _ := cmd.Flags().GetInt("sensitivity")
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatThresholds(score, current))
			return nil
		},
	}
	cmd.Flags().IntP("sensitivity", "s", model.DefaultSensitivity, "sensitivity to mark")
	return cmd
}
