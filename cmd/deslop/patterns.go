package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/Veraticus/deslop/internal/classification"
	"github.com/Veraticus/deslop/internal/cli"
	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/config"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/pattern"
	"github.com/spf13/cobra"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Inspect and override the pattern catalog",
		Long: `Inspect the pattern catalog, try out a pattern, and replace tier lists with
your own. Overrides use the /body/flags literal format, for example /\bsynergy\b/gi.`,
	}

	cmd.AddCommand(patternsListCmd())
	cmd.AddCommand(patternsTestCmd())
	cmd.AddCommand(patternsImportCmd())
	cmd.AddCommand(patternsExportCmd())
	cmd.AddCommand(patternsResetCmd())

	return cmd
}

func patternsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories and their patterns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.cleanup()

			category, _ := cmd.Flags().GetString("category")
			verbose, _ := cmd.Flags().GetBool("verbose")
			return listPatterns(cmd, s.classifier.Catalog(), s.cfg, model.CategoryName(category), verbose)
		},
	}
	addClassificationFlags(cmd)
	cmd.Flags().StringP("category", "c", "", "only show one category")
	cmd.Flags().BoolP("verbose", "v", false, "list every pattern")
	return cmd
}

func listPatterns(cmd *cobra.Command, catalog *classification.Catalog, cfg model.Configuration, only model.CategoryName, verbose bool) error {
	out := cmd.OutOrStdout()
	active := classification.ActiveCategories(cfg)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("Label"),
		cli.BoldStyle.Render("Weight"),
		cli.BoldStyle.Render("Patterns"),
		cli.BoldStyle.Render("Active"))

	for _, entry := range catalog.Entries() {
		if only != "" && entry.Name != only {
			continue
		}
		state := cli.SubtleStyle.Render("no")
		if slices.Contains(active, entry.Name) {
			state = cli.SuccessStyle.Render("yes")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", entry.Name, entry.Label, entry.Weight, len(entry.Patterns), state)
	}
	if only == "" || only == model.CategoryCustom {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", model.CategoryCustom, classification.CustomCategory.Label,
			"per rule", len(catalog.Custom()), cli.SuccessStyle.Render("yes"))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table writer: %w", err)
	}

	if verbose {
		for _, entry := range catalog.Entries() {
			if only != "" && entry.Name != only {
				continue
			}
			fmt.Fprintf(out, "\n%s\n", cli.CategoryStyle(entry.Name).Render(" "+entry.Label+" "))
			for _, p := range entry.Patterns {
				fmt.Fprintf(out, "  %-40s %s\n", pattern.Describe(p.Source), cli.SubtleStyle.Render(p.String()))
			}
		}
		if (only == "" || only == model.CategoryCustom) && len(catalog.Custom()) > 0 {
			fmt.Fprintf(out, "\n%s\n", cli.CategoryStyle(model.CategoryCustom).Render(" Custom "))
			for _, r := range catalog.Custom() {
				fmt.Fprintf(out, "  %-40s %s\n", pattern.Describe(r.Pattern.Source),
					cli.SubtleStyle.Render(fmt.Sprintf("%s (weight %d)", r.Pattern, r.Weight)))
			}
		}
	}

	for _, r := range catalog.Rejected() {
		fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("skipped %s pattern %s: %v", r.Category, r.Literal, r.Err)))
	}
	return nil
}

func patternsTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <pattern> <text>",
		Short: "Try a /body/flags pattern against text",
		Example: `  deslop patterns test '/\bsynergy\b/gi' "Synergy drives synergy"`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pattern.Parse(args[0])
			if err != nil {
				return common.NewUserError("pattern does not compile", err)
			}

			text := args[1]
			spans := p.FindAll(text)
			matches := make([]model.Match, 0, len(spans))
			for _, sp := range spans {
				if sp.Len() == 0 {
					continue
				}
				matches = append(matches, model.Match{
					Text:     text[sp.Start:sp.End],
					Category: model.CategoryCustom,
					Start:    sp.Start,
					End:      sp.End,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", cli.BoldStyle.Render("Pattern:"), pattern.Describe(p.Source))
			fmt.Fprintf(out, "%s %d\n", cli.BoldStyle.Render("Counted matches:"), p.Count(text))
			fmt.Fprintln(out, cli.Highlight(text, matches))
			return nil
		},
	}
}

func patternsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tier overrides and custom patterns from YAML or JSON",
		Long: `Import overrides from a file. Each tier list present in the file replaces
that tier's stored override; an empty list clears it. Custom patterns are added
alongside existing ones, skipping duplicates.

Entries that fail to compile are reported and skipped when the catalog loads.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			o, err := classification.ParseOverrides(data)
			if err != nil {
				return common.NewUserError("could not parse override file", err)
			}

			store, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tiers := []struct {
				list []string
				name model.CategoryName
			}{
				{name: model.CategoryTier1, list: o.Tier1},
				{name: model.CategoryTier2, list: o.Tier2},
				{name: model.CategoryTier3, list: o.Tier3},
			}
			out := cmd.OutOrStdout()
			for _, t := range tiers {
				if t.list == nil {
					continue
				}
				if err := store.ReplaceTierOverride(ctx, t.name, t.list); err != nil {
					return fmt.Errorf("failed to store %s override: %w", t.name, err)
				}
				fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%s: %d patterns", t.name, len(t.list))))
			}

			added := 0
			for _, cp := range o.Custom {
				if _, err := store.AddCustomPattern(ctx, cp); err != nil {
					if errors.Is(err, common.ErrDuplicateEntry) {
						slog.Debug("Custom pattern already stored", "pattern", cp.Pattern)
						continue
					}
					fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("skipped custom pattern %s: %v", cp.Pattern, err)))
					continue
				}
				added++
			}
			if len(o.Custom) > 0 {
				fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("custom: %d added", added)))
			}

			// Compile once so bad tier entries are reported now, not on the next check.
			for _, r := range classification.NewCatalog(o).Rejected() {
				if r.Category == model.CategoryCustom {
					continue
				}
				fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("%s pattern %s will be skipped: %v", r.Category, r.Literal, r.Err)))
			}
			return nil
		},
	}
}

func patternsExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export stored overrides as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var o classification.Overrides
			if builtin, _ := cmd.Flags().GetBool("builtin"); builtin {
				o = classification.BuiltinOverrides()
			} else {
				store, cleanup, err := getDatabase(ctx)
				if err != nil {
					return err
				}
				defer cleanup()

				if o, err = loadOverrides(ctx, store); err != nil {
					return err
				}
			}

			data, err := classification.MarshalOverrides(o)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(config.ExpandPath(args[0]), data, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Exported overrides to "+args[0]))
			return nil
		},
	}
	cmd.Flags().Bool("builtin", false, "export the built-in tier lists as a starting point")
	return cmd
}

func patternsResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop tier overrides and go back to the built-in patterns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.ClearTierOverrides(ctx); err != nil {
				return err
			}
			msg := "Tier overrides cleared"

			if all, _ := cmd.Flags().GetBool("custom"); all {
				if err := store.ClearCustomPatterns(ctx); err != nil {
					return err
				}
				msg += ", custom patterns removed"
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(msg))
			return nil
		},
	}
	cmd.Flags().Bool("custom", false, "also remove custom patterns")
	return cmd
}

