package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/deslop/internal/cli"
	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/suggestion"
	"github.com/spf13/cobra"
)

func phrasebookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phrasebook",
		Short: "Browse and practice slop phrases and their plainer wording",
	}
	cmd.AddCommand(phrasebookListCmd(), phrasebookSpinCmd(), phrasebookStatsCmd())
	return cmd
}

func phrasebookListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List phrasebook entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tierFlag, _ := cmd.Flags().GetString("tier")
			search, _ := cmd.Flags().GetString("search")

			tier := model.CategoryName(strings.ToLower(strings.TrimSpace(tierFlag)))
			if tier != "" && suggestion.TierLabel(tier) == string(tier) {
				return common.NewUserError(
					fmt.Sprintf("unknown phrasebook tier %q", tierFlag), common.ErrInvalidConfig)
			}

			entries := suggestion.Filter(tier, search)
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No phrases match."))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Slop"),
				cli.BoldStyle.Render("Better"),
				cli.BoldStyle.Render("Tier"))
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Slop, e.Better, suggestion.TierLabel(e.Tier))
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to flush table writer: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringP("tier", "t", "", "only show one tier (tier1, tier2, tier3, stopwords, emdash)")
	cmd.Flags().String("search", "", "only show phrases containing this text")
	return cmd
}

func phrasebookSpinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Pick a random phrase to practice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			seed, _ := cmd.Flags().GetUint64("seed")
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			entry := suggestion.Spin(rand.New(rand.NewPCG(seed, seed>>1)))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.RenderBox(suggestion.TierLabel(entry.Tier),
				fmt.Sprintf("%s %s\n%s %s",
					cli.ErrorStyle.Render("Instead of:"), entry.Slop,
					cli.SuccessStyle.Render("Try:"), entry.Better)))

			learn, _ := cmd.Flags().GetBool("learn")
			store, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := store.RecordSpin(ctx, entry.Slop, learn); err != nil {
				return err
			}
			if learn {
				fmt.Fprintln(out, cli.FormatSuccess("Marked as learned"))
			}
			return nil
		},
	}
	cmd.Flags().Bool("learn", false, "mark the phrase as learned")
	cmd.Flags().Uint64("seed", 0, "random seed (default: time based)")
	return cmd
}

func phrasebookStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show practice progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := store.GetPhrasebookStats(ctx)
			if err != nil {
				return err
			}
			learned, err := store.GetLearned(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			total := len(suggestion.Phrasebook())
			fmt.Fprintf(out, "Spins:   %d\n", stats.Spins)
			fmt.Fprintf(out, "Learned: %d of %d\n", stats.Learned, total)
			for _, l := range learned {
				fmt.Fprintf(out, "  %s %s\n", cli.SuccessIcon, l)
			}
			return nil
		},
	}
}
