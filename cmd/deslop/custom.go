package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/Veraticus/deslop/internal/cli"
	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/pattern"
	"github.com/spf13/cobra"
)

func customCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "custom",
		Short: "Manage your own weighted patterns",
		Long: `Custom patterns are always active and score their own weight per match.
They use the /body/flags literal format.`,
	}

	cmd.AddCommand(customAddCmd())
	cmd.AddCommand(customListCmd())
	cmd.AddCommand(customRemoveCmd())

	return cmd
}

func customAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <pattern>",
		Short:   "Add a custom pattern",
		Example: `  deslop custom add '/\bthought leader\b/gi' --weight 4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			weight, _ := cmd.Flags().GetInt("weight")

			store, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			record, err := store.AddCustomPattern(ctx, model.CustomPattern{Pattern: args[0], Weight: weight})
			switch {
			case errors.Is(err, common.ErrDuplicateEntry):
				return common.NewUserError("that pattern is already stored", err)
			case errors.Is(err, common.ErrInvalidPattern), errors.Is(err, common.ErrInvalidWeight):
				return common.NewUserError("pattern rejected", err)
			case err != nil:
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				fmt.Sprintf("Added custom pattern #%d (%s, weight %d)", record.ID, record.Pattern, record.Weight)))
			return nil
		},
	}
	cmd.Flags().IntP("weight", "w", 3, "points per match")
	return cmd
}

func customListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom patterns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			records, err := store.GetCustomPatterns(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No custom patterns yet. Use 'deslop custom add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Pattern"),
				cli.BoldStyle.Render("Reads as"),
				cli.BoldStyle.Render("Weight"),
				cli.BoldStyle.Render("Added"))
			for _, r := range records {
				readable := r.Pattern
				if p, err := pattern.Parse(r.Pattern); err == nil {
					readable = pattern.Describe(p.Source)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", r.ID, r.Pattern, readable, r.Weight, r.CreatedAt.Format("2006-01-02"))
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to flush table writer: %w", err)
			}
			return nil
		},
	}
}

func customRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a custom pattern by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("invalid pattern ID %q", args[0]), err)
			}

			ctx := cmd.Context()
			store, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.DeleteCustomPattern(ctx, id); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("no custom pattern with ID %d", id), err)
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Removed custom pattern #%d", id)))
			return nil
		},
	}
}
