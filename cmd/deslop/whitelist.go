package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/deslop/internal/cli"
	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/config"
	"github.com/Veraticus/deslop/internal/whitelist"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func whitelistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelist",
		Short: "Manage sites that are never scanned",
		Long: `Whitelist entries are domains (example.com also covers blog.example.com) or
domain/path prefixes (example.com/blog). Entries from the config file and the
database are combined.`,
	}

	cmd.AddCommand(whitelistAddCmd())
	cmd.AddCommand(whitelistListCmd())
	cmd.AddCommand(whitelistRemoveCmd())
	cmd.AddCommand(whitelistCheckCmd())

	return cmd
}

func whitelistAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <entry>",
		Short: "Add a domain or domain/path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.AddWhitelistEntry(ctx, args[0]); err != nil {
				if errors.Is(err, common.ErrDuplicateEntry) {
					return common.NewUserError("already whitelisted", err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Whitelisted "+whitelist.NormalizeEntry(args[0])))
			return nil
		},
	}
}

func whitelistListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List whitelist entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			records, err := store.GetWhitelist(ctx)
			if err != nil {
				return err
			}
			fromConfig := config.Load(viper.GetViper()).Whitelist

			out := cmd.OutOrStdout()
			if len(records) == 0 && len(fromConfig) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("The whitelist is empty."))
				return nil
			}
			for _, r := range records {
				fmt.Fprintln(out, r.Entry)
			}
			for _, e := range fromConfig {
				fmt.Fprintf(out, "%s %s\n", e, cli.SubtleStyle.Render("(config)"))
			}
			return nil
		},
	}
}

func whitelistRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <entry>",
		Short: "Remove a stored entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.DeleteWhitelistEntry(ctx, args[0]); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(args[0]+" is not whitelisted", err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Removed "+whitelist.NormalizeEntry(args[0])))
			return nil
		},
	}
}

func whitelistCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <url>",
		Short: "Report whether a URL is whitelisted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.cleanup()

			out := cmd.OutOrStdout()
			if whitelist.IsWhitelisted(args[0], s.cfg.Whitelist) {
				fmt.Fprintln(out, cli.FormatSuccess(args[0]+" is whitelisted; it will not be scanned"))
				return nil
			}
			fmt.Fprintln(out, cli.FormatInfo(args[0]+" is not whitelisted"))
			return nil
		},
	}
}
