package main

import (
	"strings"

	"github.com/Veraticus/deslop/internal/config"
	"github.com/Veraticus/deslop/internal/tui"
	"github.com/Veraticus/deslop/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func interactiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive [text...]",
		Aliases: []string{"i", "tui"},
		Short:   "Check a post as you type",
		Long: `Open a live checker. The score, highlighted matches and suggestions update
shortly after you stop typing. Sensitivity and category toggles can be
changed from the keyboard; press F1 for the key list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.cleanup()

			themeName, _ := cmd.Flags().GetString("theme")
			if !cmd.Flags().Changed("theme") {
				themeName = viper.GetString(config.KeyTheme)
			}

			opts := []tui.Option{
				tui.WithClassifier(s.classifier),
				tui.WithConfiguration(s.cfg),
				tui.WithTheme(themes.ByName(themeName)),
			}
			if len(args) > 0 {
				opts = append(opts, tui.WithText(strings.Join(args, " ")))
			}
			return tui.Run(cmd.Context(), opts...)
		},
	}
	addClassificationFlags(cmd)
	cmd.Flags().String("theme", "default", "color theme (default, catppuccin)")
	return cmd
}
