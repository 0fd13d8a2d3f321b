package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wellnesstips/internal/models"
	"wellnesstips/internal/tips"
)

const defaultTipsFile = "data/wellness_tips.json"

func newRootCmd() *cobra.Command {
	var (
		flagFile   string
		flagStrict bool
	)

	rootCmd := &cobra.Command{
		Use:           "tips",
		Short:         "Look up wellness tips by mood",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", defaultTipsFile, "Catalog file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Fail if the catalog cannot be loaded")

	load := func(cmd *cobra.Command) (*tips.Catalog, error) {
		catalog, err := tips.LoadOrEmpty(flagFile)
		if err != nil {
			if flagStrict {
				return nil, err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}
		return catalog, nil
	}

	rootCmd.AddCommand(newLookupCmd(load), newMoodsCmd(load))
	return rootCmd
}

type catalogLoader func(cmd *cobra.Command) (*tips.Catalog, error)

func newLookupCmd(load catalogLoader) *cobra.Command {
	var flagJSON bool

	cmd := &cobra.Command{
		Use:   "lookup <mood>",
		Short: "Print the tips for a mood",
		Long: `Print the tips for a mood, one per line.

Moods are matched case-insensitively. Unknown moods print the fallback tips.

Examples:
  tips lookup happy
  tips lookup "Stressed " --json
  tips lookup calm --file ./my_tips.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := load(cmd)
			if err != nil {
				return err
			}

			res := catalog.Resolve(args[0])
			out := cmd.OutOrStdout()

			if flagJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(models.TipsResponse{Mood: res.Mood, Tips: res.Tips})
			}

			_, err = fmt.Fprintln(out, strings.Join(res.Tips, "\n"))
			return err
		},
	}
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print the REST response shape as JSON")
	return cmd
}

func newMoodsCmd(load catalogLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "List the moods in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := load(cmd)
			if err != nil {
				return err
			}
			for _, mood := range catalog.Moods() {
				fmt.Fprintln(cmd.OutOrStdout(), mood)
			}
			return nil
		},
	}
}
