package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andyli/portfolio/internal/config"
	"github.com/andyli/portfolio/internal/content"
)

//nolint:gochecknoglobals // Cobra boilerplate
var skillsCategory string

//nolint:gochecknoglobals // Cobra boilerplate
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate the content catalog and print it as JSON",
	Long: `catalog loads the configured catalog (or the embedded one), validates it
and prints it as JSON. With --skills-category only the skills of that
category are printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig(getConfigFile())
		if err != nil {
			return err
		}

		catalog, err := content.Load(cfg.Content.Path)
		if err != nil {
			return err
		}

		var out any
		if skillsCategory != "" {
			category, ok := content.ParseSkillCategory(skillsCategory)
			if !ok {
				return errors.Errorf("unknown skill category %q (want one of %v)", skillsCategory, content.SkillCategories())
			}
			out = content.FilterSkills(catalog.Skills(), category)
		} else {
			out = map[string]any{
				"profile":     catalog.Profile(),
				"projects":    catalog.Projects(),
				"experiences": catalog.Experiences(),
				"skills":      content.GroupSkills(catalog.Skills()),
			}
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode catalog")
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	catalogCmd.Flags().StringVar(&skillsCategory, "skills-category", "", "only print skills of this category (Frontend, Backend, Design, Tools)")
	rootCmd.AddCommand(catalogCmd)
}
