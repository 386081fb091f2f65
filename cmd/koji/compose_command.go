package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/koji/internal/domain"
	"github.com/hammamikhairi/koji/internal/editor"
	"github.com/hammamikhairi/koji/internal/format"
	"github.com/hammamikhairi/koji/internal/recipe"
)

var errComposeAborted = errors.New("compose cancelled")

func newComposeCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Create a recipe using an interactive form",
		Long: `Create a recipe using an interactive terminal form and print the
result after normalisation.

Ingredients go one per line as "qty | item" or just "item".
Blank numbers keep the defaults (1 serving, 5 min prep, 10 min cook).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.ParseFormat(output)
			if err != nil {
				return err
			}
			if !isTerminal(cmd.OutOrStdout()) {
				return errors.New("compose needs an interactive terminal")
			}
			log, closeLog, err := ctx.openLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			ed := editor.New(ctx.newStore(log.Named("store")), log.Named("editor"))
			blank := ed.OpenNew()

			form := recipe.FormFromRecipe(blank)
			if err := runComposeForm(&form); err != nil {
				if errors.Is(err, errComposeAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Recipe not saved.")
					return nil
				}
				return err
			}

			saved, ok, err := applyForm(ed, form)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "Nothing saved: a title is required.")
				return nil
			}
			return format.WriteRecipe(cmd.OutOrStdout(), f, saved)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(format.Table), "Output format: table, json, yaml or toml")
	return cmd
}

// applyForm copies every field into the open draft and saves it.
func applyForm(ed *editor.Session, form recipe.Form) (domain.Recipe, bool, error) {
	for _, field := range recipe.Fields() {
		if err := ed.Set(field, form.Get(field)); err != nil {
			return domain.Recipe{}, false, fmt.Errorf("set %s: %w", field, err)
		}
	}
	saved, ok := ed.Save()
	return saved, ok, nil
}

func validateWholeNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}

func runComposeForm(form *recipe.Form) error {
	var confirmed bool

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("Recipe name (required)").
				Placeholder("e.g., Miso Soup").
				Value(&form.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title is required")
					}
					return nil
				}),

			huh.NewText().
				Title("Description").
				Description("A line or two about the dish (optional)").
				CharLimit(2000).
				Value(&form.Description),

			huh.NewInput().
				Title("Tags").
				Description("Comma-separated (optional)").
				Placeholder("e.g., quick, vegetarian").
				Value(&form.Tags),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Servings").
				Value(&form.Servings).
				Validate(validateWholeNumber),

			huh.NewInput().
				Title("Prep minutes").
				Value(&form.PrepMinutes).
				Validate(validateWholeNumber),

			huh.NewInput().
				Title("Cook minutes").
				Value(&form.CookMinutes).
				Validate(validateWholeNumber),
		),

		huh.NewGroup(
			huh.NewText().
				Title("Ingredients").
				Description(`One per line: "qty | item" or just "item"`).
				Placeholder("150 g | Tofu\nSalt").
				CharLimit(5000).
				Value(&form.Ingredients),

			huh.NewText().
				Title("Steps").
				Description("One step per line").
				CharLimit(5000).
				Value(&form.Steps),

			huh.NewConfirm().
				Title("Save this recipe?").
				Affirmative("Save").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeDracula())

	if err := f.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errComposeAborted
		}
		return fmt.Errorf("form error: %w", err)
	}
	if !confirmed {
		return errComposeAborted
	}
	return nil
}
