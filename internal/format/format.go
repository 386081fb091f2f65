// Package format renders recipes for the non-interactive commands:
// a rounded table for people, or JSON, YAML and TOML for scripts.
package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/koji/internal/domain"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects an output encoding.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
	TOML  Format = "toml"
)

// Formats lists the supported formats in help order.
func Formats() []Format {
	return []Format{Table, JSON, YAML, TOML}
}

// ParseFormat accepts a format name in any case; "yml" is an alias for YAML.
// An empty name selects Table.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "table":
		return Table, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, name, formatNames())
}

func formatNames() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// tomlList wraps a list because TOML documents must be tables.
type tomlList struct {
	Recipes []domain.Recipe `toml:"recipes"`
}

// WriteList writes recipes to w in format f.
func WriteList(w io.Writer, f Format, recipes []domain.Recipe) error {
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	switch f {
	case Table:
		_, err := fmt.Fprintln(w, listTable(recipes))
		return err
	case TOML:
		return encode(w, f, tomlList{Recipes: recipes})
	default:
		return encode(w, f, recipes)
	}
}

// WriteRecipe writes one recipe to w in format f.
func WriteRecipe(w io.Writer, f Format, r domain.Recipe) error {
	if f == Table {
		_, err := io.WriteString(w, recipeText(r))
		return err
	}
	return encode(w, f, r)
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(v)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
}

func listTable(recipes []domain.Recipe) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "ID", "Title", "Time", "Serves", "Tags"})
	for i, r := range recipes {
		tw.AppendRow(table.Row{
			i + 1,
			r.ID,
			r.Title,
			strconv.Itoa(r.TotalMinutes()) + " min",
			r.Servings,
			strings.Join(r.Tags, ", "),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func recipeText(r domain.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", r.Title, r.ID)
	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n", r.Description)
	}
	fmt.Fprintf(&b, "Servings: %d  Prep: %d min  Cook: %d min\n", r.Servings, r.PrepMinutes, r.CookMinutes)
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}

	if len(r.Ingredients) > 0 {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"Qty", "Ingredient"})
		for _, ing := range r.Ingredients {
			tw.AppendRow(table.Row{ing.Qty, ing.Item})
		}
		b.WriteString("\n")
		b.WriteString(tw.Render())
		b.WriteString("\n")
	}

	if len(r.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for i, s := range r.Steps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
		}
	}
	return b.String()
}
