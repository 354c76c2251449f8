package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/nettogo/internal/compare"
	"github.com/rgehrsitz/nettogo/internal/scenario"
	"github.com/rgehrsitz/nettogo/internal/transform"
	"github.com/spf13/cobra"
)

func compareCmd(opts *options) *cobra.Command {
	var (
		baseID     int
		transforms []string
		templates  []string
	)

	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare scenarios against a base scenario",
		Long: `Compare the net income and deductions of every scenario in a file against
one base scenario. Scenario ids follow the order of the file, starting at 1.

Variants of the base scenario can be added with --transform, a chain of
"name:key=value,..." steps separated by ";", or with a built-in --template.
Variants are numbered after the scenarios of the file.

Transforms: `+strings.Join(transform.NewTransformRegistry().List(), ", ")+`
Templates:  `+strings.Join(transform.CreateBuiltInTemplates().List(), ", ")+`

Examples:
  netto compare scenarios.yaml --base 1
  netto compare scenarios.yaml --base 2 --format csv
  netto compare scenarios.yaml --transform "raise_gross:percent=5;set_children:children=yes"
  netto compare scenarios.yaml --template raise_10pct --template first_child
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]

			parser, err := opts.parser()
			if err != nil {
				return err
			}
			configData, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}
			collection, err := parser.Collection(configData)
			if err != nil {
				return err
			}

			if err := addVariants(collection, baseID, transforms, templates); err != nil {
				return err
			}

			compareEngine := compare.NewCompareEngine(opts.engine(parser))
			comparisonSet, err := compareEngine.CompareScenarios(collection.List(), baseID)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			comparisonSet.ConfigPath = inputFile

			out := cmd.OutOrStdout()
			switch opts.settings.Format {
			case "csv":
				formatter := &compare.CSVFormatter{}
				text, err := formatter.Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, text)

			case "json":
				formatter := &compare.JSONFormatter{Pretty: true}
				text, err := formatter.Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(out, text)

			case "compact":
				formatter := &compare.TableFormatter{}
				fmt.Fprintln(out, formatter.FormatCompact(comparisonSet))

			default:
				formatter := &compare.TableFormatter{}
				fmt.Fprint(out, formatter.Format(comparisonSet))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&baseID, "base", 1, "Id of the base scenario")
	cmd.Flags().StringArrayVar(&transforms, "transform", nil, "Add a variant of the base built from a transform chain (repeatable)")
	cmd.Flags().StringArrayVar(&templates, "template", nil, "Add a variant of the base from a built-in template (repeatable)")
	return cmd
}

// addVariants appends one scenario per transform chain and per template,
// each derived from the base scenario
func addVariants(collection *scenario.Collection, baseID int, specs, templateNames []string) error {
	if len(specs) == 0 && len(templateNames) == 0 {
		return nil
	}
	base, ok := collection.Get(baseID)
	if !ok {
		return fmt.Errorf("comparison failed: base scenario %d not found", baseID)
	}

	var chains [][]transform.ScenarioTransform
	registry := transform.NewTransformRegistry()
	for _, spec := range specs {
		chain, err := registry.ParseTransformSpecs(spec)
		if err != nil {
			return err
		}
		chains = append(chains, chain)
	}
	builtIns := transform.CreateBuiltInTemplates()
	for _, name := range templateNames {
		tmpl, ok := builtIns.Get(name)
		if !ok {
			return fmt.Errorf("unknown template: %s (available: %s)", name, strings.Join(builtIns.List(), ", "))
		}
		chains = append(chains, tmpl.Transforms)
	}

	for _, chain := range chains {
		variant, err := transform.ApplyTransforms(base, chain)
		if err != nil {
			return err
		}
		if _, err := collection.Add(scenario.DraftOf(variant)); err != nil {
			return fmt.Errorf("variant %q: %w", transform.Describe(chain), err)
		}
	}
	return nil
}
