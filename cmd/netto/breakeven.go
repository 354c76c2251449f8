package main

import (
	"fmt"

	"github.com/rgehrsitz/nettogo/internal/breakeven"
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func breakEvenCmd(opts *options) *cobra.Command {
	var (
		target     string
		scenarioID int
		sweepStep  string
	)

	cmd := &cobra.Command{
		Use:   "break-even [input-file]",
		Short: "Find the gross salary needed for a target net income",
		Long: `Find the monthly gross salary at which a scenario reaches a target net
income. Age, children and the additional KV rate are taken from the scenario.

Examples:
  netto break-even scenarios.yaml --target 2500
  netto break-even scenarios.yaml --target 2500 --scenario 2 --sweep 250
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetNet, err := decimal.NewFromString(target)
			if err != nil {
				return fmt.Errorf("invalid --target %q", target)
			}

			parser, err := opts.parser()
			if err != nil {
				return err
			}
			configData, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			collection, err := parser.Collection(configData)
			if err != nil {
				return err
			}
			base, ok := collection.Get(scenarioID)
			if !ok {
				return fmt.Errorf("scenario %d not found", scenarioID)
			}

			solver := breakeven.NewDefaultSolver(opts.engine(parser))
			result, err := solver.Solve(cmd.Context(), breakeven.OptimizationRequest{
				Base:        base,
				Constraints: breakeven.DefaultConstraints(targetNet),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.settings.Format == "json" {
				text, err := (&breakeven.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(out, text)
				return nil
			}

			formatter := &breakeven.TableFormatter{}
			fmt.Fprint(out, formatter.Format(result))

			if sweepStep != "" {
				return writeSweep(cmd, solver, formatter, base, result, sweepStep)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Target monthly net income")
	cmd.Flags().IntVar(&scenarioID, "scenario", 1, "Id of the scenario to solve for")
	cmd.Flags().StringVar(&sweepStep, "sweep", "", "Also print net income in steps of this size around the result")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// writeSweep prints five steps below and above the required gross
func writeSweep(cmd *cobra.Command, solver *breakeven.Solver, formatter *breakeven.TableFormatter, base domain.Scenario, result *breakeven.OptimizationResult, stepFlag string) error {
	step, err := decimal.NewFromString(stepFlag)
	if err != nil || !step.IsPositive() {
		return fmt.Errorf("invalid --sweep %q", stepFlag)
	}

	center := result.RequiredGross.Div(step).Round(0).Mul(step)
	from := decimal.Max(decimal.Zero, center.Sub(step.Mul(decimal.NewFromInt(5))))
	to := center.Add(step.Mul(decimal.NewFromInt(5)))

	points, err := solver.Sweep(cmd.Context(), base, from, to, step)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSweep(points))
	return nil
}
