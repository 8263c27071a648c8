package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/caves/core"
	"github.com/katalvlaran/caves/input"
	"github.com/katalvlaran/caves/paths"
)

var errNoInput = errors.New("no input file: pass one as argument or set input in the config")

func (a *app) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Count paths under both policies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph(args)
			if err != nil {
				return err
			}
			for i, policy := range []paths.Policy{paths.SingleVisit, paths.OneDuplicateAllowed} {
				n, err := a.count(g, policy)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Solution %d: %d\n", i+1, n)
			}
			return nil
		},
	}
}

func (a *app) countCmd() *cobra.Command {
	var policy string
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count paths under one policy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.policy(policy)
			if err != nil {
				return err
			}
			g, err := a.graph(args)
			if err != nil {
				return err
			}
			n, err := a.count(g, p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&policy, "policy", "p", "", "single or duplicate (overrides config)")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	var policy string
	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "Print every path, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.policy(policy)
			if err != nil {
				return err
			}
			g, err := a.graph(args)
			if err != nil {
				return err
			}
			opts, err := a.options()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			opts = append(opts, paths.WithOnComplete(func(path paths.Path) error {
				_, err := fmt.Fprintln(out, path)
				return err
			}))
			n, err := paths.Count(g, p, opts...)
			if err != nil {
				a.logger.Error("enumeration failed", zap.Error(err))
				return err
			}
			a.logger.Info("paths listed", zap.Stringer("policy", p), zap.Int("paths", n))
			return nil
		},
	}
	cmd.Flags().StringVarP(&policy, "policy", "p", "", "single or duplicate (overrides config)")
	return cmd
}

// graph resolves the input file and builds the cave graph.
func (a *app) graph(args []string) (*core.Graph, error) {
	path := a.cfg.Input
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errNoInput
	}
	g, err := input.LoadGraph(path)
	if err != nil {
		a.logger.Error("failed to load cave graph", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	a.logger.Debug("cave graph loaded", zap.String("path", path), zap.Int("caves", g.Len()))
	return g, nil
}

// policy parses the flag value, falling back to the configured policy.
func (a *app) policy(flag string) (paths.Policy, error) {
	if flag != "" {
		return paths.ParsePolicy(flag)
	}
	return a.cfg.PolicyValue()
}

func (a *app) options() ([]paths.Option, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	return append(opts, paths.WithLogger(a.logger)), nil
}

func (a *app) count(g *core.Graph, p paths.Policy) (int, error) {
	opts, err := a.options()
	if err != nil {
		return 0, err
	}
	n, err := paths.Count(g, p, opts...)
	if err != nil {
		a.logger.Error("enumeration failed", zap.Stringer("policy", p), zap.Error(err))
		return 0, err
	}
	return n, nil
}
