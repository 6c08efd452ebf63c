package main

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/internal/config"
	"github.com/g-m-twostay/go-bst/internal/playground"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	values     []int
	order      string
	deletes    []int
}

// load the config file and apply the flags that were set on cmd over it.
func (f *rootFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if cmd.Flags().Changed("values") {
		cfg.Values = f.values
	}
	if cmd.Flags().Changed("order") {
		cfg.Order = f.order
	}
	if cmd.Flags().Changed("delete") {
		cfg.Delete = f.deletes
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session built from the flags, logging to cmd's error stream.
func (f *rootFlags) session(cmd *cobra.Command, reg prometheus.Registerer) (*config.Config, *playground.Session, error) {
	cfg, err := f.load(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := playground.NewLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	s := playground.NewSession(log, playground.NewMetrics(reg))
	s.Insert(cfg.Values...)
	return cfg, s, nil
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "bst",
		Short:         "Build, walk and benchmark unbalanced binary search trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "YAML config file; flags override it")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().IntSliceVar(&f.values, "values", nil, "values to insert, in order (default 11,8,16,5,10,18)")
	cmd.PersistentFlags().StringVar(&f.order, "order", config.OrderAll, "traversal order (pre|in|post|bfs|all)")
	cmd.AddCommand(
		walkCmd(f),
		deleteCmd(f),
		showCmd(f),
		benchCmd(f),
		configCmd(f),
	)
	return cmd
}

func printTraversals(w io.Writer, cfg *config.Config, s *playground.Session) error {
	for _, order := range cfg.Orders() {
		vs, err := s.Traverse(order)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %v\n", order, vs)
	}
	return nil
}

func walkCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "walk",
		Short: "Print the traversals of the tree built from --values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := f.session(cmd, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			return printTraversals(cmd.OutOrStdout(), cfg, s)
		},
	}
}

func deleteCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete --delete values from the tree built from --values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := f.session(cmd, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range cfg.Delete {
				fmt.Fprintf(out, "delete %d: found=%v\n", v, s.Delete(v))
			}
			if err := printTraversals(out, cfg, s); err != nil {
				return err
			}
			return s.Tree().Render(out)
		},
	}
	cmd.Flags().IntSliceVar(&f.deletes, "delete", nil, "values to delete, in order")
	return cmd
}

func showCmd(f *rootFlags) *cobra.Command {
	var dot bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the tree built from --values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := f.session(cmd, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			if dot {
				return Trees.WriteDot(cmd.OutOrStdout(), s.Tree().Root())
			}
			return s.Tree().Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&dot, "dot", false, "write Graphviz DOT instead of text")
	return cmd
}

func benchCmd(f *rootFlags) *cobra.Command {
	var (
		ops         int
		seed        uint64
		showMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a seeded random insert/delete workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			cfg, s, err := f.session(cmd, reg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("ops") {
				cfg.Bench.Ops = ops
			}
			if cmd.Flags().Changed("seed") {
				cfg.Bench.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			res, err := s.Bench(cmd.Context(), cfg.Bench)
			if err != nil {
				return fmt.Errorf("bench stopped after %d ops: %w", res.Ops, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ops=%d size=%d height=%d elapsed=%s\n", res.Ops, res.Size, res.Height, res.Elapsed)
			if showMetrics {
				return printMetrics(out, reg)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&ops, "ops", 0, "number of operations (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print the collected metrics")
	return cmd
}

// printMetrics writes every metric family in reg in the Prometheus text format.
func printMetrics(w io.Writer, reg prometheus.Gatherer) error {
	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func configCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective config as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
