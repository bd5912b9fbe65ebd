// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/tensordiag/logx"
	"cogentcore.org/tensordiag/tensor"
	"github.com/jinzhu/copier"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type resolveOptions struct {
	config   string
	delim    string
	flags    Config
	vv, v, q bool
}

func newResolveCmd() *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve [flags]",
		Short: "Resolve a diagonal selector and print the selected values",
		Long: `Resolve builds a float64 tensor filled with 1..N in flat order,
resolves the diagonal selector given by the offsets against it,
logs the resolved index representation, and prints the selected values,
one row per line for multi-dimensional selections.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}
			delim, err := tensor.ParseDelims(opts.delim)
			if err != nil {
				return err
			}
			logx.UserLevel = logx.LevelFromFlags(opts.vv, opts.v, opts.q)
			logger := slog.New(logx.NewHandler(termenv.NewOutput(cmd.ErrOrStderr()), nil))
			return runResolve(cmd.OutOrStdout(), logger, cf, delim)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&opts.config, "config", "", "TOML config file; flags override its values")
	fs.Int64SliceVar(&opts.flags.Shape, "shape", nil, "size of each dimension (default 3,3)")
	fs.StringVar(&opts.flags.Order, "order", "row", "memory order (row|col)")
	fs.Int64Var(&opts.flags.Origin, "origin", 0, "first index of the tensor")
	fs.Int64SliceVar(&opts.flags.Offsets, "offsets", nil, "per-axis diagonal offsets (default main diagonal)")
	fs.BoolVar(&opts.flags.Transpose, "transpose", false, "resolve on a transposed (Cartesian) view")
	fs.StringVar(&opts.delim, "delim", "space", "delimiter between printed values (space|comma|tab)")
	fs.BoolVar(&opts.vv, "vv", false, "debug logging")
	fs.BoolVarP(&opts.v, "verbose", "v", false, "info logging")
	fs.BoolVarP(&opts.q, "quiet", "q", false, "only log errors")
	return cmd
}

// flagOverrides holds the flags set on the command line.
// Flags that were not set stay nil and are not copied.
type flagOverrides struct {
	Shape     []int64
	Order     *string
	Origin    *int64
	Offsets   []int64
	Transpose *bool
}

// resolveConfig returns the default config, updated from the config
// file if given, and then from any flags set on the command line.
func (opts *resolveOptions) resolveConfig(cmd *cobra.Command) (*Config, error) {
	cf := DefaultConfig()
	if opts.config != "" {
		if err := cf.Open(opts.config); err != nil {
			return nil, err
		}
	}
	fs := cmd.Flags()
	ov := flagOverrides{}
	if fs.Changed("shape") {
		ov.Shape = opts.flags.Shape
	}
	if fs.Changed("order") {
		ov.Order = &opts.flags.Order
	}
	if fs.Changed("origin") {
		ov.Origin = &opts.flags.Origin
	}
	if fs.Changed("offsets") {
		ov.Offsets = opts.flags.Offsets
	}
	if fs.Changed("transpose") {
		ov.Transpose = &opts.flags.Transpose
	}
	if err := copier.CopyWithOption(cf, &ov, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, fmt.Errorf("applying flags: %w", err)
	}
	return cf, nil
}

func runResolve(w io.Writer, logger *slog.Logger, cf *Config, delim tensor.Delims) error {
	tsr, err := cf.NewTensor()
	if err != nil {
		return err
	}
	sel, err := cf.Selector()
	if err != nil {
		return err
	}
	logger.Debug("tensor", "values", tensor.Sprintf(tsr, 0, ""))
	sl, err := tensor.Select(tsr, sel)
	if err != nil {
		return fmt.Errorf("resolve %v on %v: %w", sel, tsr.Shape(), err)
	}
	parts := make([]string, len(sl.Parts))
	for i, p := range sl.Parts {
		parts[i] = fmt.Sprint(p)
	}
	rng, flat := sl.IsFlat()
	logger.Info("resolved", "shape", tsr.Shape().String(), "addressing", tsr.Addressing().String(),
		"selector", fmt.Sprint(sel), "flat", flat, "parts", strings.Join(parts, ", "), "len", sl.Len())
	if flat && rng.Count > 0 {
		logger.Debug("range", "start", rng.Start, "step", rng.Step, "stop", rng.Stop())
	}
	if sl.Len() == 0 {
		logger.Warn("empty diagonal", "selector", fmt.Sprint(sel))
	}
	return tensor.WriteCSV(sl.Get(), w, delim)
}
