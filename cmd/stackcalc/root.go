package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-state/logger"
	"github.com/amp-labs/amp-state/rpn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix      = "STACKCALC"
	defaultWorkers = 4
)

func newRootCommand(v *viper.Viper) *cobra.Command {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "stackcalc",
		Short:         "Evaluate reverse-Polish expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logger.ParseLevel(v.GetString("log-level"))
			if err != nil {
				return err
			}

			logger.ConfigureLoggingWithOptions(logger.Options{
				Subsystem: "stackcalc",
				JSON:      v.GetBool("log-json"),
				MinLevel:  level,
				Output:    cmd.ErrOrStderr(),
			})

			return nil
		},
	}

	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")
	root.PersistentFlags().String("log-level", "info", "minimum log level (debug, info, warn, error)")
	_ = v.BindPFlags(root.PersistentFlags())

	root.AddCommand(newEvalCommand(), newBatchCommand(v))

	return root
}

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR [VALUE...]",
		Short: "Evaluate one expression; VALUEs form the initial stack, top first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, err := parseStack(args[1:])
			if err != nil {
				return err
			}

			res, err := rpn.NewEvaluator().Evaluate(cmd.Context(), args[0], initial)
			if err != nil {
				logger.Get(cmd.Context()).Error("Evaluation failed", "error", err)

				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatStack(res.Stack))

			return err
		},
	}
}

func newBatchCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate every program in a YAML file and print the results as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := v.GetString("file")
			if path == "" {
				return errMissingFile
			}

			defs, err := rpn.LoadFile(path)
			if err != nil {
				return err
			}

			eval := rpn.NewEvaluator(rpn.WithWorkers(v.GetInt("workers")))
			results := eval.EvaluateAll(cmd.Context(), defs)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer func() {
				_ = enc.Close()
			}()

			if err := enc.Encode(map[string]any{"results": results}); err != nil {
				return err
			}

			for _, res := range results {
				if res.Err != nil {
					return errBatchFailed
				}
			}

			return nil
		},
	}

	cmd.Flags().String("file", "", "path to the program file")
	cmd.Flags().Int("workers", defaultWorkers, "programs evaluated at once")
	_ = v.BindPFlags(cmd.Flags())

	return cmd
}

func parseStack(values []string) (rpn.Machine, error) {
	out := make(rpn.Machine, 0, len(values))

	for _, raw := range values {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidValue, raw)
		}

		out = append(out, n)
	}

	return out, nil
}

func formatStack(m rpn.Machine) string {
	parts := make([]string, len(m))
	for i, n := range m {
		parts[i] = strconv.FormatInt(n, 10)
	}

	return strings.Join(parts, " ")
}
