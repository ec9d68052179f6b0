package main

import (
	"context"
	"fmt"
	"time"

	"github.com/anoideaopen/methodhandles/core/logger"
	"github.com/anoideaopen/methodhandles/core/telemetry"
	"github.com/anoideaopen/methodhandles/internal/config"
	"github.com/anoideaopen/methodhandles/internal/demo"
	"github.com/anoideaopen/methodhandles/version"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "methodhandles",
		Short:         "Resolve and invoke handles to the constructors, methods, static functions and fields of a type",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if err = logger.Configure(cfg.LoggingLevel, cfg.LoggingFormat); err != nil {
				return err
			}

			shutdown, err := telemetry.InstallTraceProvider(cmd.Context(), cfg.CollectorEndpoint, cfg.ServiceName)
			if err != nil {
				logger.Logger().WithError(err).Warn("tracing is disabled")
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Logger().WithError(err).Warn("shutting down trace provider")
				}
			}()

			return demo.New(cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Describe())
		},
	}
}
