package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/corvane/pilot/pkg/pilot"
)

func newRootCmd(cfg *cliConfig, log *logrus.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "pilot",
		Short:         "Drive a Chrome/Chromium instance over the DevTools protocol",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "CDP endpoint (http(s):// or ws(s)://)")

	root.AddCommand(newOpenCmd(cfg, log))
	root.AddCommand(newTraceCmd(cfg, log))
	return root
}

func connect(ctx context.Context, cfg *cliConfig, log *logrus.Logger) (*pilot.Browser, error) {
	return pilot.Connect(ctx, cfg.Endpoint,
		pilot.WithLogger(logrus.NewEntry(log)),
		pilot.WithEndpointDiscoveryTimeout(cfg.EndpointDiscoveryTimeout),
	)
}

func newOpenCmd(cfg *cliConfig, log *logrus.Logger) *cobra.Command {
	var waitUntil string
	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Open a URL in a fresh page and print its final address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			b, err := connect(ctx, cfg, log)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer b.Close()

			page, err := b.DefaultContext().NewPage(ctx)
			if err != nil {
				return fmt.Errorf("new page: %w", err)
			}
			defer page.Close(ctx)

			if err := page.Goto(ctx, args[0], pilot.WithWaitUntil(waitUntil)); err != nil {
				return fmt.Errorf("goto %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), page.URL())
			return nil
		},
	}
	cmd.Flags().StringVar(&waitUntil, "wait-until", "load", "lifecycle event to wait for: load, domcontentloaded, networkidle")
	return cmd
}

func newTraceCmd(cfg *cliConfig, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <url> <out.json>",
		Short: "Record a Chrome trace while loading a URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			b, err := connect(ctx, cfg, log)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer b.Close()

			bc := b.DefaultContext()
			page, err := bc.NewPage(ctx)
			if err != nil {
				return fmt.Errorf("new page: %w", err)
			}
			defer page.Close(ctx)

			tracing := bc.Tracing()
			if err := tracing.Start(ctx); err != nil {
				return fmt.Errorf("start tracing: %w", err)
			}
			if err := page.Goto(ctx, args[0]); err != nil {
				return fmt.Errorf("goto %s: %w", args[0], err)
			}
			trace, err := tracing.Stop(ctx)
			if err != nil {
				return fmt.Errorf("stop tracing: %w", err)
			}
			return os.WriteFile(args[1], trace, 0o644)
		},
	}
	return cmd
}
