// Package main is the conformance command line tool. It registers the
// built-in software provider, runs the declared conformance table against
// a selected provider and reports the results.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stevenspiel/cryptography/conformance"
	"github.com/stevenspiel/cryptography/provider"
	"github.com/stevenspiel/cryptography/provider/software"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := provider.Register(software.New()); err != nil {
		return fmt.Errorf("failed to register software provider: %w", err)
	}

	rootCmd := &cobra.Command{
		Use:   "conformance",
		Short: "Cryptography provider conformance harness",
		Long: `conformance runs per-algorithm conformance suites against a pluggable
cryptography provider. Suites check known-answer vectors, independent
oracles and algebraic properties for AEADs, block and stream ciphers,
hashes, key exchange, signatures, key derivation and MACs.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newListCommand())
	return rootCmd.Execute()
}

func newRunCommand() *cobra.Command {
	var (
		providerName string
		suiteName    string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the conformance suites against a provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			p, err := provider.Get(providerName)
			if err != nil {
				return err
			}

			opts := []conformance.Option{
				conformance.WithProvider(p),
				conformance.WithLogger(log),
			}
			if suiteName != "" {
				opts = append(opts, conformance.WithSuite(suiteName))
			}

			report, err := conformance.RunAll(opts...)
			if err != nil {
				return err
			}

			for _, failure := range report.Failures() {
				log.WithFields(logrus.Fields{
					"suite": failure.Suite,
					"case":  failure.Case,
				}).Error(failure.Detail)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
			if report.Failed() {
				return fmt.Errorf("conformance run failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&providerName, "provider", software.ProviderName, "provider to exercise")
	cmd.Flags().StringVar(&suiteName, "suite", "", "run only the named suite")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every case, not just failures")
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered providers and the declared suite order",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Providers:")
			for _, name := range provider.Names() {
				p, err := provider.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %s (%d algorithms)\n", name, len(p.Algorithms()))
			}

			fmt.Fprintln(out, "Suites (declared order):")
			for _, s := range conformance.Suites() {
				status := ""
				if !s.Enabled {
					status = " [disabled]"
				}
				fmt.Fprintf(out, "  %-12s %-14s %v%s\n", s.Name, s.Family, s.Algorithms, status)
			}
			return nil
		},
	}
}
