// Package cli implements the cacheforge command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Output helpers.
	successIcon = color.New(color.FgGreen).Sprint("✓")
	warningIcon = color.New(color.FgYellow).Sprint("⚠")
	errorIcon   = color.New(color.FgRed).Sprint("✗")

	warning = color.New(color.FgYellow).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cacheforge",
		Short: "Analyze and optimize your agent's context utilization",
		Long: `Cacheforge analyzes agent workspaces for context window efficiency.

It estimates token usage across persistent context files, detects redundant
content, audits tool definitions for overhead and overlap, and compares
analysis snapshots over time.

Token estimates are approximate (~4 chars/token).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewAuditToolsCmd())
	rootCmd.AddCommand(NewReportCmd())
	rootCmd.AddCommand(NewCompareCmd())
	rootCmd.AddCommand(NewBalanceCmd())
	rootCmd.AddCommand(NewTenantCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cacheforge %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print error with hint if available
		if te, ok := err.(interface{ Hint() string }); ok {
			fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, err.Error())
			if hint := te.Hint(); hint != "" {
				fmt.Fprintf(os.Stderr, "  %s\n", dim(hint))
			}
		} else {
			fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, err.Error())
		}
		return err
	}
	return nil
}

// printSuccess prints a success message.
func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successIcon, fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warningIcon, fmt.Sprintf(format, args...))
}
