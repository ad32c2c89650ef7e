// Command hpp-util inspects an hpp-util installation: compiled version,
// version compatibility and logging locations.
package main

import (
	"fmt"
	"os"
	"strings"

	util "github.com/laas/hpp-util"
	"github.com/laas/hpp-util/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hpp-util",
		Short:        "Inspect the hpp-util diagnostic library",
		SilenceUsage: true,
	}
	root.AddCommand(newVersionCmd(), newCheckCmd(), newPrefixCmd(), newLogCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the compiled library version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), util.Version)
			return err
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <version>",
		Short: "Check that the library is compatible with a required version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch util.CheckVersion(args[0]) {
			case 0:
				fmt.Fprintf(cmd.OutOrStdout(), "library %s matches %s\n", util.Version, args[0])
			case 1:
				fmt.Fprintf(cmd.OutOrStdout(), "library %s is newer than %s\n", util.Version, args[0])
			default:
				return fmt.Errorf("library %s is older than required version %s", util.Version, args[0])
			}
			return nil
		},
	}
}

func newPrefixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefix [package]",
		Short: "Print the logging prefix of a package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := logging.JournalPackage
			if len(args) == 1 {
				pkg = args[0]
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), logging.GetPrefix(pkg))
			return err
		},
	}
}

func newLogCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "log <channel> <message...>",
		Short: "Write a message to one of the default channels",
		Long: "Write a message to one of the default channels " +
			"(ERROR, WARNING, NOTICE, INFO, BENCHMARK) and print the journal path.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := logging.DefaultConfig()
			logging.ConfigFromEnv(&cfg)
			cfg.Dir = dir
			cfg.Console = cmd.ErrOrStderr()

			svc, err := logging.NewService(cfg)
			if err != nil {
				return err
			}
			defer svc.Close()

			label := strings.ToUpper(args[0])
			ch, ok := svc.ChannelByLabel(label)
			if !ok {
				return fmt.Errorf("unknown channel %q", args[0])
			}
			if err := ch.Printf("%s", strings.Join(args[1:], " ")); err != nil {
				return err
			}

			journal := svc.Journal
			if ch == svc.Benchmark {
				journal = svc.BenchmarkJournal
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), journal.Filename())
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "journal directory (default: the logging prefix)")
	return cmd
}
