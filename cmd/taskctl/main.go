package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "taskctl",
		Short:         "Manage personal tasks and projects from the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.user, "user", "u", defaultUser(), "Owner of the tasks")
	flags.StringVar(&opts.dbPath, "db", "", "SQLite database path (default from config)")
	flags.BoolVar(&opts.memory, "memory", false, "Use a throwaway in-memory store")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		viewCmd(opts, "today", "Pending tasks due today"),
		viewCmd(opts, "inbox", "Pending tasks without a project"),
		viewCmd(opts, "upcoming", "Pending tasks due today or later"),
		viewCmd(opts, "completed", "Completed tasks"),
		countsCmd(opts),
		addCmd(opts),
		editCmd(opts),
		doneCmd(opts),
		undoCmd(opts),
		rmCmd(opts),
		projectsCmd(opts),
		generateCmd(opts),
		calendarAuthCmd(),
	)
	return rootCmd
}

func defaultUser() string {
	if u := os.Getenv("TASKCTL_USER"); u != "" {
		return u
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
