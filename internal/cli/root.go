// Package cli provides the command-line interface for todo.
package cli

import (
	"fmt"

	"github.com/runoshun/todo/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// annotationNoSeed marks commands that never touch the task store.
const annotationNoSeed = "todo/no-seed"

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for todo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var seedOpts app.SeedOptions

	root := &cobra.Command{
		Use:   "todo",
		Short: "Terminal task list",
		Long: `todo keeps a list of short tasks for the current session.

Running todo without a subcommand opens the interactive list. Tasks live in
memory only; use --sample or --seed to start from a prepared list.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if c.AppConfig != nil {
				for _, w := range c.AppConfig.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
				}
			}

			if skipSeed(cmd) {
				return nil
			}
			_, err := c.Seed(cmd.Context(), seedOpts)
			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().BoolVar(&seedOpts.Sample, "sample", false, "Start with the sample tasks")
	root.PersistentFlags().StringVar(&seedOpts.File, "seed", "", "Start with the tasks in a YAML file")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	progressCmd := newProgressCommand(c)
	progressCmd.GroupID = groupTask

	applyCmd := newApplyCommand(c)
	applyCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		listCmd,
		progressCmd,
		applyCmd,
		tuiCmd,
		configCmd,
	)

	return root
}

// skipSeed reports whether cmd or one of its parents opts out of seeding.
func skipSeed(cmd *cobra.Command) bool {
	for cur := cmd; cur != nil; cur = cur.Parent() {
		if _, ok := cur.Annotations[annotationNoSeed]; ok {
			return true
		}
	}
	return false
}
