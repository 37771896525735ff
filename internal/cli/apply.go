package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/idgen"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// intentScript is the YAML layout read by apply.
//
//	intents:
//	  - op: add
//	    text: Buy milk
//	  - op: toggle
//	    id: "@1"
type intentScript struct {
	Intents []domain.Intent `yaml:"intents"`
}

// newApplyCommand creates the apply command.
func newApplyCommand(c *app.Container) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "apply <intents.yaml>",
		Short: "Run a script of intents against the task list",
		Long: `Run a YAML list of intents through the same dispatcher the TUI uses,
printing each result and the final progress.

Each intent has an op (add, toggle, edit, delete, list, progress) and, as
the op requires, an id, text or filter. An id of "@N" refers to the task
created by the Nth intent of the script. Use "-" to read from stdin.

By default the first rejected intent stops the run. With --keep-going,
rejections are reported and the run continues; the command still fails.

Example script:
  intents:
    - op: add
      text: Buy milk
    - op: add
      text: Call mom
    - op: toggle
      id: "@1"
    - op: list
      filter: pending`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := readIntentScript(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return runIntents(cmd.Context(), cmd.OutOrStdout(), c, script.Intents, keepGoing)
		},
	}

	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "Continue after a rejected intent")

	return cmd
}

// readIntentScript decodes the script at path, or stdin for "-".
func readIntentScript(stdin io.Reader, path string) (*intentScript, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var script intentScript
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &script, nil
}

// runIntents dispatches each intent in order and prints the outcome.
func runIntents(ctx context.Context, w io.Writer, c *app.Container, intents []domain.Intent, keepGoing bool) error {
	d := c.Dispatcher()
	created := make(map[int]string, len(intents))
	failed := 0

	for i, in := range intents {
		n := i + 1
		op, err := domain.ParseOp(string(in.Op))
		if err == nil {
			in.Op = op
			in.ID, err = resolveRef(in.ID, created)
		}

		var res *usecase.DispatchResult
		if err == nil {
			res, err = d.Dispatch(ctx, in)
		}
		if err != nil {
			failed++
			_, _ = fmt.Fprintf(w, "%d\t%s\terror: %v\n", n, in.Op, err)
			if !keepGoing {
				return fmt.Errorf("intent #%d (%s): %w", n, in.Op, err)
			}
			continue
		}

		if res.Op == domain.OpAdd {
			created[n] = res.Task.ID
		}
		printDispatchResult(w, n, res, c.Clock, c.AppConfig.View.DateLayout)
	}

	out, err := c.ShowProgressUseCase().Execute(ctx, usecase.ShowProgressInput{})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	printProgress(w, out.Progress)

	if failed > 0 {
		return fmt.Errorf("%d of %d intents rejected", failed, len(intents))
	}
	return nil
}

// resolveRef maps "@N" to the ID of the task created by intent N.
func resolveRef(id string, created map[int]string) (string, error) {
	ref, ok := strings.CutPrefix(id, "@")
	if !ok {
		return id, nil
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return "", fmt.Errorf("invalid reference %q", id)
	}
	resolved, ok := created[n]
	if !ok {
		return "", fmt.Errorf("reference %q: intent #%d did not create a task", id, n)
	}
	return resolved, nil
}

// printDispatchResult prints one acknowledged intent.
func printDispatchResult(w io.Writer, n int, res *usecase.DispatchResult, clock domain.Clock, dateLayout string) {
	switch res.Op {
	case domain.OpAdd, domain.OpToggle, domain.OpEdit:
		state := "pending"
		if res.Task.Completed {
			state = "completed"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%q\n", n, res.Op, idgen.ShortID(res.Task.ID), state, res.Task.Text)
	case domain.OpDelete:
		result := "removed"
		if !res.Removed {
			result = "not found"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", n, res.Op, result)
	case domain.OpList:
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s (%d)\n", n, res.Op, res.Filter, len(res.Tasks))
		printTaskList(w, res.Tasks, res.Filter, clock, dateLayout)
	case domain.OpProgress:
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d%%\t%s\n", n, res.Op, res.Progress.Percentage, res.Progress.Message)
	}
}
