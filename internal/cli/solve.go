package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/me/jobseq/internal/jobfile"
	"github.com/me/jobseq/internal/sequencing"
	"github.com/me/jobseq/pkg/model"
	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	var remote bool
	var output string
	var name string

	cmd := &cobra.Command{
		Use:   "solve <jobs.yaml>",
		Short: "Sequence a job file for maximum profit",
		Long: "Read jobs (id, deadline, profit) from a YAML or JSON file and print the selected\n" +
			"jobs in slot order. With --remote the job set is solved and stored by the server.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("unknown output format %q (want text or json)", output)
			}

			set, err := jobfile.Load(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				set.Name = name
			}
			logger.Debug("loaded job file", "path", args[0], "name", set.Name, "jobs", len(set.Jobs))

			var run *model.Run
			if remote {
				run, err = solveRemote(cmd, set)
			} else {
				run, err = solveLocal(set)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(run)
			}
			printRun(out, run)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Solve on the server and store the run")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json)")
	cmd.Flags().StringVar(&name, "name", "", "Override the job set name")
	return cmd
}

func solveLocal(set *jobfile.JobSet) (*model.Run, error) {
	sched, err := sequencing.Schedule(set.Jobs)
	var invalid *sequencing.InvalidInputError
	if errors.As(err, &invalid) {
		return nil, formatProblems("invalid job file", invalid.Problems)
	}
	if err != nil {
		return nil, err
	}
	return &model.Run{Name: set.Name, Jobs: set.Jobs, Schedule: *sched}, nil
}

func solveRemote(cmd *cobra.Command, set *jobfile.JobSet) (*model.Run, error) {
	resp, err := client.Post(cmd.Context(), "/api/v1/schedules", map[string]any{
		"name": set.Name,
		"jobs": set.Jobs,
	})
	var apiErr *model.APIError
	if errors.As(err, &apiErr) && len(apiErr.Details) > 0 {
		return nil, formatProblems(apiErr.Message, apiErr.Details)
	}
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	var run model.Run
	if err := json.Unmarshal(resp.Data, &run); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return &run, nil
}

// formatProblems folds field errors into one multi-line error.
func formatProblems(msg string, problems []model.FieldError) error {
	var b strings.Builder
	b.WriteString(msg)
	for _, p := range problems {
		b.WriteString("\n  ")
		b.WriteString(p.String())
	}
	return errors.New(b.String())
}

func printRun(w io.Writer, run *model.Run) {
	sched := run.Schedule
	if run.ID != "" {
		fmt.Fprintf(w, "Run: %s\n", run.ID)
	}
	fmt.Fprintf(w, "Schedule: %s (%d jobs, %d selected, %d slots)\n",
		run.Name, len(run.Jobs), len(sched.Sequence), sched.MaxDeadline)

	if len(sched.Slots) == 0 {
		fmt.Fprintln(w, "No jobs selected.")
		return
	}

	fmt.Fprintf(w, "%-6s  %-16s  %-8s  %s\n", "SLOT", "ID", "DEADLINE", "PROFIT")
	for _, a := range sched.Slots {
		fmt.Fprintf(w, "%-6d  %-16s  %-8d  %d\n", a.Slot, a.Job.ID, a.Job.Deadline, a.Job.Profit)
	}
	fmt.Fprintf(w, "Total profit: %d\n", sched.TotalProfit)
	if len(sched.Dropped) > 0 {
		fmt.Fprintf(w, "Dropped: %s\n", strings.Join(sched.Dropped, ", "))
	}
}
