package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/me/jobseq/pkg/model"
	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect runs stored on the server",
	}
	cmd.AddCommand(newRunsListCmd(), newRunsShowCmd(), newRunsDeleteCmd())
	return cmd
}

func newRunsListCmd() *cobra.Command {
	var limit, offset int
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("limit", strconv.Itoa(limit))
			q.Set("offset", strconv.Itoa(offset))
			if name != "" {
				q.Set("name", name)
			}

			resp, err := client.Get(cmd.Context(), "/api/v1/runs/?"+q.Encode())
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			var data []model.RunSummary
			if err := json.Unmarshal(resp.Data, &data); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(data) == 0 {
				fmt.Fprintln(out, "No runs found.")
				return nil
			}

			fmt.Fprintf(out, "%-40s  %-20s  %-6s  %-8s  %-8s  %s\n", "ID", "NAME", "JOBS", "SELECTED", "PROFIT", "CREATED")
			fmt.Fprintf(out, "%-40s  %-20s  %-6s  %-8s  %-8s  %s\n", "--", "----", "----", "--------", "------", "-------")
			for _, r := range data {
				fmt.Fprintf(out, "%-40s  %-20s  %-6d  %-8d  %-8d  %s\n",
					r.ID, r.Name, r.JobCount, r.Selected, r.TotalProfit, r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
			}

			if resp.Pagination != nil && resp.Pagination.HasMore {
				fmt.Fprintf(out, "\n(%d of %d shown)\n", len(data), resp.Pagination.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show (max 100)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of runs to skip")
	cmd.Flags().StringVar(&name, "name", "", "Only runs with this name")
	return cmd
}

func newRunsShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <run_id>",
		Short: "Show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Get(cmd.Context(), "/api/v1/runs/"+url.PathEscape(args[0]))
			if err != nil {
				return fmt.Errorf("get run: %w", err)
			}

			var run model.Run
			if err := json.Unmarshal(resp.Data, &run); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			if output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(run)
			}
			printRun(cmd.OutOrStdout(), &run)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json)")
	return cmd
}

func newRunsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run_id>",
		Short: "Delete a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if _, err := client.Delete(cmd.Context(), "/api/v1/runs/"+url.PathEscape(id)); err != nil {
				return fmt.Errorf("delete run: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Run %s deleted\n", id)
			return nil
		},
	}
}
