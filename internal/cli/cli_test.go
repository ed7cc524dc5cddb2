package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/me/jobseq/internal/config"
	"github.com/me/jobseq/internal/logging"
	"github.com/me/jobseq/internal/server"
	"github.com/me/jobseq/internal/store"
	"github.com/me/jobseq/pkg/model"
)

// startTestServer starts a server with an in-memory SQLite store and returns the URL.
func startTestServer(t *testing.T) string {
	t.Helper()
	srvLogger := logging.Discard()
	st, err := store.NewSQLiteStore(":memory:", srvLogger)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	srv := server.New(config.DefaultServerConfig(), st, srvLogger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts.URL
}

const referenceFile = `name: reference
jobs:
  - {id: a, deadline: 2, profit: 100}
  - {id: b, deadline: 1, profit: 19}
  - {id: c, deadline: 2, profit: 27}
  - {id: d, deadline: 1, profit: 25}
  - {id: e, deadline: 3, profit: 15}
`

func writeJobFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write job file: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestSolveCommand_Local(t *testing.T) {
	path := writeJobFile(t, referenceFile)

	out, err := runCLI(t, "solve", path)
	if err != nil {
		t.Fatalf("solve error: %v\noutput: %s", err, out)
	}
	for _, want := range []string{
		"Schedule: reference (5 jobs, 3 selected, 3 slots)",
		"SLOT",
		"Total profit: 142",
		"Dropped: b, d",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Run:") {
		t.Errorf("local solve should not print a run id:\n%s", out)
	}
}

func TestSolveCommand_JSON(t *testing.T) {
	path := writeJobFile(t, "- {id: x, deadline: 1, profit: 50}\n- {id: y, deadline: 2, profit: 60}\n- {id: z, deadline: 2, profit: 20}\n- {id: w, deadline: 3, profit: 30}\n")

	out, err := runCLI(t, "solve", path, "--output", "json", "--name", "renamed")
	if err != nil {
		t.Fatalf("solve error: %v\noutput: %s", err, out)
	}
	var run model.Run
	if err := json.Unmarshal([]byte(out), &run); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if run.Name != "renamed" {
		t.Errorf("name = %q, want renamed", run.Name)
	}
	if got := strings.Join(run.Schedule.Sequence, ","); got != "x,y,w" {
		t.Errorf("sequence = %s, want x,y,w", got)
	}
}

func TestSolveCommand_InvalidJobs(t *testing.T) {
	path := writeJobFile(t, "jobs:\n  - {id: a, deadline: 0, profit: 1}\n  - {id: a, deadline: 1, profit: 1}\n")

	out, err := runCLI(t, "solve", path)
	if err == nil {
		t.Fatalf("expected error, output: %s", out)
	}
	for _, want := range []string{"jobs[0].deadline", "jobs[1].id"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}

func TestSolveCommand_BadOutputFormat(t *testing.T) {
	path := writeJobFile(t, referenceFile)
	if _, err := runCLI(t, "solve", path, "-o", "xml"); err == nil {
		t.Fatal("expected error for unknown output format")
	}
}

func TestSolveCommand_MissingFile(t *testing.T) {
	if _, err := runCLI(t, "solve", filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func solveRemoteJSON(t *testing.T, url, path string) model.Run {
	t.Helper()
	out, err := runCLI(t, "--server", url, "solve", path, "--remote", "-o", "json")
	if err != nil {
		t.Fatalf("remote solve error: %v\noutput: %s", err, out)
	}
	var run model.Run
	if err := json.Unmarshal([]byte(out), &run); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	return run
}

func TestSolveCommand_Remote(t *testing.T) {
	url := startTestServer(t)
	path := writeJobFile(t, referenceFile)

	out, err := runCLI(t, "--server", url, "solve", path, "--remote")
	if err != nil {
		t.Fatalf("remote solve error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "Run: run_") {
		t.Errorf("expected run id in output:\n%s", out)
	}
	if !strings.Contains(out, "Total profit: 142") {
		t.Errorf("expected total profit in output:\n%s", out)
	}
}

func TestSolveCommand_RemoteValidation(t *testing.T) {
	url := startTestServer(t)
	path := writeJobFile(t, "jobs:\n  - {id: a, deadline: -1, profit: 1}\n")

	_, err := runCLI(t, "--server", url, "solve", path, "--remote")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "jobs[0].deadline") {
		t.Errorf("error = %v, want jobs[0].deadline detail", err)
	}
}

func TestRunsCommands(t *testing.T) {
	url := startTestServer(t)
	run := solveRemoteJSON(t, url, writeJobFile(t, referenceFile))

	out, err := runCLI(t, "--server", url, "runs", "list")
	if err != nil {
		t.Fatalf("runs list error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, run.ID) || !strings.Contains(out, "reference") {
		t.Errorf("runs list missing run:\n%s", out)
	}

	out, err = runCLI(t, "--server", url, "runs", "show", run.ID)
	if err != nil {
		t.Fatalf("runs show error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "Run: "+run.ID) || !strings.Contains(out, "Total profit: 142") {
		t.Errorf("runs show output:\n%s", out)
	}

	out, err = runCLI(t, "--server", url, "runs", "delete", run.ID)
	if err != nil {
		t.Fatalf("runs delete error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "deleted") {
		t.Errorf("runs delete output:\n%s", out)
	}

	_, err = runCLI(t, "--server", url, "runs", "show", run.ID)
	if err == nil || !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Errorf("show after delete error = %v, want NOT_FOUND", err)
	}
}

func TestRunsList_Empty(t *testing.T) {
	url := startTestServer(t)
	out, err := runCLI(t, "--server", url, "runs", "list")
	if err != nil {
		t.Fatalf("runs list error: %v", err)
	}
	if !strings.Contains(out, "No runs found.") {
		t.Errorf("output = %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "jobseq "+server.Version) {
		t.Errorf("output = %q", out)
	}
}
