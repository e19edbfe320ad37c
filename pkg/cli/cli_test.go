package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/defectdash/pkg/cli"
	"github.com/secmon-lab/defectdash/pkg/domain/metrics"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := cli.RunWithWriter(context.Background(), append([]string{"defectdash", "--log-level", "error"}, args...), &buf)
	return buf.String(), err
}

func TestReportCommand(t *testing.T) {
	t.Run("text for one project", func(t *testing.T) {
		out, err := runCLI(t, "report", "--project", "Defect Tracker")
		gt.NoError(t, err).Required()

		gt.S(t, out).Contains("Defect Tracker (High Risk)")
		gt.S(t, out).Contains("Total defects:       75")
		gt.S(t, out).Contains("5.00 per KLOC (Medium)")
		gt.S(t, out).Contains("1.73 (58%, Medium)")
		gt.S(t, out).Contains("62.50% (75 defects, 45 remarks, High)")
		gt.S(t, out).Contains("Reopened / fixed:    10 / 46")
		gt.S(t, out).Contains("Functionality 30, UI 19, Usability 11, Validation 15")
		gt.S(t, out).Contains("API 9")
		gt.S(t, out).Contains("Time to find / fix:  24.5h / 18.2h")
		gt.S(t, out).Contains("Found per day:       2 3 1 4 2 3 2 1 2 1")
		gt.S(t, out).Contains("Fixed per day:       3 2 4 3 2 3 2 1 2 2")
		gt.S(t, out).Contains("Reopened 2+ times:   8 (2x 5 (83.3%), 4x 1 (16.7%))")
	})

	t.Run("json for all projects", func(t *testing.T) {
		out, err := runCLI(t, "report", "--format", "json")
		gt.NoError(t, err).Required()

		var reports []metrics.Report
		gt.NoError(t, json.Unmarshal([]byte(out), &reports)).Required()
		gt.A(t, reports).Length(5)
		gt.Equal(t, string(reports[0].Project), "API Integration")
	})

	t.Run("metrics flags", func(t *testing.T) {
		out, err := runCLI(t, "report", "-p", "Defect Tracker", "--lines-of-code", "75000", "--remark-count", "0")
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("1.00 per KLOC (Low)")
		gt.S(t, out).Contains("100.00%")
	})

	t.Run("timing flags", func(t *testing.T) {
		out, err := runCLI(t, "report", "-p", "Defect Tracker", "--avg-time-to-find", "30", "--avg-time-to-fix", "7.25", "--multiple-reopens", "2")
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("Time to find / fix:  30h / 7.25h")
		gt.S(t, out).Contains("Reopened 2+ times:   2 (")
	})

	t.Run("custom dataset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dataset.yaml")
		gt.NoError(t, os.WriteFile(path, []byte(`
projects:
  - name: Empty
    risk: low
`), 0600)).Required()

		out, err := runCLI(t, "report", "--dataset", path, "-p", "Empty")
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("Total defects:       0")
		gt.S(t, out).Contains("0.00 per KLOC (Low)")
		gt.S(t, out).Contains("no defects")
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := runCLI(t, "report", "-p", "Nonexistent")
		gt.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := runCLI(t, "report", "--format", "xml")
		gt.Error(t, err)
	})

	t.Run("post-slack without configuration", func(t *testing.T) {
		_, err := runCLI(t, "report", "-p", "Defect Tracker", "--post-slack")
		gt.Error(t, err)
	})
}

func TestNotificationsCommand(t *testing.T) {
	t.Run("default listing", func(t *testing.T) {
		out, err := runCLI(t, "notifications")
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("Notifications (2 unread)")
		gt.S(t, out).Contains("* [error] High Priority Defect (5m ago) id=1")
		gt.S(t, out).Contains("  [warning] System Maintenance (3d ago) id=5")
	})

	t.Run("limit", func(t *testing.T) {
		out, err := runCLI(t, "notifications", "--limit", "1")
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("High Priority Defect")
		gt.S(t, out).NotContains("Defect Fixed")
	})

	t.Run("mark all read", func(t *testing.T) {
		out, err := runCLI(t, "notifications", "--mark-all-read")
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("Notifications (0 unread)")
	})

	t.Run("mark one read", func(t *testing.T) {
		out, err := runCLI(t, "notifications", "--mark-read", "2")
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("Notifications (1 unread)")
	})

	t.Run("mark unknown id", func(t *testing.T) {
		_, err := runCLI(t, "notifications", "--mark-read", "missing")
		gt.Error(t, err)
	})
}
