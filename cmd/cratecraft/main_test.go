package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(out, "cratecraft dev") {
		t.Errorf("expected output to contain 'cratecraft dev', got: %s", out)
	}
	if !strings.Contains(out, "commit: none") {
		t.Errorf("expected output to contain 'commit: none', got: %s", out)
	}
}

func TestVersionCmdWithCustomValues(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	Version, Commit, Date = "1.0.0", "abc123", "2026-01-01"
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(out, "cratecraft 1.0.0 (commit: abc123, built: 2026-01-01)") {
		t.Errorf("unexpected version output: %s", out)
	}
}

func TestRootCmdHelp(t *testing.T) {
	out, err := run(t, "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, sub := range []string{"optimize", "batch", "compare", "catalog", "serve", "version", "--log-level"} {
		if !strings.Contains(out, sub) {
			t.Errorf("expected help to mention %q", sub)
		}
	}
}

func TestOptimizeCmd_PrintsShortlist(t *testing.T) {
	out, err := run(t, "optimize", "--width", "40", "--height", "40", "--depth", "40")
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}
	if !strings.Contains(out, "20 designs evaluated, 1 shortlisted") {
		t.Errorf("unexpected summary: %s", out)
	}
	if !strings.Contains(out, "Price,Volume,Boards") {
		t.Errorf("expected the winning labels, got: %s", out)
	}
	if !strings.Contains(out, "43x43x43") {
		t.Errorf("expected outer dims 43x43x43, got: %s", out)
	}
}

func TestOptimizeCmd_JSON(t *testing.T) {
	cmd := newRootCmd()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"optimize", "--width", "85", "--height", "40", "--depth", "40", "--json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("optimize --json failed: %v", err)
	}

	var result struct {
		Designs []struct {
			ID string `json:"id"`
		} `json:"designs"`
		Shortlist struct {
			Entries []struct {
				Labels []string `json:"labels"`
			} `json:"entries"`
		} `json:"shortlist"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
	}
	if len(result.Designs) == 0 || len(result.Shortlist.Entries) == 0 {
		t.Errorf("expected designs and a shortlist, got %d / %d", len(result.Designs), len(result.Shortlist.Entries))
	}
}

func TestOptimizeCmd_InvalidCargoWarns(t *testing.T) {
	out, err := run(t, "optimize", "--width", "0", "--height", "40", "--depth", "40", "--pdf", filepath.Join(t.TempDir(), "x.pdf"))
	if err != nil {
		t.Fatalf("invalid cargo must not fail the command: %v", err)
	}
	if !strings.Contains(out, "0 shortlisted") || !strings.Contains(out, "warning:") {
		t.Errorf("expected an empty shortlist with a warning, got: %s", out)
	}
}

func TestOptimizeCmd_MissingFlag(t *testing.T) {
	if _, err := run(t, "optimize", "--width", "40"); err == nil {
		t.Fatal("expected error for missing required flags")
	}
}

func TestOptimizeCmd_WritesExports(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "report.pdf")
	xlsx := filepath.Join(dir, "report.xlsx")
	chart := filepath.Join(dir, "chart.html")
	labels := filepath.Join(dir, "labels.pdf")
	dxfDir := filepath.Join(dir, "dxf")

	_, err := run(t, "optimize", "--width", "85", "--height", "40", "--depth", "40",
		"--pdf", pdf, "--xlsx", xlsx, "--chart", chart, "--labels", labels, "--dxf-dir", dxfDir, "--log-level", "error")
	if err != nil {
		t.Fatalf("optimize with exports failed: %v", err)
	}

	for _, p := range []string{pdf, xlsx, chart, labels} {
		info, err := os.Stat(p)
		if err != nil {
			t.Errorf("%s not written: %v", filepath.Base(p), err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", filepath.Base(p))
		}
	}
	dxfs, err := filepath.Glob(filepath.Join(dxfDir, "*.dxf"))
	if err != nil || len(dxfs) == 0 {
		t.Errorf("expected DXF files in %s, got %v (%v)", dxfDir, dxfs, err)
	}
}

func TestOptimizeCmd_BadLogLevel(t *testing.T) {
	_, err := run(t, "optimize", "--width", "40", "--height", "40", "--depth", "40", "--log-level", "chatty")
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestBatchCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cargo.csv")
	data := "Label,Width,Height,Depth\nPump,40,40,40\nBroken,abc,1,1\nMotor,85,40,40\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	out, err := run(t, "batch", path, "--log-level", "error")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if !strings.Contains(out, "Pump") || !strings.Contains(out, "Motor") {
		t.Errorf("expected both valid rows in output, got: %s", out)
	}
	if !strings.Contains(out, "1 rows skipped") {
		t.Errorf("expected the broken row to be reported, got: %s", out)
	}
}

func TestBatchCmd_NothingImported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("Label,Width,Height,Depth\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := run(t, "batch", path); err == nil {
		t.Fatal("expected error when no rows import")
	}
}

func TestCompareCmd(t *testing.T) {
	out, err := run(t, "compare", "--width", "85", "--height", "40", "--depth", "40")
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	for _, want := range []string{"Current Catalog", "Seams 0.75 (half)", "Panels 0.75 thick (half)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestCatalogCmd(t *testing.T) {
	out, err := run(t, "catalog")
	if err != nil {
		t.Fatalf("catalog failed: %v", err)
	}
	for _, want := range []string{"board_40x24", "cube_price: 0.45", "max_fillers: 7"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestCatalogCmd_WriteAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if _, err := run(t, "catalog", "--out", path); err != nil {
		t.Fatalf("catalog --out failed: %v", err)
	}

	out, err := run(t, "optimize", "--config", path, "--width", "40", "--height", "40", "--depth", "40")
	if err != nil {
		t.Fatalf("optimize with written config failed: %v", err)
	}
	if !strings.Contains(out, "1 shortlisted") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := run(t, "catalog", "--config", "/nonexistent/cratecraft.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "load config")
	}
}

func TestServeCmd_DefaultAddr(t *testing.T) {
	cmd := newServeCmd(&rootOpts{})
	flag := cmd.Flags().Lookup("addr")
	if flag == nil {
		t.Fatal("--addr flag not found")
	}
	if flag.DefValue != ":8080" {
		t.Errorf("default addr = %q, want %q", flag.DefValue, ":8080")
	}
}

func TestFormatTiling(t *testing.T) {
	if got := formatTiling([]float64{40, 40, 5}); got != "40+40+5" {
		t.Errorf("formatTiling = %q", got)
	}
	if got := formatTiling(nil); got != "" {
		t.Errorf("formatTiling(nil) = %q", got)
	}
}
