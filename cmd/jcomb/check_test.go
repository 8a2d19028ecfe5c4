package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "good.jsonc"), []byte("// ok\n[1]\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{\"a\": 1,}"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	failed, err := checkPath(dir, &out)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if failed != 1 {
		t.Errorf("failed: got %d, want 1", failed)
	}
	if !strings.Contains(out.String(), "bad.json:1:") {
		t.Errorf("output does not name the bad file: %q", out.String())
	}

	out.Reset()
	failed, err = checkPath(filepath.Join(dir, "good.jsonc"), &out)
	if err != nil || failed != 0 || out.Len() != 0 {
		t.Errorf("single good file: failed=%d err=%v out=%q", failed, err, out.String())
	}

	if _, err := checkPath(filepath.Join(dir, "missing.json"), &out); err == nil {
		t.Errorf("missing path did not fail")
	}
}

func TestOutputFormatFlag(t *testing.T) {
	var f outputFormat
	for _, s := range []string{"text", "debug", "json"} {
		if err := f.Set(s); err != nil {
			t.Errorf("Set(%q): %v", s, err)
		}
		if f.String() != s {
			t.Errorf("got %q, want %q", f.String(), s)
		}
	}
	if err := f.Set("yaml"); err == nil {
		t.Errorf("Set(yaml) succeeded")
	}
}

func TestGrammarCommand(t *testing.T) {
	cmd := newGrammarCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--verify"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("grammar --verify: %v", err)
	}
	if !strings.HasPrefix(out.String(), "grammar ok") {
		t.Errorf("got %q", out.String())
	}
}

func runCommand(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	return execute(root), stdout.String(), stderr.String()
}

func TestCommandErrorsReachStderr(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("[1,]"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"parse missing file", []string{"parse", filepath.Join(dir, "missing.json")}, []string{"read file:", "missing.json"}},
		{"fmt missing file", []string{"fmt", filepath.Join(dir, "missing.json")}, []string{"read file:"}},
		{"parse bad document", []string{"parse", bad}, []string{"bad.json:1:"}},
		{"check missing path", []string{"check", filepath.Join(dir, "nope")}, []string{"stat:"}},
		{"check bad document", []string{"check", bad}, []string{"1 document(s) failed to parse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCommand(t, tt.args...)
			if code != 1 {
				t.Errorf("exit code: got %d, want 1", code)
			}
			for _, want := range tt.want {
				if !strings.Contains(stderr, want) {
					t.Errorf("stderr %q does not contain %q", stderr, want)
				}
			}
			if n := strings.Count(stderr, "\n"); n != 1 {
				t.Errorf("stderr has %d lines, want 1: %q", n, stderr)
			}
		})
	}
}

func TestParseCommandOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.jsonc")
	if err := os.WriteFile(path, []byte("// c\n{\"a\": [1]}\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	code, stdout, stderr := runCommand(t, "parse", "-f", "json", path)
	if code != 0 || stderr != "" {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
	if want := `{"a":[1]}` + "\n"; stdout != want {
		t.Errorf("got %q, want %q", stdout, want)
	}
}

type errorList []error

func (l errorList) Error() string { return "several errors" }

func TestPrintErrors(t *testing.T) {
	var out bytes.Buffer
	printErrors(&out, fmt.Errorf("verify: %w", errorList{errors.New("first"), errors.New("second")}))
	if got, want := out.String(), "first\nsecond\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out.Reset()
	printErrors(&out, errors.New("single"))
	if got, want := out.String(), "single\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
