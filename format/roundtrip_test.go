package format

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/dhamidi/jcomb/jsonc"
)

var testcasesDir string
var testFilter string

func init() {
	flag.StringVar(&testcasesDir, "testcases", "testdata", "directory containing .json and .jsonc test files")
	flag.StringVar(&testFilter, "filter", "", "filter test files by substring match on filename")
}

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

// TestRoundTrip_Testcases parses every document in the testcases directory,
// renders it, and checks that the rendering parses back to the same value.
// Each file becomes a subtest: go test -run TestRoundTrip_Testcases/config
func TestRoundTrip_Testcases(t *testing.T) {
	var files []string
	err := filepath.WalkDir(testcasesDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".json" && ext != ".jsonc" {
			return nil
		}
		if testFilter != "" && !strings.Contains(path, testFilter) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk testcases directory: %v", err)
	}
	if len(files) == 0 {
		t.Skipf("no test files found in %s", testcasesDir)
	}

	for _, file := range files {
		testName := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		t.Run(testName, func(t *testing.T) {
			runRoundTripTest(t, file)
		})
	}
}

func runRoundTripTest(t *testing.T, filename string) {
	source, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	orig, err := jsonc.DecodeString(string(source), jsonc.WithFile(filename))
	if err != nil {
		t.Fatalf("parse original: %v", err)
	}

	var indented strings.Builder
	if err := NewTextEncoder(&indented, WithIndent("  ")).Encode(orig); err != nil {
		t.Fatalf("encode text: %v", err)
	}
	renderings := map[string]string{
		"show":     Show(orig),
		"indented": indented.String(),
	}

	for name, text := range renderings {
		got, err := jsonc.DecodeString(text)
		if err != nil {
			t.Errorf("%s: rendered text does not parse: %v\n%s", name, err, text)
			continue
		}
		if !jsonc.Equal(orig, got) {
			t.Errorf("%s: value changed after round trip\nwant: %s\ngot:  %s", name, Debug(orig), Debug(got))
		}
	}

	var out strings.Builder
	if err := NewJSONEncoder(&out, WithIndent("\t")).Encode(orig); err != nil {
		t.Fatalf("encode json: %v", err)
	}
	strict := out.String()
	if !json.Valid([]byte(strict)) {
		t.Fatalf("JSON output is not valid JSON:\n%s", strict)
	}
	reparsed, err := jsonc.DecodeString(strict)
	if err != nil {
		t.Fatalf("JSON output does not parse: %v", err)
	}
	if diffs := compareKindCounts(countKinds(orig), countKinds(reparsed)); len(diffs) > 0 {
		t.Errorf("value kinds changed in JSON output:\n%s", strings.Join(diffs, "\n"))
	}
}

func countKinds(v jsonc.Value) map[jsonc.Kind]int {
	counts := make(map[jsonc.Kind]int)
	walkValue(v, func(v jsonc.Value) {
		counts[v.Kind()]++
	})
	return counts
}

func walkValue(v jsonc.Value, visit func(jsonc.Value)) {
	visit(v)
	switch v := v.(type) {
	case jsonc.Array:
		for _, item := range v {
			walkValue(item, visit)
		}
	case jsonc.Object:
		for _, m := range v {
			walkValue(m.Value, visit)
		}
	}
}

func compareKindCounts(original, rendered map[jsonc.Kind]int) []string {
	var diffs []string
	for kind := jsonc.KindNull; kind <= jsonc.KindObject; kind++ {
		if original[kind] != rendered[kind] {
			diffs = append(diffs, fmt.Sprintf("  %-8s %d -> %d", kind, original[kind], rendered[kind]))
		}
	}
	sort.Strings(diffs)
	return diffs
}
