package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeReplies(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(contents))
	for i, c := range contents {
		paths[i] = filepath.Join(dir, string(rune('a'+i))+".txt")
		if err := os.WriteFile(paths[i], []byte(c), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func TestParseFiles_KeepsOrder(t *testing.T) {
	paths := writeReplies(t, reply, "sem marcadores", "\ufeff"+reply)

	results, err := parseFiles(paths, 2)
	if err != nil {
		t.Fatalf("parseFiles() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("results[%d].Path = %q, want %q", i, r.Path, paths[i])
		}
	}
	if !results[0].Result.HasListings() || results[1].Result.HasListings() {
		t.Error("listings attached to the wrong file")
	}
	if results[2].Result.SearchVolume != "1.000 buscas mensais" {
		t.Errorf("byte order mark not stripped: %q", results[2].Result.SearchVolume)
	}
}

func TestParseFiles_MissingFile(t *testing.T) {
	paths := writeReplies(t, reply)
	paths = append(paths, filepath.Join(t.TempDir(), "missing.txt"))

	if _, err := parseFiles(paths, 0); err == nil || !strings.Contains(err.Error(), "missing.txt") {
		t.Errorf("parseFiles() error = %v, want one naming missing.txt", err)
	}
}

func TestParseCmd_JSON(t *testing.T) {
	for _, flags := range [][]string{{"--json"}, {"--json", "--concurrent"}} {
		t.Run(strings.Join(flags, " "), func(t *testing.T) {
			testParseCmdJSON(t, flags)
		})
	}
}

func testParseCmdJSON(t *testing.T, flags []string) {
	paths := writeReplies(t, reply)

	cmd := parseCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append(flags, paths...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var decoded []struct {
		Path   string `json:"path"`
		Result struct {
			SearchVolume string `json:"searchVolume"`
			Serp         struct {
				Ads []json.RawMessage `json:"ads"`
			} `json:"serp"`
		} `json:"result"`
	}
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(decoded) != 1 || decoded[0].Result.SearchVolume != "1.000 buscas mensais" || len(decoded[0].Result.Serp.Ads) != 1 {
		t.Errorf("unexpected output: %+v", decoded)
	}
}
