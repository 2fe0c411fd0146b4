package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestGetValue(t *testing.T) {
	path := writeTempFile(t, "[servers.alpha]\nip = \"10.0.0.1\"\n")

	out, err := runCmd(t, "get", "servers.alpha.ip", path)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(out, `"10.0.0.1"`) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGetMissingKey(t *testing.T) {
	path := writeTempFile(t, "a = 1\n")

	if _, err := runCmd(t, "get", "b", path); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestSetWritesBackAndPreservesFormatting(t *testing.T) {
	path := writeTempFile(t, "[servers]\n\n[servers.alpha]\nip = \"10.0.0.1\"\n\n[other.table]\n")

	if _, err := runCmd(t, "set", "servers.beta.ip", `"10.0.0.2"`, path); err != nil {
		t.Fatalf("set: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "[servers.beta]") {
		t.Fatalf("expected new table header, got:\n%s", got)
	}
	if !strings.Contains(got, `ip = "10.0.0.2"`) {
		t.Fatalf("expected new ip entry, got:\n%s", got)
	}
	if !strings.Contains(got, `ip = "10.0.0.1"`) {
		t.Fatalf("expected original entry untouched, got:\n%s", got)
	}
}

func TestUnsetRemovesEntry(t *testing.T) {
	path := writeTempFile(t, "a = 1\nb = 2\n")

	if _, err := runCmd(t, "unset", "a", path); err != nil {
		t.Fatalf("unset: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := string(data)
	if strings.Contains(got, "a = 1") {
		t.Fatalf("expected a to be removed, got:\n%s", got)
	}
	if !strings.Contains(got, "b = 2") {
		t.Fatalf("expected b untouched, got:\n%s", got)
	}
}

func TestUnsetMissingKeyFails(t *testing.T) {
	path := writeTempFile(t, "a = 1\n")

	if _, err := runCmd(t, "unset", "missing", path); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestSortValuesUnderPath(t *testing.T) {
	path := writeTempFile(t, "[a]\n# attached\nb = 2 # trailing\na = 1\nc = 3\n")

	if _, err := runCmd(t, "sort", "a", path); err != nil {
		t.Fatalf("sort: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := string(data)
	ia, ib, ic := strings.Index(got, "a = 1"), strings.Index(got, "b = 2"), strings.Index(got, "c = 3")
	if !(ia < ib && ib < ic) {
		t.Fatalf("expected a,b,c order, got:\n%s", got)
	}
	if !strings.Contains(got, "# attached\nb = 2 # trailing") {
		t.Fatalf("expected comments to stay glued to b, got:\n%s", got)
	}
}

func TestFmtRoundTripsUnmodifiedDocument(t *testing.T) {
	src := "[package]\nname = \"demo\"\n\n[dependencies]\nfoo = \"1.0\"\n"
	path := writeTempFile(t, src)

	if _, err := runCmd(t, "fmt", "--original-order", path); err != nil {
		t.Fatalf("fmt: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != src {
		t.Fatalf("round-trip mismatch:\nwant %q\ngot  %q", src, string(data))
	}
}

func TestFmtStdinToStdoutDefaultsToDisplayOrder(t *testing.T) {
	src := "a = 1\n"

	cmd := newRootCmd()
	cmd.SetArgs([]string{"fmt"})
	cmd.SetIn(strings.NewReader(src))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if out.String() != src {
		t.Fatalf("want %q, got %q", src, out.String())
	}
}
