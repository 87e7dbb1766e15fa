package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func writeManifest(t *testing.T, dir string) string {
	t.Helper()
	manifest := `package: items
literals:
  - name: Auto
    kind: string
    value: auto
  - name: Num123
    kind: int
    value: 123
`
	path := filepath.Join(dir, "litgen.yaml")
	if err := os.WriteFile(path, []byte(manifest), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateDefaultsNextToManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)

	if err := Generate(&GenerateConfig{ManifestPath: path}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "lits_gen.go"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	for _, want := range []string{"package items", `lit.Str("auto")`, "type Num123 = lit.Unit[num123Lit]"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateOutputFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)

	config := GenerateConfig{ManifestPath: path, OutputPath: filepath.Join("gen", "markers.go")}
	if err := Generate(&config); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "gen", "markers.go")); err != nil {
		t.Errorf("expected output under the manifest directory: %v", err)
	}
}

func TestGeneratePackageFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)

	config := GenerateConfig{ManifestPath: path, Package: "constants"}
	if err := Generate(&config); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "lits_gen.go"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "package constants") {
		t.Error("expected the package override to win over the manifest")
	}

	config.Package = "my-pkg"
	if err := Generate(&config); err == nil || !strings.Contains(err.Error(), "not a valid identifier") {
		t.Errorf("Generate() error = %v, want identifier complaint", err)
	}
}

func TestGenerateStdout(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	genErr := Generate(&GenerateConfig{ManifestPath: path, OutputPath: "-"})
	_ = w.Close()
	os.Stdout = old

	out, _ := io.ReadAll(r)
	if genErr != nil {
		t.Fatalf("Generate() error = %v", genErr)
	}
	if !strings.Contains(string(out), "// Code generated by litgen. DO NOT EDIT.") {
		t.Error("stdout output is missing the generated-code header")
	}
}

func TestGenerateMissingManifest(t *testing.T) {
	err := Generate(&GenerateConfig{ManifestPath: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatal("expected error for a missing manifest")
	}
	if !strings.Contains(err.Error(), "read manifest") {
		t.Errorf("error = %v, want read manifest", err)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := Check(cmd, path); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !strings.Contains(buf.String(), "2 literals ok") {
		t.Errorf("output = %q, want the literal count", buf.String())
	}
}

func TestCheckRejectsBadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "litgen.yaml")
	bad := "package: items\nliterals:\n  - name: auto\n    kind: string\n    value: auto\n"
	if err := os.WriteFile(path, []byte(bad), 0600); err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{}
	cmd.SetOut(io.Discard)

	if err := Check(cmd, path); err == nil {
		t.Error("expected error for an unexported literal name")
	}
}
