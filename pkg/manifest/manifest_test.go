package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantDeps map[string][]string
		wantErr  bool
	}{
		{
			name: "Full",
			input: `
[package]
name = "example"

[dependencies]
api = ["auth", "store"]
auth = ["crypto"]
`,
			wantName: "example",
			wantDeps: map[string][]string{
				"api":  {"auth", "store"},
				"auth": {"crypto"},
			},
		},
		{
			name:     "NoPackageSection",
			input:    "[dependencies]\ncli = [\"core\"]\n",
			wantName: "",
			wantDeps: map[string][]string{"cli": {"core"}},
		},
		{
			name:     "BareComponent",
			input:    "[dependencies]\ndocs = []\n",
			wantName: "",
			wantDeps: map[string][]string{"docs": {}},
		},
		{
			name:     "Empty",
			input:    "",
			wantName: "",
			wantDeps: map[string][]string{},
		},
		{
			name:    "MalformedTOML",
			input:   "[dependencies\napi = [",
			wantErr: true,
		},
		{
			name:    "EmptyRequirement",
			input:   "[dependencies]\napi = [\"\"]\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseBytes([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseBytes succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBytes: %v", err)
			}
			if m.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", m.Name, tt.wantName)
			}
			if !reflect.DeepEqual(m.Dependencies, tt.wantDeps) {
				t.Errorf("Dependencies = %v, want %v", m.Dependencies, tt.wantDeps)
			}
		})
	}
}

func TestParseFallbackName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "myservice.toml")
	content := "[dependencies]\napi = [\"auth\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Name != "myservice" {
		t.Errorf("Name = %q, want %q (file stem fallback)", m.Name, "myservice")
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Parse of missing file succeeded, want error")
	}
}

func TestComponents(t *testing.T) {
	m := &Manifest{
		Dependencies: map[string][]string{
			"api":  {"auth", "store"},
			"auth": {"crypto"},
		},
	}
	got := m.Components()
	want := []string{"api", "auth", "crypto", "store"}
	if !sort.StringsAreSorted(got) {
		t.Errorf("Components() not sorted: %v", got)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Components() = %v, want %v", got, want)
	}
}
