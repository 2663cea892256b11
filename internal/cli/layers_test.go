package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
)

func TestParseWeights(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    fusion.WeightDistribution
		wantErr bool
	}{
		{
			name:  "standard triple",
			input: "0.2,0.3,0.5",
			want:  fusion.WeightDistribution{Base: 0.2, Brain: 0.3, Persona: 0.5},
		},
		{
			name:  "spaces tolerated",
			input: " 0.4, 0.6, 0 ",
			want:  fusion.WeightDistribution{Base: 0.4, Brain: 0.6, Persona: 0},
		},
		{
			name:    "two values",
			input:   "0.5,0.5",
			wantErr: true,
		},
		{
			name:    "four values",
			input:   "0.25,0.25,0.25,0.25",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			input:   "a,b,c",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeights(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseWeights(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseWeights(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLayerFlags_FileWinsOverInline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.txt")
	if err := os.WriteFile(path, []byte("file content"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f := layerFlags{base: "inline content", baseFile: path, brain: "brain text"}
	layers, err := f.resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if layers.Base != "file content" {
		t.Errorf("file should win over inline, got %q", layers.Base)
	}
	if layers.Brain != "brain text" {
		t.Errorf("inline brain lost, got %q", layers.Brain)
	}
}

func TestLayerFlags_MissingFileErrors(t *testing.T) {
	f := layerFlags{personaFile: filepath.Join(t.TempDir(), "nope.txt")}
	if _, err := f.resolve(); err == nil {
		t.Fatal("expected error for missing file")
	}
}
