package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantErr      bool
		wantOutput   string
		wantColor    string
		wantPreserve bool
	}{
		{
			name: "valid config",
			content: `output: json
color: always
preserve_breaks: true`,
			wantOutput:   "json",
			wantColor:    "always",
			wantPreserve: true,
		},
		{
			name:    "empty config",
			content: "",
		},
		{
			name:    "invalid yaml",
			content: "invalid: [yaml",
			wantErr: true,
		},
		{
			name: "partial config",
			content: `output: yaml
language_aliases:
  golang: go`,
			wantOutput: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yaml")

			if tt.content != "" {
				if err := os.WriteFile(configPath, []byte(tt.content), 0o600); err != nil {
					t.Fatalf("failed to write test config: %v", err)
				}
			}

			cfg, err := LoadFromPath(configPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadFromPath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				return
			}

			if cfg.GetOutput() != tt.wantOutput {
				t.Errorf("GetOutput() = %v, want %v", cfg.GetOutput(), tt.wantOutput)
			}
			if cfg.GetColor() != tt.wantColor {
				t.Errorf("GetColor() = %v, want %v", cfg.GetColor(), tt.wantColor)
			}
			if cfg.PreserveBreaks != tt.wantPreserve {
				t.Errorf("PreserveBreaks = %v, want %v", cfg.PreserveBreaks, tt.wantPreserve)
			}
		})
	}
}

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	tmpDir := t.TempDir()
	restore := SetConfigPathFunc(func() (string, error) {
		return filepath.Join(tmpDir, "config.yaml"), nil
	})
	defer SetConfigPathFunc(restore)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with missing file: %v", err)
	}
	if cfg.Output != "" || cfg.Color != "" || cfg.PreserveBreaks {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	restore := SetConfigPathFunc(func() (string, error) {
		return filepath.Join(tmpDir, "nested", "config.yaml"), nil
	})
	defer SetConfigPathFunc(restore)

	cfg := &Config{
		Output:          "json",
		Color:           "never",
		PreserveBreaks:  true,
		LanguageAliases: map[string]string{"golang": "go"},
		ColumnWidths:    map[int]int{0: 10, 2: 5},
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save(): %v", err)
	}
	if loaded.Output != "json" || loaded.Color != "never" || !loaded.PreserveBreaks {
		t.Errorf("round trip lost scalar fields: %+v", loaded)
	}
	if loaded.LanguageAliases["golang"] != "go" {
		t.Errorf("round trip lost language aliases: %+v", loaded.LanguageAliases)
	}
	if loaded.ColumnWidths[0] != 10 || loaded.ColumnWidths[2] != 5 {
		t.Errorf("round trip lost column widths: %+v", loaded.ColumnWidths)
	}
}
