package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/flatten/internal/utils"
)

type configTestCase struct {
	name           string
	globalContent  string
	localContent   string
	explicitPath   string
	expectOutput   string
	expectExclude  []string
	expectProgress bool
	expectCopy     bool
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []configTestCase{
		{
			name:           "defaults_without_files",
			expectOutput:   "",
			expectExclude:  nil,
			expectProgress: true,
			expectCopy:     false,
		},
		{
			name:           "local_overrides_global",
			globalContent:  "output: global\nexclude:\n  - vendor/\nprogress: false\n",
			localContent:   "output: local\ncopy: true\n",
			expectOutput:   "local",
			expectExclude:  []string{"vendor/"},
			expectProgress: false,
			expectCopy:     true,
		},
		{
			name:           "local_exclusions_replace_global",
			globalContent:  "exclude:\n  - vendor/\n",
			localContent:   "exclude:\n  - dist\n  - dist\n  - .env\n",
			expectExclude:  []string{"dist", ".env"},
			expectProgress: true,
		},
		{
			name:           "explicit_path_replaces_local",
			localContent:   "output: local\n",
			explicitPath:   "custom.yaml",
			expectOutput:   "custom",
			expectProgress: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDir := t.TempDir()
			workingDir := t.TempDir()
			t.Setenv("HOME", homeDir)
			t.Setenv("USERPROFILE", homeDir)

			if testCase.globalContent != "" {
				configDir := filepath.Join(homeDir, utils.GlobalConfigDirectoryName)
				if err := os.MkdirAll(configDir, 0o755); err != nil {
					t.Fatalf("create config dir: %v", err)
				}
				globalPath := filepath.Join(configDir, utils.GlobalConfigFileName)
				if err := os.WriteFile(globalPath, []byte(testCase.globalContent), 0o600); err != nil {
					t.Fatalf("write global config: %v", err)
				}
			}
			if testCase.localContent != "" {
				localPath := filepath.Join(workingDir, utils.LocalConfigFileName)
				if err := os.WriteFile(localPath, []byte(testCase.localContent), 0o600); err != nil {
					t.Fatalf("write local config: %v", err)
				}
			}
			if testCase.explicitPath != "" {
				explicitPath := filepath.Join(workingDir, testCase.explicitPath)
				if err := os.WriteFile(explicitPath, []byte("output: custom\n"), 0o600); err != nil {
					t.Fatalf("write explicit config: %v", err)
				}
			}

			configuration, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir, ExplicitFilePath: testCase.explicitPath})
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}
			if configuration.Output != testCase.expectOutput {
				t.Fatalf("expected output %q, got %q", testCase.expectOutput, configuration.Output)
			}
			if len(configuration.Exclude) != len(testCase.expectExclude) {
				t.Fatalf("expected exclude %v, got %v", testCase.expectExclude, configuration.Exclude)
			}
			for index := range testCase.expectExclude {
				if configuration.Exclude[index] != testCase.expectExclude[index] {
					t.Fatalf("expected exclude %v, got %v", testCase.expectExclude, configuration.Exclude)
				}
			}
			if configuration.ProgressEnabled() != testCase.expectProgress {
				t.Fatalf("expected progress %t", testCase.expectProgress)
			}
			if configuration.CopyEnabled() != testCase.expectCopy {
				t.Fatalf("expected copy %t", testCase.expectCopy)
			}
		})
	}
}

func TestLoadApplicationConfigurationMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: t.TempDir(), ExplicitFilePath: "absent.yaml"})
	if err == nil {
		t.Fatalf("expected error for missing explicit configuration")
	}
}

func TestLoadApplicationConfigurationRejectsMalformedYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	workingDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workingDir, utils.LocalConfigFileName), []byte("output: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir}); err == nil {
		t.Fatalf("expected error for malformed configuration")
	}
}
