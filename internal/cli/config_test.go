package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/trustlens/internal/bias"
	"github.com/ppiankov/trustlens/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func loadTestConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeTestFile(t, path, yaml)

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("read config: %v", err)
	}
}

func TestBuildConfig_AppliesConfigFile(t *testing.T) {
	tablePath := filepath.Join(t.TempDir(), "bias.json")
	writeTestFile(t, tablePath, `{"loaded_language": ["flimflam"]}`)

	loadTestConfig(t, strings.Join([]string{
		"http:",
		"  user_agent: ConfigAgent/1.0",
		"  timeout: 45s",
		"tables:",
		"  bias_phrases_path: " + tablePath,
	}, "\n"))

	cfg, err := buildConfig(&cobra.Command{})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}
	if cfg.HTTP.UserAgent != "ConfigAgent/1.0" {
		t.Errorf("Expected the file's user agent, got %q", cfg.HTTP.UserAgent)
	}
	if cfg.HTTP.Timeout != 45*time.Second {
		t.Errorf("Expected the file's timeout, got %v", cfg.HTTP.Timeout)
	}
	if cfg.Tables.BiasPhrasesPath != tablePath {
		t.Errorf("Expected the table override path, got %q", cfg.Tables.BiasPhrasesPath)
	}
	// Keys the file does not set keep their defaults
	if !cfg.HTTP.RespectRobots {
		t.Error("Expected robots checking to stay enabled")
	}
	if !cfg.Cache.Enabled {
		t.Error("Expected caching to stay enabled")
	}
}

func TestBuildConfig_TableOverrideChangesDetection(t *testing.T) {
	tablePath := filepath.Join(t.TempDir(), "bias.json")
	writeTestFile(t, tablePath, `{"loaded_language": ["flimflam"]}`)

	loadTestConfig(t, "tables:\n  bias_phrases_path: "+tablePath+"\n")

	cfg, err := buildConfig(&cobra.Command{})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}

	d := bias.NewDetector(cfg.Tables)
	result := d.Detect("That flimflam excuse again.")

	found := false
	for _, issue := range result.Issues {
		if issue.Type == model.IssueLoadedLanguage && strings.Contains(issue.Description, "flimflam") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected the overridden table to flag 'flimflam', got %+v", result.Issues)
	}
	// The override replaces the built-in table entirely
	builtIn := d.Detect("Obviously this works.")
	if len(builtIn.Issues) != 0 {
		t.Errorf("Expected built-in terms to be replaced, got %+v", builtIn.Issues)
	}
}

func TestBuildConfig_FlagsBeatConfigFile(t *testing.T) {
	loadTestConfig(t, "http:\n  user_agent: ConfigAgent/1.0\n")

	saved := userAgent
	defer func() { userAgent = saved }()

	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&userAgent, "ua", saved, "")
	if err := cmd.Flags().Set("ua", "FlagAgent/2.0"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}
	if cfg.HTTP.UserAgent != "FlagAgent/2.0" {
		t.Errorf("Expected the flag to win over the config file, got %q", cfg.HTTP.UserAgent)
	}
}

func TestBuildConfig_UnsetFlagKeepsConfigValue(t *testing.T) {
	loadTestConfig(t, "cache:\n  enabled: false\n")

	cmd := &cobra.Command{}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "")

	cfg, err := buildConfig(cmd)
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}
	if cfg.Cache.Enabled {
		t.Error("Expected the config file to disable caching when the flag is not set")
	}
}
