package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/cashapp/sysident/platform"
)

func TestLoadUserConfig(t *testing.T) {
	// Create a temporary directory for our test files
	tmpDir := t.TempDir()

	tests := []struct {
		name           string
		configContents string
		expected       UserConfig
		expectError    bool
	}{
		{
			name:           "probe settings",
			configContents: `ldd = "/usr/bin/ldd"`,
			expected: UserConfig{
				LDD: "/usr/bin/ldd",
			},
		},
		{
			name: "full config",
			configContents: `
ldd = "/sbin/ldd"
probe-timeout = "500ms"
properties {
	os-name = "Linux"
	os-arch = "aarch64"
	runtime-name = "Dalvik"
}`,
			expected: UserConfig{
				LDD:          "/sbin/ldd",
				ProbeTimeout: 500 * time.Millisecond,
				Properties: &PropertiesConfig{
					OSName:      "Linux",
					OSArch:      "aarch64",
					RuntimeName: "Dalvik",
				},
			},
		},
		{
			name:           "empty config",
			configContents: "",
			expected:       UserConfig{},
		},
		{
			name: "invalid HCL",
			configContents: `
properties {
	os-name = "unclosed
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a temporary config file
			configPath := filepath.Join(tmpDir, "config.hcl")
			err := os.WriteFile(configPath, []byte(tt.configContents), 0644)
			assert.NoError(t, err)

			// Load the config
			config, err := LoadUserConfig(configPath)
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, config)
		})
	}
}

func TestLoadUserConfigMissingFile(t *testing.T) {
	config, err := LoadUserConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.NoError(t, err)
	assert.Equal(t, UserConfig{}, config)
}

func TestUserConfigProperties(t *testing.T) {
	config := UserConfig{Properties: &PropertiesConfig{OSName: "Windows 10", FileSeparator: `\`}}
	props := config.properties()
	assert.Equal(t, platform.MapProperties{
		platform.PropOSName:        "Windows 10",
		platform.PropFileSeparator: `\`,
	}, props)
	os, err := platform.CurrentOS(props)
	assert.NoError(t, err)
	assert.Equal(t, platform.Windows, os)

	assert.Equal(t, platform.MapProperties{}, UserConfig{}.properties())
}
