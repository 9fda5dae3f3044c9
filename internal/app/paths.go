package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultDataDir returns the default data directory path.
// Uses ~/.nexus for user installations, /var/lib/nexus as fallback.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".nexus")
	}
	return "/var/lib/nexus"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: nexus.toml
// Search paths (in order): /etc/nexus, ~/.config/nexus, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("nexus")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/nexus")
		v.AddConfigPath("$HOME/.config/nexus")
		v.AddConfigPath(".")
	}
}

func resolveDataDir(dataDir string) string {
	if dataDir == "" {
		return DefaultDataDir()
	}
	if strings.HasPrefix(dataDir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, dataDir[2:])
		}
	}
	return dataDir
}

func pidFilePath(dataDir string) string {
	return filepath.Join(dataDir, "nexus.pid")
}
