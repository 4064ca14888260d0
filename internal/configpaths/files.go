// Package configpaths locates inputsim configuration files.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppName is the directory and base file name used for configuration.
const AppName = "inputsim"

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "INPUTSIM_CONFIG"

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, AppName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", AppName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// DefaultConfigPath returns where `config init` writes a file of the given
// format (json, yaml or toml).
func DefaultConfigPath(format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName+"."+Extension(format)), nil
}

// Extension returns the file extension for format, defaulting to json.
func Extension(format string) string {
	switch format {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// ConfigCandidatePaths lists config files per format in priority order. A
// userPath comes first and is routed by its extension; unknown extensions are
// read as JSON.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch Extension(strings.TrimPrefix(filepath.Ext(userPath), ".")) {
		case "yaml":
			yamlPaths = append(yamlPaths, userPath)
		case "toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}

	addDir := func(dir string) {
		base := filepath.Join(dir, AppName)
		jsonPaths = append(jsonPaths, base+".json")
		yamlPaths = append(yamlPaths, base+".yaml", base+".yml")
		tomlPaths = append(tomlPaths, base+".toml")
	}

	if wd, err := os.Getwd(); err == nil {
		addDir(wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		addDir(dir)
	}
	if runtime.GOOS != "windows" {
		addDir(filepath.Join("/etc", AppName))
	}
	return
}
