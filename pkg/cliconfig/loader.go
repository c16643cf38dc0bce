package cliconfig

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GlobalConfigDir is the directory under the user config dir that holds the
// global config file.
const GlobalConfigDir = "mockshape"

// LocalConfigFileNames are searched in order in the working directory.
var LocalConfigFileNames = []string{".mockshaperc.yaml", ".mockshaperc.yml"}

// GlobalConfigFileNames are searched in order in the global config directory.
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig returns the path of the local config file, or "" when
// there is none.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return firstExisting(cwd, LocalConfigFileNames), nil
}

// FindGlobalConfig returns the path of the global config file, or "" when
// there is none or the platform has no user config directory.
func FindGlobalConfig() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return firstExisting(filepath.Join(configDir, GlobalConfigDir), GlobalConfigFileNames)
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// LoadConfigFile reads a Config from a YAML file. Unknown keys are rejected
// so typos do not pass silently.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		cerr := &ConfigError{Path: path, Message: err.Error(), Err: err}
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			cerr.Line, _ = strconv.Atoi(m[1])
		}
		return nil, cerr
	}
	return &cfg, nil
}

// LoadAll merges defaults, the global file, the local file and the
// environment, in that order. Flags are applied by the caller on top.
func LoadAll() (*Config, error) {
	cfg := NewDefault()

	if path := FindGlobalConfig(); path != "" {
		global, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, global, SourceGlobal)
	}

	localPath, err := FindLocalConfig()
	if err != nil {
		return nil, err
	}
	if localPath != "" {
		local, err := LoadConfigFile(localPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, local, SourceLocal)
	}

	env, err := LoadEnvConfig()
	if err != nil {
		return nil, err
	}
	MergeConfig(cfg, env, SourceEnv)

	return cfg, nil
}
