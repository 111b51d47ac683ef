package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

type config struct {
	inputDir string
	verbose  bool
	file     ini.File
}

func defaultConfigFile() string {
	if name := os.Getenv("ADVENT_CONFIG"); name != "" {
		return name
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "advent2020.ini")
}

// loadConfig reads the ini file name. It's fine for the default config
// file not to exist, but a file named explicitly must be present.
func loadConfig(name string) (*config, error) {
	if name == "" {
		return &config{file: make(ini.File)}, nil
	}
	file, err := ini.LoadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && name == defaultConfigFile() {
			return &config{file: make(ini.File)}, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	cfg, err := parseConfig(file)
	if err != nil {
		return nil, fmt.Errorf("bad config (%s): %s", name, err)
	}
	return cfg, nil
}

func parseConfig(file ini.File) (*config, error) {
	cfg := &config{file: file}
	if dir, ok := file.Get("advent", "inputdir"); ok {
		dir, err := expandHome(dir)
		if err != nil {
			return nil, err
		}
		cfg.inputDir = dir
	}
	if s, ok := file.Get("advent", "verbose"); ok {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("bad value for verbose: %s", err)
		}
		cfg.verbose = v
	}
	return cfg, nil
}

// day returns the per-day options from the [dayN] section.
// The result is nil (and so empty) if there is no such section.
func (c *config) day(n int) ini.Section {
	return c.file["day"+strconv.Itoa(n)]
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand %s: %s", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}
