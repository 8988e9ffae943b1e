// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultConfigFile is looked for in the working directory when no --config
// flag is given.
const DefaultConfigFile = "secrecy.ini"

// Config holds the scanner configuration.
//
// The configuration file is INI-style with a single [secrecy] section. The
// "ignore" and "vaults" keys each hold a newline-separated list of glob
// patterns (Python configparser style, continuation lines indented):
//
//	[secrecy]
//	ignore =
//	    *.lock
//	    /docs
//	vaults =
//	    group_vars/*/secrets.yml
type Config struct {
	// IgnorePatterns lists glob patterns of paths excluded from scanning.
	IgnorePatterns []string

	// VaultPatterns lists glob patterns of files expected to be encrypted
	// Ansible vaults.
	VaultPatterns []string
}

// FindConfigFile returns the default configuration file path if it exists in
// the working directory, or "" if there is none.
func FindConfigFile() string {
	if info, err := os.Stat(DefaultConfigFile); err == nil && !info.IsDir() {
		return DefaultConfigFile
	}
	return ""
}

// Load reads the configuration from path. An empty path yields an empty
// configuration. A missing or malformed file is an error; the caller treats
// it as fatal.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	section := file.Section("secrecy")
	return &Config{
		IgnorePatterns: splitPatterns(section.Key("ignore").String()),
		VaultPatterns:  splitPatterns(section.Key("vaults").String()),
	}, nil
}

// splitPatterns splits a newline-separated pattern list, dropping blank lines.
func splitPatterns(value string) []string {
	var patterns []string
	for _, line := range strings.Split(value, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			patterns = append(patterns, line)
		}
	}
	return patterns
}
