// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrecy.ini")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

func TestLoad_EmptyPathYieldsEmptyConfig(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.IgnorePatterns) != 0 || len(cfg.VaultPatterns) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	if _, err := Load("/nonexistent/secrecy.ini"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_PatternLists(t *testing.T) {
	path := writeConfig(t, `
[secrecy]
ignore =
    *.lock
    /docs
vaults =
    group_vars/*/secrets.yml
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"*.lock", "/docs"}; !reflect.DeepEqual(cfg.IgnorePatterns, want) {
		t.Errorf("ignore: got %v, want %v", cfg.IgnorePatterns, want)
	}
	if want := []string{"group_vars/*/secrets.yml"}; !reflect.DeepEqual(cfg.VaultPatterns, want) {
		t.Errorf("vaults: got %v, want %v", cfg.VaultPatterns, want)
	}
}

func TestLoad_MissingKeysYieldEmptyLists(t *testing.T) {
	path := writeConfig(t, "[secrecy]\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.IgnorePatterns) != 0 || len(cfg.VaultPatterns) != 0 {
		t.Errorf("expected empty pattern lists, got %+v", cfg)
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })

	if got := FindConfigFile(); got != "" {
		t.Errorf("expected no config file, got %q", got)
	}
	if err := os.WriteFile(DefaultConfigFile, []byte("[secrecy]\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if got := FindConfigFile(); got != DefaultConfigFile {
		t.Errorf("expected %q, got %q", DefaultConfigFile, got)
	}
}
