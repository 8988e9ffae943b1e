// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func collect(t *testing.T, s Source) []File {
	t.Helper()
	var files []File
	err := s.Files(context.Background(), func(f File) error {
		files = append(files, f)
		return nil
	})
	if err != nil {
		t.Fatalf("listing files: %v", err)
	}
	return files
}

func TestPathSource_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "creds.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	files := collect(t, &PathSource{Root: path})
	if len(files) != 1 || files[0].Path != path || string(files[0].Content) != "hello\n" {
		t.Fatalf("unexpected files: %+v", files)
	}
	if files[0].Commit != "" {
		t.Errorf("working-tree files carry no commit, got %q", files[0].Commit)
	}
}

func TestPathSource_IgnoredFileNotifies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skip.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	var notes []string
	src := &PathSource{
		Root:    path,
		Ignored: func(string) bool { return true },
		Notify:  func(msg string) { notes = append(notes, msg) },
	}
	files := collect(t, src)
	if len(files) != 0 {
		t.Fatalf("ignored file must not be emitted: %+v", files)
	}
	if len(notes) != 1 || !strings.Contains(notes[0], path) {
		t.Fatalf("expected one note naming %s, got %v", path, notes)
	}
}

func TestPathSource_WalksDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "sub/b.txt"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(name), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	files := collect(t, &PathSource{Root: dir})
	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	sort.Strings(paths)
	want := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "sub", "b.txt")}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Fatalf("walked %v, want %v", paths, want)
	}
}

func TestPathSource_MissingRootIsFatal(t *testing.T) {
	src := &PathSource{Root: filepath.Join(t.TempDir(), "nope")}
	err := src.Files(context.Background(), func(File) error { return nil })
	if err == nil {
		t.Fatal("expected an error for a missing root")
	}
}

func TestPathSource_EmitErrorStopsWalk(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	sentinel := errors.New("stop")
	calls := 0
	err := (&PathSource{Root: dir}).Files(context.Background(), func(File) error {
		calls++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("walk continued after emit error: %d calls", calls)
	}
}
