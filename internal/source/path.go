// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// PathSource walks a file or directory in its current working-tree version.
type PathSource struct {
	// Root is the file or directory to check.
	Root string

	// Ignored, when set, is consulted for a directly named file so the
	// user can be told their explicit argument is excluded by
	// configuration instead of silently producing nothing.
	Ignored func(path string) bool

	// Notify receives user-facing notes (not findings). Defaults to
	// discarding them when nil.
	Notify func(msg string)
}

// Name returns the source identifier.
func (s *PathSource) Name() string {
	return "path"
}

// Files reads every regular file under Root and emits it. Unreadable files
// are fatal.
func (s *PathSource) Files(ctx context.Context, emit func(File) error) error {
	info, err := os.Stat(s.Root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", s.Root, err)
	}

	if !info.IsDir() {
		if s.Ignored != nil && s.Ignored(s.Root) {
			if s.Notify != nil {
				s.Notify(fmt.Sprintf("The file you specified (%s) is ignored by the configuration", s.Root))
			}
			return nil
		}
		content, err := os.ReadFile(s.Root)
		if err != nil {
			return fmt.Errorf("reading %s: %w", s.Root, err)
		}
		return emit(File{Path: s.Root, Content: content})
	}

	return filepath.WalkDir(s.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		return emit(File{Path: path, Content: content})
	})
}
