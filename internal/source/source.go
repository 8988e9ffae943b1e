// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package source enumerates the files a scan runs over: a working tree path,
// the staged git index, or a range of git history. Sources do all the
// blocking I/O; the detection core itself never touches the filesystem.
package source

import "context"

// File is one fully-read file body handed to the detection engine.
type File struct {
	// Path is the repository-relative path of the file.
	Path string

	// Commit is the hash of the commit the content was read from, or ""
	// for working-tree content.
	Commit string

	// Content is the complete file body.
	Content []byte
}

// Source yields the files of one scan mode. Any error returned, either from
// the source itself or from emit, is fatal and aborts the run; findings are
// never errors.
type Source interface {
	Name() string
	Files(ctx context.Context, emit func(File) error) error
}
