// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
	"github.com/rs/zerolog"
)

// openRepository opens the repository containing dir, searching upward for
// the .git directory the way the git binary does.
func openRepository(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", dir, err)
	}
	return repo, nil
}

// StagedSource yields all files with a change staged in the git index,
// reading their current working-tree content. This is the mode meant for
// pre-commit hooks.
type StagedSource struct {
	// Dir is any directory inside the repository. Empty means ".".
	Dir string

	Log zerolog.Logger
}

// Name returns the source identifier.
func (s *StagedSource) Name() string {
	return "staged"
}

// Files emits every file with a staged change. Files staged for deletion
// have no content to scan and are skipped.
func (s *StagedSource) Files(ctx context.Context, emit func(File) error) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	repo, err := openRepository(dir)
	if err != nil {
		return err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("resolving worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return fmt.Errorf("reading git status: %w", err)
	}

	root := worktree.Filesystem.Root()
	for path, fileStatus := range status {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch fileStatus.Staging {
		case git.Unmodified, git.Untracked, git.Deleted:
			continue
		}
		s.Log.Debug().Str("path", path).Msg("scanning staged file")
		content, err := os.ReadFile(filepath.Join(root, path))
		if err != nil {
			return fmt.Errorf("reading staged file %s: %w", path, err)
		}
		if err := emit(File{Path: path, Content: content}); err != nil {
			return err
		}
	}
	return nil
}

// RangeSource yields the files changed by every commit that is reachable
// from Target but not from Base, reading each file's content as it was at
// that commit. This is the mode meant for pre-receive hooks: scanning only
// the final tree would miss secrets that were committed and later removed.
type RangeSource struct {
	// Dir is any directory inside the repository. Empty means ".".
	Dir string

	// Base and Target are commit-ish revisions delimiting the range.
	Base   string
	Target string

	Log zerolog.Logger
}

// Name returns the source identifier.
func (s *RangeSource) Name() string {
	return "between"
}

// Files walks the commit range. For each commit the tree is diffed against
// its first parent (the empty tree for root commits); deleted files are
// excluded, everything else is read at that commit and emitted with the
// commit hash attached.
func (s *RangeSource) Files(ctx context.Context, emit func(File) error) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	repo, err := openRepository(dir)
	if err != nil {
		return err
	}

	commits, err := commitsBetween(repo, s.Base, s.Target)
	if err != nil {
		return err
	}

	for _, commit := range commits {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Log.Debug().Str("commit", commit.Hash.String()).Msg("scanning commit")
		if err := s.emitCommitFiles(ctx, commit, emit); err != nil {
			return err
		}
	}
	return nil
}

// emitCommitFiles emits the changed, non-deleted files of one commit.
func (s *RangeSource) emitCommitFiles(ctx context.Context, commit *object.Commit, emit func(File) error) error {
	tree, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("reading tree of %s: %w", commit.Hash, err)
	}

	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return fmt.Errorf("resolving parent of %s: %w", commit.Hash, err)
		}
		if parentTree, err = parent.Tree(); err != nil {
			return fmt.Errorf("reading parent tree of %s: %w", commit.Hash, err)
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return fmt.Errorf("diffing %s against its parent: %w", commit.Hash, err)
	}

	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			return fmt.Errorf("classifying change in %s: %w", commit.Hash, err)
		}
		if action == merkletrie.Delete {
			continue
		}
		path := change.To.Name
		if !change.To.TreeEntry.Mode.IsFile() {
			// Submodules and the like have no blob to read.
			continue
		}
		file, err := tree.File(path)
		if err != nil {
			return fmt.Errorf("reading %s at %s: %w", path, commit.Hash, err)
		}
		content, err := file.Contents()
		if err != nil {
			return fmt.Errorf("reading %s at %s: %w", path, commit.Hash, err)
		}
		if err := emit(File{Path: path, Commit: commit.Hash.String(), Content: []byte(content)}); err != nil {
			return err
		}
	}
	return nil
}

// commitsBetween returns all commits reachable from target but not from
// base, matching `git rev-list ^base target` even across merges.
func commitsBetween(repo *git.Repository, base, target string) ([]*object.Commit, error) {
	baseCommit, err := resolveCommit(repo, base)
	if err != nil {
		return nil, err
	}
	targetCommit, err := resolveCommit(repo, target)
	if err != nil {
		return nil, err
	}

	excluded, err := reachableFrom(baseCommit)
	if err != nil {
		return nil, err
	}

	var commits []*object.Commit
	seen := map[plumbing.Hash]bool{}
	stack := []*object.Commit{targetCommit}
	for len(stack) > 0 {
		commit := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[commit.Hash] || excluded[commit.Hash] {
			continue
		}
		seen[commit.Hash] = true
		commits = append(commits, commit)

		err := commit.Parents().ForEach(func(parent *object.Commit) error {
			if !seen[parent.Hash] && !excluded[parent.Hash] {
				stack = append(stack, parent)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking parents of %s: %w", commit.Hash, err)
		}
	}
	return commits, nil
}

// reachableFrom returns the hashes of commit and all its ancestors.
func reachableFrom(commit *object.Commit) (map[plumbing.Hash]bool, error) {
	reachable := map[plumbing.Hash]bool{}
	stack := []*object.Commit{commit}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reachable[current.Hash] {
			continue
		}
		reachable[current.Hash] = true

		err := current.Parents().ForEach(func(parent *object.Commit) error {
			if !reachable[parent.Hash] {
				stack = append(stack, parent)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking parents of %s: %w", current.Hash, err)
		}
	}
	return reachable, nil
}

func resolveCommit(repo *git.Repository, revision string) (*object.Commit, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %q: %w", revision, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", hash, err)
	}
	return commit, nil
}
