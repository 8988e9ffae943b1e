// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package precommit detects whether the process was started by a git hook
// or the pre-commit framework, so the CLI can pick hook-friendly defaults.
package precommit

import "os"

// hookEnvVars are set by git when it runs a hook, or by the pre-commit
// framework when it runs a configured hook entry.
var hookEnvVars = []string{
	"GIT_INDEX_FILE",
	"GIT_AUTHOR_NAME",
	"PRE_COMMIT",
}

// InHookEnvironment reports whether the process appears to be running from
// a git hook.
func InHookEnvironment() bool {
	for _, name := range hookEnvVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}
