// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package precommit

import "testing"

func TestInHookEnvironment(t *testing.T) {
	for _, name := range hookEnvVars {
		t.Setenv(name, "")
	}
	if InHookEnvironment() {
		t.Error("no hook variables set, but hook environment detected")
	}

	t.Setenv("GIT_INDEX_FILE", "/repo/.git/index")
	if !InHookEnvironment() {
		t.Error("GIT_INDEX_FILE set, but hook environment not detected")
	}
}
