// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the
// inconsequential binary.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//	go build -ldflags "-X github.com/bureau-foundation/inconsequential/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// When GitCommit is not injected, [Current] reads the commit, dirty
// flag and commit time from the VCS stamps in the binary's build info.
// [Build] is the JSON shape of the version command.
package version
