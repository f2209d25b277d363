// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the
// inconsequential binary.
//
// Configuration is loaded from a single file named by the
// INCONSEQUENTIAL_CONFIG environment variable (via [Load]) or passed
// explicitly (via [LoadFile]). When the variable is unset, [Load]
// returns [Default]. There is no ~/.config discovery and no automatic
// file search, and no other environment variables override values.
//
// The file may contain development and production sections that
// override base values when [Config].Environment matches. Production
// defaults to JSON logs when its section does not choose a format.
//
// Key exports:
//
//   - [Config] -- master struct with Engine and Logging sections
//   - [Default] -- the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- range and enum checks
//
// This package depends on no other packages of this module.
package config
