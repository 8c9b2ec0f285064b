// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and merges the application configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults, in that priority order. The merged configuration is
// validated once at startup; all other packages receive their sub-sections
// by value and never read the environment themselves.
package config
