// SPDX-License-Identifier: MIT
// Package: dtwalign/config

// Package config loads the YAML run configuration of the dtwalign command.
//
// Missing keys keep the values of Default(); unknown keys are rejected so a
// typo never silently falls back to a default.
package config
