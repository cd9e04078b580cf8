// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package redaction provides utilities for redacting sensitive information
// in logs, error messages, and other outputs to protect privacy and comply
// with data protection regulations.
package redaction

import (
	"strings"
)

// Redact redacts sensitive information for logging and output purposes.
// Shows the first 3 runes followed by asterisks when the string has more
// than 5 runes, the first rune followed by asterisks for 3-5 runes, and
// only asterisks for 1-2 runes.
//
// Examples:
//   - Redact("") → ""
//   - Redact("ab") → "**"
//   - Redact("abc") → "a****"
//   - Redact("johndoe123") → "joh****"
func Redact(sensitive string) string {
	if len(sensitive) == 0 {
		return ""
	}

	runes := []rune(sensitive)
	n := len(runes)

	// For very short strings (1-2 chars), show asterisks
	if n <= 2 {
		return "**"
	}

	// For short strings (3-5 chars), show first rune + asterisks
	if n <= 5 {
		return string(runes[0]) + "****"
	}

	// For longer strings (>5 runes), show first 3 runes + asterisks
	return string(runes[:3]) + "****"
}

// sensitiveConfigKeys are the environment keys (spec §6) whose values
// must never appear unredacted in a startup log line.
var sensitiveConfigKeys = map[string]bool{
	"SESSION_ID": true,
	"GA_ID":      true,
	"API_KEY":    true,
}

// IsSensitiveConfigKey reports whether key names a config value that
// RedactConfigValue should be applied to before logging.
func IsSensitiveConfigKey(key string) bool {
	return sensitiveConfigKeys[strings.ToUpper(key)]
}

// RedactConfigValue redacts a configuration value for inclusion in
// startup logs (spec §6: GA_ID, SESSION_ID, API_KEY must never be
// logged in full).
func RedactConfigValue(value string) string {
	return Redact(value)
}
