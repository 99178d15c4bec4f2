// File: validation.go
// Title: Configuration Validation
// Description: Checks loaded configuration against per-key rules: presence,
//              type, numeric bounds and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-09-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-09-02 v0.2.0: Allowed value lists, errors returned as *mdwerror.Error

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool
	Type     string // "string", "int", "bool" or "float"
	Min      *int64
	Max      *int64
	Allowed  []string
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// Bound is a helper for the Min and Max fields
func Bound(v int64) *int64 {
	return &v
}

// Validate checks the configuration against rules. All violations are
// collected into a single error with code CONFIG_INVALID, or
// CONFIG_MISSING_KEY when only required keys are missing.
func (c *Config) Validate(rules ValidationRules) error {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var problems []string
	onlyMissing := true
	for _, key := range keys {
		rule := rules[key]
		if !c.Has(key) {
			if rule.Required {
				problems = append(problems, fmt.Sprintf("required key %q is missing", key))
			}
			continue
		}
		if err := c.validateField(key, rule); err != nil {
			problems = append(problems, err.Error())
			onlyMissing = false
		}
	}

	if len(problems) == 0 {
		return nil
	}

	code := mdwerror.CodeConfigInvalid
	if onlyMissing {
		code = mdwerror.CodeConfigMissingKey
	}
	return mdwerror.New("configuration invalid: "+strings.Join(problems, "; ")).
		WithCode(code).
		WithOperation("config.Validate").
		WithDetail("problems", problems)
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.GetString(key)

	switch rule.Type {
	case "", "string":
	case "int":
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return fmt.Errorf("key %q: %q is not an integer", key, value)
		}
		if rule.Min != nil && n < *rule.Min {
			return fmt.Errorf("key %q: %d is below %d", key, n, *rule.Min)
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Errorf("key %q: %d is above %d", key, n, *rule.Max)
		}
	case "bool":
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("key %q: %q is not a boolean", key, value)
		}
	case "float":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("key %q: %q is not a number", key, value)
		}
	default:
		return fmt.Errorf("key %q: unknown rule type %q", key, rule.Type)
	}

	if len(rule.Allowed) > 0 {
		for _, allowed := range rule.Allowed {
			if strings.EqualFold(allowed, value) {
				return nil
			}
		}
		return fmt.Errorf("key %q: %q is not one of %s", key, value, strings.Join(rule.Allowed, ", "))
	}
	return nil
}
