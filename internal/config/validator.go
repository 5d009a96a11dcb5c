package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// namespaceSegmentRegex matches one PHP namespace segment.
var namespaceSegmentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks namespaces are well-formed and target paths are module-relative.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	namespaces := []struct{ field, value string }{
		{"modules.namespace", cfg.Modules.Namespace},
		{"generator.repository.namespace", cfg.Generator.Repository.Namespace},
		{"generator.interfaces.namespace", cfg.Generator.Interfaces.Namespace},
	}
	for _, ns := range namespaces {
		if err := ValidateNamespace(ns.field, ns.value); err != nil {
			errs = append(errs, *err)
		}
	}

	paths := []struct{ field, value string }{
		{"modules.appFolder", cfg.Modules.AppFolder},
		{"generator.repository.path", cfg.Generator.Repository.Path},
		{"generator.interfaces.path", cfg.Generator.Interfaces.Path},
	}
	for _, p := range paths {
		if p.value != "" && filepath.IsAbs(p.value) {
			errs = append(errs, ValidationError{
				Field:   p.field,
				Message: "must be relative to the module root",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateNamespace checks a backslash-separated namespace. Empty is allowed
// (the default applies).
func ValidateNamespace(field, namespace string) *ValidationError {
	if namespace == "" {
		return nil
	}

	for _, seg := range strings.Split(strings.ReplaceAll(namespace, "/", `\`), `\`) {
		if !namespaceSegmentRegex.MatchString(seg) {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("invalid namespace segment %q", seg),
			}
		}
	}
	return nil
}
