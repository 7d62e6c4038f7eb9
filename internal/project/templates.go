package project

import (
	"embed"
	"fmt"
	"os"
)

// Dialect is the source language of the native iOS project, which decides
// the Podfile template.
type Dialect string

// Supported dialects.
const (
	DialectObjectiveC Dialect = "objc"
	DialectSwift      Dialect = "swift"
)

//go:embed templates/Podfile-objc templates/Podfile-swift
var templates embed.FS

// PodfileTemplate returns the embedded Podfile template for the dialect.
func PodfileTemplate(d Dialect) ([]byte, error) {
	name := "templates/Podfile-objc"
	if d == DialectSwift {
		name = "templates/Podfile-swift"
	}
	content, err := templates.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading template for %s: %w", d, err)
	}
	return content, nil
}

// WritePodfile copies the dialect's template to the platform's Podfile path.
// The caller is responsible for checking that no Podfile exists yet.
func (p Platform) WritePodfile(d Dialect) error {
	content, err := PodfileTemplate(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.Podfile(), content, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("writing %s: %w", p.Podfile(), err)
	}
	return nil
}
