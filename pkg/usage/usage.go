// Package usage finds which exported building blocks of a target directory
// are referenced by the pages of an application, and renders the result as
// a Markdown report or an Excalidraw scene.
//
// Detection is textual: a target's exports come from its first
// "export { A, B }" statement, and a page uses an export when it imports it
// from the target alias or mentions it as a whole word anywhere, comments
// and strings included.
package usage

import (
	"path/filepath"
	"strings"
)

// Defaults applied to empty Params fields.
const (
	DefaultName             = "Component"
	DefaultTargetPath       = "src/elements"
	DefaultPagesPath        = "src/pages"
	DefaultExtension        = ".tsx"
	DefaultMarkdownOutput   = "tools/usageAnalyzer/usage.md"
	DefaultExcalidrawOutput = "tools/usageAnalyzer/usage.excalidraw.json"
)

// Params configures one analysis run.
type Params struct {
	// Name labels the report header and progress messages.
	Name string
	// Root is the project root every other path is relative to.
	Root string
	// TargetPath is the flat directory holding the target files.
	TargetPath string
	// PagesPath is the directory scanned recursively for pages.
	PagesPath string
	// Extension selects source files in both directories.
	Extension string
	// Alias is the import path prefix pages use for TargetPath.
	Alias string
}

// withDefaults returns a copy of p with every empty field defaulted.
func (p Params) withDefaults() Params {
	if p.Name == "" {
		p.Name = DefaultName
	}
	if p.Root == "" {
		p.Root = "."
	}
	if p.TargetPath == "" {
		p.TargetPath = DefaultTargetPath
	}
	if p.PagesPath == "" {
		p.PagesPath = DefaultPagesPath
	}
	if p.Extension == "" {
		p.Extension = DefaultExtension
	}
	if p.Alias == "" {
		p.Alias = DefaultAlias(p.TargetPath)
	}
	return p
}

// DefaultAlias derives the import alias of a target directory:
// a leading "src/" becomes "@/", anything else is prefixed with "@/".
func DefaultAlias(targetPath string) string {
	p := strings.Trim(filepath.ToSlash(filepath.Clean(targetPath)), "/")
	if p == "src" {
		return "@"
	}
	if rest, ok := strings.CutPrefix(p, "src/"); ok {
		return "@/" + rest
	}
	return "@/" + p
}
