package usage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lerenn/usage-analyzer/pkg/fs"
	"github.com/lerenn/usage-analyzer/pkg/logger"
)

// sourceFile is a scanned file with its project-relative path.
type sourceFile struct {
	rel     string
	base    string
	content string
}

// Analyze scans the target and page directories described by params and
// returns which capitalized target exports every page references.
// Progress goes to log. Targets without an export list are skipped with a
// diagnostic; any listing or read failure aborts the run.
func Analyze(fsys fs.FS, log logger.Logger, params Params) (*Record, error) {
	params = params.withDefaults()

	targetDir := filepath.Join(params.Root, params.TargetPath)
	pagesDir := filepath.Join(params.Root, params.PagesPath)

	targets, err := listSources(fsys, targetDir, filepath.Join(targetDir, "*"+params.Extension))
	if err != nil {
		return nil, err
	}
	pagePaths, err := listSources(fsys, pagesDir, filepath.Join(pagesDir, "**", "*"+params.Extension))
	if err != nil {
		return nil, err
	}

	pages := make([]sourceFile, 0, len(pagePaths))
	for _, path := range pagePaths {
		page, err := readSource(fsys, params, path)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	record := NewRecord()
	label := strings.ToLower(params.Name)

	for _, path := range targets {
		target, err := readSource(fsys, params, path)
		if err != nil {
			return nil, err
		}
		log.Logf("✨ Processing %s: %s", params.Name, target.base)

		names, ok := ExtractExports(target.content)
		if !ok {
			log.Logf("No exports found in %s", target.base)
			continue
		}

		for _, name := range names {
			if !record.Add(name) {
				log.Logf("⚠️  %s is already exported by another %s, skipping it in %s", name, label, target.base)
				continue
			}

			m := newMatcher(name, params.Alias)
			for _, page := range pages {
				log.Logf("✨✨ Checking page content for %s: %s", label, page.base)
				if m.matches(page.content) {
					record.AddUsage(name, page.rel)
				}
			}
		}
	}

	if summary, err := json.MarshalIndent(record, "", "  "); err == nil {
		log.Logf("Final %s Usage: %s", params.Name, summary)
	}

	return record, nil
}

// listSources checks that dir is a readable directory and returns the files
// matching pattern in lexical order.
func listSources(fsys fs.FS, dir, pattern string) ([]string, error) {
	isDir, err := fsys.IsDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryUnreadable, dir, err)
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	files, err := fsys.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFiles, err)
	}
	sort.Strings(files)

	return files, nil
}

// readSource reads path and computes its project-relative, slash-separated name.
func readSource(fsys fs.FS, params Params, path string) (sourceFile, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return sourceFile{}, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	rel, err := filepath.Rel(params.Root, path)
	if err != nil {
		rel = path
	}

	return sourceFile{
		rel:     filepath.ToSlash(rel),
		base:    strings.TrimSuffix(filepath.Base(path), params.Extension),
		content: string(data),
	}, nil
}
