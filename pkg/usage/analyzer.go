package usage

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/usage-analyzer/pkg/fs"
	"github.com/lerenn/usage-analyzer/pkg/logger"
)

// Analyzer runs one usage analysis and writes its reports.
// Run must succeed before any Generate method is called.
type Analyzer struct {
	fs     fs.FS
	logger logger.Logger
	params Params
	record *Record
}

// NewAnalyzerParams contains parameters for creating a new Analyzer instance.
type NewAnalyzerParams struct {
	FS     fs.FS
	Logger logger.Logger
	Params Params
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer(params NewAnalyzerParams) *Analyzer {
	if params.FS == nil {
		params.FS = fs.NewFS()
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}

	return &Analyzer{
		fs:     params.FS,
		logger: params.Logger,
		params: params.Params.withDefaults(),
	}
}

// Params returns the effective parameters, defaults included.
func (a *Analyzer) Params() Params {
	return a.params
}

// Run analyzes the configured directories and replaces the current record.
// On failure the analyzer is left without a record.
func (a *Analyzer) Run() error {
	a.record = nil

	record, err := Analyze(a.fs, a.logger, a.params)
	if err != nil {
		return err
	}

	a.record = record
	return nil
}

// Record returns the result of the last successful Run, or nil.
func (a *Analyzer) Record() *Record {
	return a.record
}

// GenerateMarkdown writes the Markdown report to outputPath and returns the
// written path. A relative outputPath is resolved against the project root. An empty outputPath uses
// DefaultMarkdownOutput.
func (a *Analyzer) GenerateMarkdown(outputPath string) (string, error) {
	if outputPath == "" {
		outputPath = DefaultMarkdownOutput
	}

	if err := checkRecord(a.record); err != nil {
		return "", err
	}

	data, err := RenderMarkdown(a.record, a.params.Name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderReport, err)
	}

	path, err := a.write(outputPath, data)
	if err != nil {
		return "", err
	}

	a.logger.Logf("Markdown file created: %s", outputPath)
	return path, nil
}

// GenerateExcalidraw writes the Excalidraw scene to outputPath and returns the
// written path. A relative outputPath is resolved against the project root. An empty outputPath uses
// DefaultExcalidrawOutput.
func (a *Analyzer) GenerateExcalidraw(outputPath string, opts ExcalidrawOptions) (string, error) {
	if outputPath == "" {
		outputPath = DefaultExcalidrawOutput
	}

	if err := checkRecord(a.record); err != nil {
		return "", err
	}

	data, err := RenderExcalidraw(a.record, opts)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderReport, err)
	}

	path, err := a.write(outputPath, data)
	if err != nil {
		return "", err
	}

	a.logger.Logf("Excalidraw file created: %s", outputPath)
	return path, nil
}

// write stores data at outputPath, replacing any existing file.
// Absolute paths are used as given.
func (a *Analyzer) write(outputPath string, data []byte) (string, error) {
	path := outputPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.params.Root, outputPath)
	}
	if err := a.fs.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteReport, path, err)
	}
	return path, nil
}
