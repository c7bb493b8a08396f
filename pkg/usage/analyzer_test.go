//go:build unit

package usage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	fsmocks "github.com/lerenn/usage-analyzer/pkg/fs/mocks"
	"github.com/lerenn/usage-analyzer/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAnalyzer(fsMock *fsmocks.MockFS, out *bytes.Buffer) *Analyzer {
	return NewAnalyzer(NewAnalyzerParams{
		FS:     fsMock,
		Logger: logger.NewWriterLogger(out),
		Params: Params{Root: projectRoot},
	})
}

func TestNewAnalyzer_Defaults(t *testing.T) {
	analyzer := NewAnalyzer(NewAnalyzerParams{})

	assert.Equal(t, Params{
		Name:       "Component",
		Root:       ".",
		TargetPath: "src/elements",
		PagesPath:  "src/pages",
		Extension:  ".tsx",
		Alias:      "@/elements",
	}, analyzer.Params())
	assert.Nil(t, analyzer.Record())
}

func TestAnalyzer_GenerateMarkdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	expectTree(fsMock,
		map[string]string{"src/elements/button.tsx": buttonSource},
		map[string]string{"src/pages/Dashboard/Dashboard.tsx": dashboardSource},
	)

	var written []byte
	fsMock.EXPECT().
		WriteFileAtomic(filepath.Join(projectRoot, "tools/usageAnalyzer/usage.md"), gomock.Any(), os.FileMode(0o644)).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			written = data
			return nil
		})

	var out bytes.Buffer
	analyzer := newTestAnalyzer(fsMock, &out)
	require.NoError(t, analyzer.Run())

	path, err := analyzer.GenerateMarkdown("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(projectRoot, "tools/usageAnalyzer/usage.md"), path)
	assert.Equal(t, "# Component Usage\n\n"+
		"## Button\n"+
		"  - [./src/pages/Dashboard/Dashboard.tsx](./src/pages/Dashboard/Dashboard.tsx)\n", string(written))
	assert.Contains(t, out.String(), "Markdown file created: tools/usageAnalyzer/usage.md\n")
}

func TestAnalyzer_GenerateMarkdown_AbsoluteOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	expectTree(fsMock,
		map[string]string{"src/elements/button.tsx": buttonSource},
		map[string]string{"src/pages/Dashboard/Dashboard.tsx": dashboardSource},
	)

	output := filepath.Join(string(filepath.Separator), "reports", "usage.md")
	fsMock.EXPECT().WriteFileAtomic(output, gomock.Any(), os.FileMode(0o644)).Return(nil)

	var out bytes.Buffer
	analyzer := newTestAnalyzer(fsMock, &out)
	require.NoError(t, analyzer.Run())

	path, err := analyzer.GenerateMarkdown(output)
	require.NoError(t, err)
	assert.Equal(t, output, path)
}

func TestAnalyzer_GenerateExcalidraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	expectTree(fsMock,
		map[string]string{"src/elements/button.tsx": buttonSource},
		map[string]string{"src/pages/Dashboard/Dashboard.tsx": dashboardSource},
	)

	var written []byte
	fsMock.EXPECT().
		WriteFileAtomic(filepath.Join(projectRoot, "docs/usage.json"), gomock.Any(), os.FileMode(0o644)).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			written = data
			return nil
		})

	var out bytes.Buffer
	analyzer := newTestAnalyzer(fsMock, &out)
	require.NoError(t, analyzer.Run())

	_, err := analyzer.GenerateExcalidraw("docs/usage.json", fixedExcalidrawOptions())
	require.NoError(t, err)

	var scene Scene
	require.NoError(t, json.Unmarshal(written, &scene))
	require.Len(t, scene.Elements, 4)
	assert.Equal(t, "Button", scene.Elements[0].ID)
	assert.Equal(t, "src/pages/Dashboard/Dashboard.tsx", scene.Elements[3].Text.Text)
	assert.Contains(t, out.String(), "Excalidraw file created: docs/usage.json\n")
}

func TestAnalyzer_GenerateBeforeRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	analyzer := newTestAnalyzer(fsMock, &bytes.Buffer{})

	_, err := analyzer.GenerateMarkdown("")
	assert.ErrorIs(t, err, ErrNotAnalyzed)

	_, err = analyzer.GenerateExcalidraw("", ExcalidrawOptions{})
	assert.ErrorIs(t, err, ErrNotAnalyzed)
}

func TestAnalyzer_GenerateWithoutExports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	expectTree(fsMock,
		map[string]string{"src/elements/dialog.tsx": "export default Dialog;"},
		map[string]string{},
	)

	analyzer := newTestAnalyzer(fsMock, &bytes.Buffer{})
	require.NoError(t, analyzer.Run())

	_, err := analyzer.GenerateMarkdown("")
	assert.ErrorIs(t, err, ErrEmptyRecord)
}

func TestAnalyzer_GenerateMarkdown_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	expectTree(fsMock,
		map[string]string{"src/elements/button.tsx": buttonSource},
		map[string]string{},
	)
	fsMock.EXPECT().WriteFileAtomic(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("read-only file system"))

	analyzer := newTestAnalyzer(fsMock, &bytes.Buffer{})
	require.NoError(t, analyzer.Run())

	_, err := analyzer.GenerateMarkdown("out.md")
	assert.ErrorIs(t, err, ErrWriteReport)
	assert.Contains(t, err.Error(), "read-only file system")
}

func TestAnalyzer_FailedRunDropsPreviousRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	expectTree(fsMock,
		map[string]string{"src/elements/button.tsx": buttonSource},
		map[string]string{},
	)
	fsMock.EXPECT().IsDir(filepath.Join(projectRoot, "src/elements")).Return(false, os.ErrPermission)

	analyzer := newTestAnalyzer(fsMock, &bytes.Buffer{})
	require.NoError(t, analyzer.Run())
	require.NotNil(t, analyzer.Record())

	assert.Error(t, analyzer.Run())
	assert.Nil(t, analyzer.Record())
}
