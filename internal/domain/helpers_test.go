package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"cleanrec.dev/pkg/cleanrec/internal/adapter"
	"cleanrec.dev/pkg/cleanrec/internal/controller"
	m "cleanrec.dev/pkg/cleanrec/internal/model"
)

const testRoot = "/ws"

// cleanCall is one recorded invocation of the clean tool.
type cleanCall struct {
	Dir    m.Path
	Action m.CleanAction
}

// recordingCargo records every clean request and answers with a fixed result.
type recordingCargo struct {
	calls  []cleanCall
	result adapter.CleanResult
	errFor map[m.Path]error
}

func (r *recordingCargo) Clean(_ context.Context, workDir m.Path, action m.CleanAction) (adapter.CleanResult, error) {
	r.calls = append(r.calls, cleanCall{Dir: workDir, Action: action})

	if err, ok := r.errFor[workDir]; ok {
		return adapter.CleanResult{}, err
	}

	return r.result, nil
}

func (r *recordingCargo) dirs() []m.Path {
	dirs := make([]m.Path, 0, len(r.calls))
	for _, call := range r.calls {
		dirs = append(dirs, call.Dir)
	}

	return dirs
}

// recordingUI keeps what the sweeper reported.
type recordingUI struct {
	cleaning []m.Path
	warnings []error
}

func (r *recordingUI) Start(context.Context, ...controller.StartOption) error { return nil }

func (r *recordingUI) DisplayScanInfo(context.Context, m.Path, uint, m.Config) {}

func (r *recordingUI) DisplayCleaning(_ context.Context, path m.Path, _ []m.CleanAction) {
	r.cleaning = append(r.cleaning, path)
}

func (r *recordingUI) DisplayWarning(_ context.Context, err error) {
	r.warnings = append(r.warnings, err)
}

func (r *recordingUI) DisplaySummary(context.Context, m.Summary) {}

// failingDirFS fails ReadDir for selected paths and delegates everything else.
type failingDirFS struct {
	adapter.DirFSAdapter
	readDirErr map[m.Path]error
}

func (f *failingDirFS) ReadDir(path m.Path) ([]os.FileInfo, error) {
	if err, ok := f.readDirErr[path]; ok {
		return nil, err
	}

	return f.DirFSAdapter.ReadDir(path)
}

func newMemFS(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testRoot, 0o755))

	return fs
}

func mkdirs(t *testing.T, fs afero.Fs, paths ...string) {
	t.Helper()

	for _, p := range paths {
		require.NoError(t, fs.MkdirAll(p, 0o755))
	}
}

func writeFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte("[package]\nname = \"x\"\n"), 0o644))
}

// makeBuildRoot creates a manifest and a target directory under dir.
func makeBuildRoot(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()

	writeFile(t, fs, filepath.Join(dir, m.ManifestFileName))
	mkdirs(t, fs, filepath.Join(dir, m.TargetDirName))
}

func p(elem ...string) m.Path {
	return m.Path(filepath.Join(append([]string{testRoot}, elem...)...))
}
