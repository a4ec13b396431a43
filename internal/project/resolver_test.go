package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors t.Chdir (Go 1.24+) for older toolchains: it changes the
// working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

// noEnv is a lookup that sees no environment variables at all
func noEnv(string) (string, bool) {
	return "", false
}

// envWith returns a lookup exposing only the given variables
func envWith(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// makeVenv creates a POSIX-layout venv under dir and returns the interpreter
// and bin directory paths
func makeVenv(t *testing.T, dir, name string) (python, bin string) {
	t.Helper()
	bin = filepath.Join(dir, name, "bin")
	require.NoError(t, os.MkdirAll(bin, 0755))
	python = filepath.Join(bin, "python")
	require.NoError(t, os.WriteFile(python, nil, 0755))
	return python, bin
}

func testResolver() *Resolver {
	return &Resolver{Platform: "linux", LookupEnv: noEnv}
}

func TestFindRootWithPyprojectToml(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "my_project")
	srcDir := filepath.Join(projectDir, "src", "package")
	require.NoError(t, os.MkdirAll(srcDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "pyproject.toml"), nil, 0644))

	assert.Equal(t, projectDir, testResolver().FindRoot(srcDir))
}

func TestFindRootWithGitDirectory(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "my_project")
	nested := filepath.Join(projectDir, "src", "deep", "nested")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(projectDir, ".git"), 0755))

	assert.Equal(t, projectDir, testResolver().FindRoot(nested))
}

func TestFindRootWithGitFile(t *testing.T) {
	// Git worktrees use a .git file instead of a directory
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "worktree")
	nested := filepath.Join(projectDir, "src")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, ".git"), []byte("gitdir: elsewhere\n"), 0644))

	assert.Equal(t, projectDir, testResolver().FindRoot(nested))
}

func TestFindRootWithSetupPy(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "my_project")
	srcDir := filepath.Join(projectDir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "setup.py"), nil, 0644))

	assert.Equal(t, projectDir, testResolver().FindRoot(srcDir))
}

func TestFindRootWithRequirementsTxt(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "my_project")
	srcDir := filepath.Join(projectDir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "requirements.txt"), nil, 0644))

	assert.Equal(t, projectDir, testResolver().FindRoot(srcDir))
}

func TestFindRootFallsBackToStartPath(t *testing.T) {
	tmp := t.TempDir()
	empty := filepath.Join(tmp, "no_project", "nested")
	require.NoError(t, os.MkdirAll(empty, 0755))

	assert.Equal(t, empty, testResolver().FindRoot(empty))
}

func TestFindRootPrefersClosestMarker(t *testing.T) {
	tmp := t.TempDir()
	outer := filepath.Join(tmp, "outer")
	inner := filepath.Join(outer, "inner")
	srcDir := filepath.Join(inner, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(outer, "pyproject.toml"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inner, "pyproject.toml"), nil, 0644))

	assert.Equal(t, inner, testResolver().FindRoot(srcDir))
}

func TestFindRootNonexistentStartPath(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "pyproject.toml"), nil, 0644))

	// The start path does not exist on disk; only ancestor probes do
	ghost := filepath.Join(projectDir, "not", "created", "yet")
	assert.Equal(t, projectDir, testResolver().FindRoot(ghost))
}

func TestFindRootRelativeStartPath(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	srcDir := filepath.Join(projectDir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "pyproject.toml"), nil, 0644))

	// "." must walk the real parents of the working directory
	chdir(t, srcDir)
	assert.Equal(t, projectDir, testResolver().FindRoot("."))
}

func TestFindRootRelativeFallbackKeepsInput(t *testing.T) {
	tmp := t.TempDir()
	empty := filepath.Join(tmp, "no_project", "nested")
	require.NoError(t, os.MkdirAll(empty, 0755))

	chdir(t, empty)
	assert.Equal(t, ".", testResolver().FindRoot("."))
}

func TestFindRootWithExtraMarkers(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	srcDir := filepath.Join(projectDir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "Pipfile"), nil, 0644))

	r := testResolver()
	assert.Equal(t, srcDir, r.FindRoot(srcDir))

	r.ExtraMarkers = []string{"Pipfile"}
	assert.Equal(t, projectDir, r.FindRoot(srcDir))
}

func TestFindVenvInProjectRoot(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	python, bin := makeVenv(t, projectDir, ".venv")

	gotPython, gotBin := testResolver().FindVenv(projectDir)
	assert.Equal(t, python, gotPython)
	assert.Equal(t, bin, gotBin)
}

func TestFindVenvNamedVenv(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	python, bin := makeVenv(t, projectDir, "venv")

	gotPython, gotBin := testResolver().FindVenv(projectDir)
	assert.Equal(t, python, gotPython)
	assert.Equal(t, bin, gotBin)
}

func TestFindVenvPrefersDotVenv(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	dotPython, _ := makeVenv(t, projectDir, ".venv")
	makeVenv(t, projectDir, "venv")

	gotPython, _ := testResolver().FindVenv(projectDir)
	assert.Equal(t, dotPython, gotPython)
}

func TestFindVenvPrefersProjectVenvOverVirtualEnvVariable(t *testing.T) {
	// When pdbctl itself runs inside a wrapper's venv, VIRTUAL_ENV points
	// at the wrapper's environment, not the debuggee's
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	projectPython, projectBin := makeVenv(t, projectDir, ".venv")

	otherVenv := filepath.Join(tmp, "wrapper_env")
	makeVenv(t, tmp, "wrapper_env")

	r := &Resolver{
		Platform:  "linux",
		LookupEnv: envWith(map[string]string{"VIRTUAL_ENV": otherVenv}),
	}
	gotPython, gotBin := r.FindVenv(projectDir)
	assert.Equal(t, projectPython, gotPython)
	assert.Equal(t, projectBin, gotBin)
}

func TestFindVenvFallsBackToVirtualEnvVariable(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))

	envVenv := filepath.Join(tmp, "some_env")
	envPython, envBin := makeVenv(t, tmp, "some_env")

	r := &Resolver{
		Platform:  "linux",
		LookupEnv: envWith(map[string]string{"VIRTUAL_ENV": envVenv}),
	}
	gotPython, gotBin := r.FindVenv(projectDir)
	assert.Equal(t, envPython, gotPython)
	assert.Equal(t, envBin, gotBin)
}

func TestFindVenvFallsBackToCondaPrefix(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))

	condaEnv := filepath.Join(tmp, "conda_env")
	condaPython, condaBin := makeVenv(t, tmp, "conda_env")

	r := &Resolver{
		Platform:  "linux",
		LookupEnv: envWith(map[string]string{"CONDA_PREFIX": condaEnv}),
	}
	gotPython, gotBin := r.FindVenv(projectDir)
	assert.Equal(t, condaPython, gotPython)
	assert.Equal(t, condaBin, gotBin)
}

func TestFindVenvVirtualEnvBeforeCondaPrefix(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))

	virtualEnv := filepath.Join(tmp, "venv_env")
	venvPython, _ := makeVenv(t, tmp, "venv_env")
	condaEnv := filepath.Join(tmp, "conda_env")
	makeVenv(t, tmp, "conda_env")

	r := &Resolver{
		Platform: "linux",
		LookupEnv: envWith(map[string]string{
			"VIRTUAL_ENV":  virtualEnv,
			"CONDA_PREFIX": condaEnv,
		}),
	}
	gotPython, _ := r.FindVenv(projectDir)
	assert.Equal(t, venvPython, gotPython)
}

func TestFindVenvRelativeProjectRoot(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	python, bin := makeVenv(t, projectDir, ".venv")

	chdir(t, projectDir)
	gotPython, gotBin := testResolver().FindVenv(".")
	assert.Equal(t, python, gotPython)
	assert.Equal(t, bin, gotBin)
}

func TestFindVenvInParentDirectory(t *testing.T) {
	tmp := t.TempDir()
	parentDir := filepath.Join(tmp, "parent")
	projectDir := filepath.Join(parentDir, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	python, bin := makeVenv(t, parentDir, ".venv")

	gotPython, gotBin := testResolver().FindVenv(projectDir)
	assert.Equal(t, python, gotPython)
	assert.Equal(t, bin, gotBin)
}

func TestFindVenvReturnsEmptyWhenNothingResolves(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))

	gotPython, gotBin := testResolver().FindVenv(projectDir)
	assert.Empty(t, gotPython)
	assert.Empty(t, gotBin)
}

func TestFindVenvIgnoresVenvDirWithoutInterpreter(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(projectDir, ".venv", "bin"), 0755))

	gotPython, _ := testResolver().FindVenv(projectDir)
	assert.Empty(t, gotPython)
}

func TestFindVenvIgnoresStaleVirtualEnvVariable(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))

	r := &Resolver{
		Platform:  "linux",
		LookupEnv: envWith(map[string]string{"VIRTUAL_ENV": filepath.Join(tmp, "deleted_env")}),
	}
	gotPython, gotBin := r.FindVenv(projectDir)
	assert.Empty(t, gotPython)
	assert.Empty(t, gotBin)
}

func TestFindVenvWindowsLayout(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	scripts := filepath.Join(projectDir, ".venv", "Scripts")
	require.NoError(t, os.MkdirAll(scripts, 0755))
	python := filepath.Join(scripts, "python.exe")
	require.NoError(t, os.WriteFile(python, nil, 0755))

	r := &Resolver{Platform: Windows, LookupEnv: noEnv}
	gotPython, gotBin := r.FindVenv(projectDir)
	assert.Equal(t, python, gotPython)
	assert.Equal(t, scripts, gotBin)
}

func TestFindVenvWithExtraNames(t *testing.T) {
	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	python, _ := makeVenv(t, projectDir, ".virtualenv")

	r := testResolver()
	gotPython, _ := r.FindVenv(projectDir)
	assert.Empty(t, gotPython)

	r.ExtraVenvNames = []string{".virtualenv"}
	gotPython, _ = r.FindVenv(projectDir)
	assert.Equal(t, python, gotPython)
}

func TestPlatformConventions(t *testing.T) {
	assert.Equal(t, "Scripts", Windows.BinDirName())
	assert.Equal(t, "python.exe", Windows.PythonName())
	assert.Equal(t, "python", Windows.SystemPython())

	linux := Platform("linux")
	assert.Equal(t, "bin", linux.BinDirName())
	assert.Equal(t, "python", linux.PythonName())
	assert.Equal(t, "python3", linux.SystemPython())
}

func TestWalkAncestorsStopsAtFilesystemRoot(t *testing.T) {
	var visited []string
	result := walkAncestors(filepath.Join(string(filepath.Separator), "a", "b"), func(dir string) bool {
		visited = append(visited, dir)
		return false
	})
	assert.Empty(t, result)
	assert.Equal(t, string(filepath.Separator), visited[len(visited)-1])
}
