// Package project locates the root of a Python project and the interpreter
// belonging to its virtual environment.
//
// All lookups are stateless, read-only probes of the filesystem and process
// environment. Environment access and platform identity are injectable so
// resolution is deterministic under test.
package project

import (
	"os"
	"path/filepath"
)

// rootMarkers are files/directories that indicate a project root, in the
// order they are probed. Any match qualifies a directory; only proximity to
// the start path decides between nested projects.
var rootMarkers = []string{
	"pyproject.toml",
	".git",
	"setup.py",
	"requirements.txt",
}

// venvDirNames are the conventional virtual environment directory names, in
// preference order.
var venvDirNames = []string{
	".venv",
	"venv",
}

// venvEnvVars are the ambient environment variables consulted, in order, only
// after project-local discovery has failed everywhere up to the filesystem
// root. A wrapping launcher (uv, poetry, an activated shell) sets VIRTUAL_ENV
// to its own environment; trusting it before the project's own venv would
// debug the wrong interpreter.
var venvEnvVars = []string{
	"VIRTUAL_ENV",
	"CONDA_PREFIX",
}

// Resolver resolves project roots and virtual environment details. The zero
// value resolves for the current platform against the real process
// environment.
type Resolver struct {
	// Platform selects the venv interpreter layout. Empty means the
	// platform of the running process.
	Platform Platform

	// LookupEnv reads a process environment variable. Nil means
	// os.LookupEnv.
	LookupEnv func(key string) (string, bool)

	// ExtraMarkers are additional root marker names probed after the
	// built-in set.
	ExtraMarkers []string

	// ExtraVenvNames are additional venv directory names probed after
	// .venv and venv.
	ExtraVenvNames []string
}

// FindRoot walks upward from startPath and returns the closest directory
// containing a project marker. A relative startPath is resolved against the
// working directory first, so the walk visits its real parents. When no
// ancestor up to the filesystem root has one, it returns startPath
// unchanged; FindRoot never fails.
func (r *Resolver) FindRoot(startPath string) string {
	root := walkAncestors(absolute(startPath), r.hasMarker)
	if root == "" {
		return startPath
	}
	return root
}

// FindVenv returns the python executable and bin directory of the virtual
// environment belonging to projectRoot, or ("", "") when nothing resolves.
//
// Resolution order: .venv then venv inside projectRoot, the same pair at
// each ancestor up to the filesystem root, then VIRTUAL_ENV, then
// CONDA_PREFIX. Project-local discovery always wins over the ambient
// variables. FindVenv never fails.
func (r *Resolver) FindVenv(projectRoot string) (pythonExe, binDir string) {
	walkAncestors(absolute(projectRoot), func(dir string) bool {
		pythonExe, binDir = r.venvAt(dir)
		return pythonExe != ""
	})
	if pythonExe != "" {
		return pythonExe, binDir
	}

	for _, key := range venvEnvVars {
		envRoot, ok := r.lookupEnv(key)
		if !ok || envRoot == "" {
			continue
		}
		if py, bin := r.interpreterUnder(envRoot); py != "" {
			return py, bin
		}
	}
	return "", ""
}

// venvAt probes dir for a venv directory by each candidate name.
func (r *Resolver) venvAt(dir string) (string, string) {
	for _, name := range r.venvNames() {
		if py, bin := r.interpreterUnder(filepath.Join(dir, name)); py != "" {
			return py, bin
		}
	}
	return "", ""
}

// interpreterUnder returns the interpreter and bin dir under a venv root,
// or ("", "") when the interpreter does not exist as a regular file.
func (r *Resolver) interpreterUnder(envRoot string) (string, string) {
	platform := r.platform()
	bin := filepath.Join(envRoot, platform.BinDirName())
	py := filepath.Join(bin, platform.PythonName())
	if !isFile(py) {
		return "", ""
	}
	return py, bin
}

func (r *Resolver) hasMarker(dir string) bool {
	for _, marker := range r.markers() {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func (r *Resolver) markers() []string {
	if len(r.ExtraMarkers) == 0 {
		return rootMarkers
	}
	return append(append([]string{}, rootMarkers...), r.ExtraMarkers...)
}

func (r *Resolver) venvNames() []string {
	if len(r.ExtraVenvNames) == 0 {
		return venvDirNames
	}
	return append(append([]string{}, venvDirNames...), r.ExtraVenvNames...)
}

func (r *Resolver) platform() Platform {
	if r.Platform == "" {
		return CurrentPlatform()
	}
	return r.Platform
}

func (r *Resolver) lookupEnv(key string) (string, bool) {
	if r.LookupEnv == nil {
		return os.LookupEnv(key)
	}
	return r.LookupEnv(key)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// absolute resolves path against the working directory; the ancestor walk is
// lexical, so a relative path would otherwise stop at "." without ever
// visiting the real parents. The input is kept as-is when resolution fails.
func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

var defaultResolver = &Resolver{}

// FindRoot resolves the project root for startPath using the default
// resolver.
func FindRoot(startPath string) string {
	return defaultResolver.FindRoot(startPath)
}

// FindVenv resolves venv details for projectRoot using the default resolver.
func FindVenv(projectRoot string) (pythonExe, binDir string) {
	return defaultResolver.FindVenv(projectRoot)
}
