// Package invocation constructs debugger command invocations from a start
// path, a target script, and a raw argument string. Construction is pure:
// nothing here spawns a process or mutates the environment.
package invocation

import (
	"os"
	"path/filepath"

	"pdbctl/internal/errors"
	"pdbctl/internal/project"
	"pdbctl/internal/validation"

	"github.com/rs/xid"
)

// Invocation is a fully resolved, ready-to-spawn pdb command. Argv is the
// command line; Env holds only the entries a spawner should add on top of
// its own environment.
type Invocation struct {
	ID          string   `json:"id" yaml:"id"`
	ProjectRoot string   `json:"project_root" yaml:"project_root"`
	Python      string   `json:"python,omitempty" yaml:"python,omitempty"`
	BinDir      string   `json:"bin_dir,omitempty" yaml:"bin_dir,omitempty"`
	Script      string   `json:"script" yaml:"script"`
	Argv        []string `json:"argv" yaml:"argv"`
	Env         []string `json:"env,omitempty" yaml:"env,omitempty"`
}

// Builder builds invocations. The zero value uses a default project resolver
// and the real process environment.
type Builder struct {
	Resolver *project.Resolver

	// LookupEnv reads the spawner's environment (for PATH). Nil means
	// os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// Build resolves the project around startPath and returns the pdb invocation
// for script with the sanitized arguments appended. The script is resolved
// relative to the project root when not absolute and must exist as a file.
func (b *Builder) Build(startPath, script, rawArgs string) (*Invocation, error) {
	args, err := validation.Arguments(rawArgs)
	if err != nil {
		return nil, err
	}
	if err := validation.NonEmptyString("script", script); err != nil {
		return nil, err
	}

	resolver := b.resolver()
	root := resolver.FindRoot(startPath)
	pythonExe, binDir := resolver.FindVenv(root)

	scriptPath := script
	if !filepath.IsAbs(scriptPath) {
		scriptPath = filepath.Join(root, scriptPath)
	}
	if info, err := os.Stat(scriptPath); err != nil || info.IsDir() {
		return nil, errors.ScriptNotFound(scriptPath)
	}

	interpreter := pythonExe
	if interpreter == "" {
		platform := resolver.Platform
		if platform == "" {
			platform = project.CurrentPlatform()
		}
		interpreter = platform.SystemPython()
	}

	inv := &Invocation{
		ID:          xid.New().String(),
		ProjectRoot: root,
		Python:      pythonExe,
		BinDir:      binDir,
		Script:      scriptPath,
		Argv:        append([]string{interpreter, "-m", "pdb", scriptPath}, args...),
	}

	if binDir != "" {
		inv.Env = []string{
			"VIRTUAL_ENV=" + filepath.Dir(binDir),
			"PATH=" + b.prependPath(binDir),
		}
	}
	return inv, nil
}

// prependPath puts binDir in front of the spawner's PATH.
func (b *Builder) prependPath(binDir string) string {
	lookup := b.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	path, ok := lookup("PATH")
	if !ok || path == "" {
		return binDir
	}
	return binDir + string(os.PathListSeparator) + path
}

func (b *Builder) resolver() *project.Resolver {
	if b.Resolver == nil {
		return &project.Resolver{}
	}
	return b.Resolver
}
