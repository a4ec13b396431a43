package project

import "runtime"

// Platform identifies the operating system convention used when probing a
// virtual environment for its interpreter. Only the Windows layout differs;
// every other value uses the POSIX layout.
type Platform string

// Windows is the platform whose venvs use Scripts\python.exe.
const Windows Platform = "windows"

// CurrentPlatform returns the platform of the running process.
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// BinDirName returns the name of the executable directory inside a venv.
func (p Platform) BinDirName() string {
	if p == Windows {
		return "Scripts"
	}
	return "bin"
}

// PythonName returns the interpreter filename inside a venv's bin directory.
func (p Platform) PythonName() string {
	if p == Windows {
		return "python.exe"
	}
	return "python"
}

// SystemPython returns the interpreter name to fall back on when no venv
// resolves at all.
func (p Platform) SystemPython() string {
	if p == Windows {
		return "python"
	}
	return "python3"
}
