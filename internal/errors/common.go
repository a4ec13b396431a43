package errors

import "fmt"

// Configuration Errors
func ConfigInvalid(reason string) *PdbctlError {
	return NewWithDetails(ErrConfigInvalid, "Invalid configuration", reason)
}

func ConfigParseError(cause error) *PdbctlError {
	return Wrap(ErrConfigParse, "Failed to parse configuration", cause)
}

// Validation Errors
func ValidationFailed(field string, value interface{}, reason string) *PdbctlError {
	return NewWithDetails(ErrValidationFailed, "Validation failed",
		fmt.Sprintf("Field: %s, Value: %v, Reason: %s", field, value, reason))
}

func InvalidInput(reason string) *PdbctlError {
	return NewWithDetails(ErrInvalidInput, "Invalid input", reason)
}

func InvalidCharacter(sequence string) *PdbctlError {
	return NewWithDetails(ErrInvalidInput, "Invalid character in arguments",
		fmt.Sprintf("Sequence: %q", sequence))
}

// Resolution Errors
func VenvNotFound(projectRoot string) *PdbctlError {
	return NewWithDetails(ErrVenvNotFound, "No virtual environment found",
		fmt.Sprintf("Project root: %s", projectRoot))
}

func ScriptNotFound(path string) *PdbctlError {
	return NewWithDetails(ErrScriptNotFound, "Script not found", fmt.Sprintf("Path: %s", path))
}

// Internal Errors
func Internal(message string, cause error) *PdbctlError {
	return Wrap(ErrInternal, message, cause)
}
