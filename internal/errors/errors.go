// Package errors provides typed errors for the cacheforge toolkit.
package errors

import "fmt"

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrConfigNotFound     ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigInvalid      ErrorCode = "CONFIG_INVALID"
	ErrWorkspaceNotFound  ErrorCode = "WORKSPACE_NOT_FOUND"
	ErrSnapshotUnreadable ErrorCode = "SNAPSHOT_UNREADABLE"
	ErrAPIAuthMissing     ErrorCode = "API_AUTH_MISSING"
	ErrAPIRequestFailed   ErrorCode = "API_REQUEST_FAILED"
)

// ToolkitError represents a typed error with user-friendly hints.
type ToolkitError struct {
	Code    ErrorCode
	Message string
	HintMsg string
	Cause   error
}

func (e *ToolkitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ToolkitError) Unwrap() error {
	return e.Cause
}

// Hint returns guidance for resolving the error, if any.
func (e *ToolkitError) Hint() string {
	return e.HintMsg
}

// New creates a new ToolkitError.
func New(code ErrorCode, message, hint string) *ToolkitError {
	return &ToolkitError{
		Code:    code,
		Message: message,
		HintMsg: hint,
	}
}

// Wrap creates a new ToolkitError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *ToolkitError {
	return &ToolkitError{
		Code:    code,
		Message: message,
		HintMsg: hint,
		Cause:   cause,
	}
}

// ConfigNotFound returns an error for a missing config file.
func ConfigNotFound(path string) *ToolkitError {
	return &ToolkitError{
		Code:    ErrConfigNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		HintMsg: "Pass flags explicitly or create ~/.config/cacheforge/config.yaml",
	}
}

// ConfigInvalid returns an error for invalid config.
func ConfigInvalid(reason string) *ToolkitError {
	return &ToolkitError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid config: %s", reason),
		HintMsg: "Check your config file at ~/.config/cacheforge/config.yaml",
	}
}

// WorkspaceNotFound returns an error for a missing workspace directory.
func WorkspaceNotFound(path string) *ToolkitError {
	return &ToolkitError{
		Code:    ErrWorkspaceNotFound,
		Message: fmt.Sprintf("workspace not found: %s", path),
		HintMsg: "Pass --workspace or set workspace in your config",
	}
}

// SnapshotUnreadable returns an error for a snapshot that cannot be loaded.
// A diff without one side is meaningless, so this aborts the caller.
func SnapshotUnreadable(path string, cause error) *ToolkitError {
	return &ToolkitError{
		Code:    ErrSnapshotUnreadable,
		Message: fmt.Sprintf("cannot load snapshot: %s", path),
		HintMsg: "Snapshots are written by `cacheforge analyze --snapshot FILE`",
		Cause:   cause,
	}
}

// APIAuthMissing returns an error for a missing API key.
func APIAuthMissing() *ToolkitError {
	return &ToolkitError{
		Code:    ErrAPIAuthMissing,
		Message: "CACHEFORGE_API_KEY is not set",
		HintMsg: "Export it first: export CACHEFORGE_API_KEY=cfk_...",
	}
}

// APIRequestFailed returns an error for a failed API call.
func APIRequestFailed(detail string, cause error) *ToolkitError {
	return &ToolkitError{
		Code:    ErrAPIRequestFailed,
		Message: detail,
		HintMsg: "Check CACHEFORGE_BASE_URL and your network connection",
		Cause:   cause,
	}
}
