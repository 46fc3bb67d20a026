package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidMode is matched by every InvalidModeError.
	ErrInvalidMode = zerr.New("invalid build mode, expected 'development' or 'production'")

	// ErrUnknownStep is returned when a transform step or plugin identifier is not in the step catalog.
	ErrUnknownStep = zerr.New("unknown transform step")

	// ErrUnknownOption is returned when a step is configured with an option key it does not accept.
	ErrUnknownOption = zerr.New("unknown option for step")

	// ErrUnknownActivation is returned when a plugin activation name is not recognized.
	ErrUnknownActivation = zerr.New("unknown plugin activation")

	// ErrNotPackagePath is returned when a module path does not resolve into a node_modules package.
	ErrNotPackagePath = zerr.New("module path is not inside a node_modules package")

	// ErrNoRuleMatched is returned when no rule of a plan claims a file.
	ErrNoRuleMatched = zerr.New("no rule matches file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares a version other than "1".
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version, expected \"1\"")

	// ErrInvalidSettings is returned when a settings value is empty or malformed.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrStoreCreateFailed is returned when the plan store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create plan store directory")

	// ErrStoreReadFailed is returned when a saved plan cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read saved plan")

	// ErrStoreUnmarshalFailed is returned when a saved plan cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal saved plan")

	// ErrStoreMarshalFailed is returned when a plan cannot be marshaled for saving.
	ErrStoreMarshalFailed = zerr.New("failed to marshal plan")

	// ErrStoreWriteFailed is returned when a plan cannot be written to the store.
	ErrStoreWriteFailed = zerr.New("failed to write saved plan")

	// ErrPlanNotSaved is returned by check when no snapshot exists for a mode.
	ErrPlanNotSaved = zerr.New("no saved plan for mode, run 'assemble plan --save' first")

	// ErrPlanDrift is returned by check when the evaluated plan differs from the saved one.
	ErrPlanDrift = zerr.New("build plan differs from saved plan")

	// ErrFingerprintFailed is returned when a plan cannot be fingerprinted.
	ErrFingerprintFailed = zerr.New("failed to fingerprint plan")

	// ErrUnknownFormat is returned when an output format is not recognized.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'auto', 'yaml', 'json' or 'text'")

	// ErrEncodeFailed is returned when a plan cannot be written in the requested format.
	ErrEncodeFailed = zerr.New("failed to encode plan")

	// ErrWatchFailed is returned when the config watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch config file")

	// ErrNoPathsSpecified is returned when a command that needs paths receives none.
	ErrNoPathsSpecified = zerr.New("no paths specified")
)

// InvalidModeError reports a build mode that is absent or not one of the recognized values.
type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	if e.Value == "" {
		return "build mode is required, expected 'development' or 'production'"
	}
	return fmt.Sprintf("invalid build mode %q, expected 'development' or 'production'", e.Value)
}

// Is makes errors.Is(err, ErrInvalidMode) hold for any InvalidModeError.
func (e *InvalidModeError) Is(target error) bool {
	return target == ErrInvalidMode
}
