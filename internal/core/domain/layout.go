package domain

import "path/filepath"

const (
	// AssembleDirName is the name of the internal project metadata directory.
	AssembleDirName = ".assemble"

	// PlansDirName is the name of the saved plan directory.
	PlansDirName = "plans"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "assemble.yaml"

	// ModeEnvVar names the environment variable consulted when no mode flag is given.
	ModeEnvVar = "ASSEMBLE_MODE"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the permission for files only the owner may read (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultPlanStorePath returns the path of the saved plan directory relative to the project root.
// It joins .assemble and plans.
func DefaultPlanStorePath() string {
	return filepath.Join(AssembleDirName, PlansDirName)
}
