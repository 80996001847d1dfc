// ABOUTME: Validators for the directory options a framework is started with
// ABOUTME: Each option role has its own policy for missing values
package validator

// ErrorFunc builds the error returned by a failed validation.
type ErrorFunc func(msg string) error

const (
	msgParentNotSet     = "options.parentDirectory not set."
	msgParentMissing    = "options.parentDirectory doesn't exist."
	msgApplicationValid = "options.applicationDirectory doesn't exist or is not a directory."
	msgPluginValid      = "options.pluginDirectory doesn't exist or is not a directory."
)

// ParentDir validates the mandatory parent directory.
func ParentDir(dir string, newErr ErrorFunc) (string, error) {
	if dir == "" {
		return "", newErr(msgParentNotSet)
	}
	if d := DirExists(dir); d.Exists() {
		return d.Path(), nil
	}
	return "", newErr(msgParentMissing)
}

// ApplicationDir validates the application directory, returning
// defaultDir when dir is empty. The default itself is not checked.
func ApplicationDir(dir, defaultDir string, newErr ErrorFunc) (string, error) {
	if dir == "" {
		return defaultDir, nil
	}
	if d := DirExists(dir); d.Exists() {
		return d.Path(), nil
	}
	return "", newErr(msgApplicationValid)
}

// PluginDir validates the optional plugin directory. An empty dir is not an
// error and yields Absent.
func PluginDir(dir string, newErr ErrorFunc) (Dir, error) {
	if dir == "" {
		return Absent, nil
	}
	if d := DirExists(dir); d.Exists() {
		return d, nil
	}
	return Absent, newErr(msgPluginValid)
}
