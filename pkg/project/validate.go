package project

import (
	"os"
	"regexp"

	"github.com/menoncello/nimata-sub006/pkg/errors"
)

// namePattern follows npm package name rules: lowercase, URL-safe, not
// starting with a dot or underscore, optionally scoped.
var namePattern = regexp.MustCompile(`^(?:@[a-z0-9][a-z0-9._-]*/)?[a-z0-9][a-z0-9._-]*$`)

const maxNameLength = 214

// ValidateName checks that name works as both a directory name and a
// package.json name field.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrProjectInvalid, "project name is empty")
	case len(name) > maxNameLength:
		return errors.Newf(errors.ErrProjectInvalid, "project name exceeds %d characters", maxNameLength)
	case !namePattern.MatchString(name):
		return errors.Newf(errors.ErrProjectInvalid, "invalid project name %q", name).
			WithSuggestion("use lowercase letters, digits, '.', '-' and '_', starting with a letter or digit")
	}
	return nil
}

// Validate checks every field that does not require filesystem access.
// Target directory checks live in CheckTarget so dry runs can validate
// a Config without touching disk.
func (c Config) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if !c.Type.Valid() {
		return errors.Newf(errors.ErrProjectInvalid, "unknown project type %q", string(c.Type)).
			WithDetail("valid", Types())
	}
	if !c.Quality.Valid() {
		return errors.Newf(errors.ErrProjectInvalid, "unknown quality level %q", string(c.Quality)).
			WithDetail("valid", Qualities())
	}
	if !c.PackageManager.Valid() {
		return errors.Newf(errors.ErrProjectInvalid, "unknown package manager %q", string(c.PackageManager)).
			WithDetail("valid", PackageManagers())
	}
	for _, a := range c.Assistants {
		if !a.Valid() {
			return errors.Newf(errors.ErrProjectInvalid, "unknown assistant %q", string(a)).
				WithDetail("valid", Assistants())
		}
	}
	return nil
}

// CheckTarget verifies the target directory can receive a scaffold. A
// missing directory is fine, an existing file is not, and a non-empty
// directory needs force.
func (c Config) CheckTarget(force bool) error {
	info, err := os.Stat(c.Dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect target %s", c.Dir)
	}

	if !info.IsDir() {
		return errors.Newf(errors.ErrProjectExists, "target %s exists and is not a directory", c.Dir).
			WithSuggestion("pick another project name or remove the file")
	}

	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read target %s", c.Dir)
	}
	if len(entries) > 0 && !force {
		return errors.Newf(errors.ErrTargetNotEmpty, "target %s is not empty", c.Dir).
			WithSuggestion("pass --force to scaffold into a non-empty directory")
	}
	return nil
}
