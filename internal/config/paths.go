package config

import (
	"os"
	"path/filepath"

	apperrors "github.com/nconklindev/hitlisten/internal/errors"

	"github.com/kelseyhightower/envconfig"
)

// DataKind names a data directory below <root>/data.
type DataKind string

const (
	Raw       DataKind = "raw"
	Processed DataKind = "processed"
	Interim   DataKind = "interim"
	External  DataKind = "external"
)

var dataKinds = []DataKind{Raw, Processed, Interim, External}

// ParseDataKind rejects anything but the four known kinds.
func ParseDataKind(s string) (DataKind, error) {
	for _, k := range dataKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", apperrors.ConfigInvalid("data kind must be one of %v, got %q", dataKinds, s)
}

type rootSpec struct {
	Root string `envconfig:"HITLISTEN_ROOT"`
}

// ProjectRoot is HITLISTEN_ROOT, or the working directory when unset.
func ProjectRoot() (string, error) {
	var spec rootSpec
	if err := envconfig.Process("", &spec); err != nil {
		return "", apperrors.WithCode(apperrors.CodeConfigInvalid, err, "failed to read HITLISTEN_ROOT")
	}
	if spec.Root != "" {
		return filepath.Abs(spec.Root)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", apperrors.Wrap(err, "failed to resolve working directory")
	}
	return wd, nil
}

// DataPath returns <root>/data/<kind>. The kind is checked before any I/O.
func DataPath(root, kind string) (string, error) {
	k, err := ParseDataKind(kind)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "data", string(k)), nil
}
