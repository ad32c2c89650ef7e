package logging

import (
	"os"
	"path/filepath"

	"github.com/Station-Manager/errors"
)

// DefaultLoggingDir is the logging prefix used when HPP_LOGGINGDIR is not
// set. Override it at build time with
//
//	-ldflags "-X github.com/laas/hpp-util/logging.DefaultLoggingDir=/var/log"
var DefaultLoggingDir = "/usr/local/var/log"

// GetPrefix returns the directory where all debugging output of packageName
// is stored: $HPP_LOGGINGDIR if set, DefaultLoggingDir/packageName otherwise.
// packageName must be a valid file name; it is ignored when empty.
func GetPrefix(packageName string) string {
	if env, ok := os.LookupEnv(EnvLoggingDir); ok && env != emptyString {
		return env
	}
	if packageName == emptyString {
		return DefaultLoggingDir
	}
	return filepath.Join(DefaultLoggingDir, packageName)
}

// GetFilename returns the path of filename in the logging prefix of
// packageName, creating the missing parent directories.
func GetFilename(filename, packageName string) (string, error) {
	return joinAndMkdir(GetPrefix(packageName), filename)
}

func joinAndMkdir(dir, filename string) (string, error) {
	const op errors.Op = "logging.GetFilename"
	res := filepath.Join(dir, filename)
	if err := os.MkdirAll(filepath.Dir(res), 0o755); err != nil {
		return emptyString, errors.New(op).Err(err).Msg(errMsgMkdir)
	}
	return res, nil
}
