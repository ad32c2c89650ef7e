package logging

import (
	"fmt"
	"os"

	"github.com/Station-Manager/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// journalFilename returns the per-process file name of a journal stem.
func journalFilename(stem string) string {
	if stem == emptyString {
		stem = JournalStem
	}
	return fmt.Sprintf("%s.%d.log", stem, os.Getpid())
}

// resolveJournalPath returns the full path of a journal, creating its
// directory. cfg.Dir replaces the prefix resolution when set.
func resolveJournalPath(stem string, cfg *Config) (string, error) {
	name := journalFilename(stem)
	if cfg.Dir != emptyString {
		return joinAndMkdir(cfg.Dir, name)
	}
	pkg := cfg.PackageName
	if pkg == emptyString {
		pkg = JournalPackage
	}
	return GetFilename(name, pkg)
}

// openRollingFile returns a rotating writer opened on path. lumberjack opens
// lazily, so an empty write forces the open and surfaces I/O errors now.
func openRollingFile(path string, cfg *Config) (*lumberjack.Logger, error) {
	const op errors.Op = "logging.openRollingFile"
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.JournalMaxSizeMB,
		MaxBackups: cfg.JournalMaxBackups,
		MaxAge:     cfg.JournalMaxAgeDays,
		Compress:   cfg.JournalCompress,
	}
	if _, err := lj.Write(nil); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgOpenJournal)
	}
	return lj, nil
}
