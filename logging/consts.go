package logging

const (
	// ServiceName is the DI/service locator name for the logging service.
	ServiceName = "logging"
	emptyString = ""
)

const (
	// EnvLoggingDir overrides the logging prefix.
	EnvLoggingDir = "HPP_LOGGINGDIR"

	envMaxSizeMB  = "HPP_LOGGING_MAX_SIZE_MB"
	envMaxBackups = "HPP_LOGGING_MAX_BACKUPS"
	envMaxAgeDays = "HPP_LOGGING_MAX_AGE_DAYS"
	envCompress   = "HPP_LOGGING_COMPRESS"
	envLevel      = "HPP_LOGGING_LEVEL"
)

const (
	// JournalPackage is the package name under which journals are stored so
	// that every hpp package of a process shares the same journal.
	JournalPackage = "hpp"

	// JournalStem is the file stem of the main journal.
	JournalStem = "journal"
	// BenchmarkStem is the file stem of the benchmark journal.
	BenchmarkStem = "benchmark"
)

// Channel labels of the default channels.
const (
	LabelError     = "ERROR"
	LabelWarning   = "WARNING"
	LabelNotice    = "NOTICE"
	LabelInfo      = "INFO"
	LabelBenchmark = "BENCHMARK"
)

const (
	errMsgNilConfig     = "Logging config is nil."
	errMsgNilService    = "Logger service is nil."
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgLevelInvalid  = "Diagnostics level is invalid."
	errMsgMkdir         = "Failed to create logging directory."
	errMsgOpenJournal   = "Failed to open journal file."
	errMsgCloseJournal  = "Failed to close journal file."
)
