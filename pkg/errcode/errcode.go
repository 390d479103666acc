package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBStoreOpenError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaCollationError

	// Dataset errors
	DatasetManifestError
	DatasetSourceConfigError
	DatasetSourceUnavailableError

	// Import errors
	ImportMissingDependencyError
	ImportPersistenceError
	ImportSinkReadError
	ImportRolledBackError
	ImportAlreadyRunningError
	ImportCancelledError

	// Metrics errors
	MetricsWriteError
)
