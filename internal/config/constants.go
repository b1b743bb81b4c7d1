package config

// Application constants for the UIDAI data preprocessor.
const (
	// Application info
	AppName    = "UIDAI Data Preprocessor"
	AppVersion = "1.0.0"

	// Environment variable prefix: UIDAI_INPUT_DIR, UIDAI_LOGGING_LEVEL, ...
	EnvPrefix = "UIDAI"

	// Optional config file, looked up relative to the working directory.
	ConfigFileName = "config.yaml"

	// Output artifact defaults
	DefaultSnapshotFile = "processed_data.json"
	DefaultLoaderFile   = "load_data.html"
	DefaultSummaryCSV   = "region_summary.csv"
	DefaultTopN         = 10

	// Browser-side persistence identifiers embedded in the loader artifact.
	// The dashboard reads the snapshot back out of IndexedDB under this key.
	IndexedDBName    = "UIDAI_Analytics_DB"
	IndexedDBVersion = 1
	IndexedDBStore   = "enrolment_data"
	DatasetID        = "current_dataset"

	// Log settings
	DefaultLogLevel = "info"
	DefaultLogFile  = "logs/preprocessor.log"
)
