package catalog

// Schema file names inside the embedded schema FS
const (
	SchemaFileName = "catalog.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgSchemaFailed       = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Registration error messages
const (
	ErrMsgRegisterStatsFailed = "failed to register stats: %w"
	ErrMsgRegisterItemFailed  = "failed to register item '%s': %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogApplied = "Catalog applied"
	LogMsgItemRegistered = "Registered item type"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtFieldInvalid       = "%w: %s failed on '%s'"
	ErrFmtDuplicateItem      = "%w: item '%s'"
	ErrFmtDuplicateStat      = "%w: stat '%s'"
	ErrFmtItemUndeclaredStat = "%w: item '%s' boosts undeclared stat '%s'"
)
