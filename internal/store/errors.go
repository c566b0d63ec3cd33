package store

import "errors"

// Sentinel errors returned by the store layer to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrListenerNotRunning is returned by [ChangeListener.Subscribe] while the
	// listener has no live LISTEN connection (not started yet or reconnecting).
	ErrListenerNotRunning = errors.New("change listener is not running")

	// ErrUnsupportedFilter is returned by [ChangeListener.Subscribe] when the
	// subscription filters on a column the change feed does not carry.
	ErrUnsupportedFilter = errors.New("change feed cannot filter on this column")

	// ErrInvalidChangePayload is returned when a NOTIFY payload cannot be
	// decoded into a change event.
	ErrInvalidChangePayload = errors.New("invalid change notification payload")

	// ErrConnectingDatabase is returned when the hosted database cannot be
	// opened or does not answer a ping.
	ErrConnectingDatabase = errors.New("error connecting database")

	// ErrEmptyPreferenceKey is returned when a preference is read or written
	// with an empty key.
	ErrEmptyPreferenceKey = errors.New("preference key is empty")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingPayload is returned when a jsonb payload column holds
	// something other than a JSON object.
	ErrDecodingPayload = errors.New("failed to decode notification payload")
)
