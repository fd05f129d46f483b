package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an insert or update hits the
	// unique login constraint.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrEmailAlreadyExists is returned when an insert or update hits the
	// unique email constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrPhoneAlreadyExists is returned when an insert or update hits the
	// unique phone constraint.
	ErrPhoneAlreadyExists = errors.New("phone already exists")

	// ErrSolutionUUIDAlreadyExists is returned when a solution insert or
	// update hits the idx_solution_uuid index.
	ErrSolutionUUIDAlreadyExists = errors.New("solution uuid already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSolutionNotFound is returned when no solution matches the id or
	// uuid.
	ErrSolutionNotFound = errors.New("solution was not found")

	// ErrCacheMiss is returned by [Cache.Get] when the key is absent.
	ErrCacheMiss = errors.New("cache miss")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// postgres nor sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
