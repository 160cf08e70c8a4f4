package persistence

// OnClose selects what happens to a still-open transaction when the unit of
// work is closed. The zero value rolls back, so a forgotten Commit can never
// persist half-finished work.
type OnClose int

const (
	// OnCloseRollback discards an open transaction on Close (default)
	OnCloseRollback OnClose = iota
	// OnCloseCommit commits an open transaction on Close
	OnCloseCommit
)

// UnitOfWork coordinates writes across multiple repositories inside a single
// database transaction. A unit of work owns one connection and at most one
// transaction at a time, and is not safe for concurrent use.
type UnitOfWork interface {
	// BeginTransaction starts a new transaction.
	// Returns ErrTransactionActive if one is already open.
	BeginTransaction() error

	// Commit commits the open transaction.
	// Returns ErrNoTransaction if none is open.
	Commit() error

	// Rollback discards the open transaction.
	// Returns ErrNoTransaction if none is open.
	Rollback() error

	// Companies returns a company repository owned by this unit of work.
	// While a transaction is open the repository operates inside it.
	// Instances must not be cached across unit of work boundaries.
	Companies() CompanyRepository

	// Departments returns a department repository owned by this unit of work
	Departments() DepartmentRepository

	// Employees returns an employee repository owned by this unit of work
	Employees() EmployeeRepository

	// Passports returns a passport repository owned by this unit of work
	Passports() PassportRepository

	// Close releases the unit of work. A still-open transaction is resolved
	// according to the OnClose disposition the unit was created with.
	// Close is idempotent, repeated calls are no-ops.
	Close() error
}

// UnitOfWorkFactory creates independent units of work, one per logical
// operation. Factories are safe for concurrent use.
type UnitOfWorkFactory interface {
	// Create returns a fresh unit of work with the given close disposition
	Create(onClose OnClose) UnitOfWork
}
