package employees

// Repo defines the interface for employee directory storage.
type Repo interface {
	// Upsert creates or updates an employee, assigning an ID when empty
	Upsert(employee *Employee) error

	// GetByID retrieves an employee by ID
	GetByID(id string) (*Employee, error)

	// GetByEmail retrieves an employee by email address
	GetByEmail(email string) (*Employee, error)

	// List returns all employees ordered by name
	List() ([]*Employee, error)
}
