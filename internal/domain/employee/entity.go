package employee

// Employee is immutable reference data. The directory is loaded once at
// startup and never mutated afterwards.
type Employee struct {
	ID         int
	Name       string
	Email      string
	Department string
}
