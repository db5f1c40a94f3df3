package domain

// Employee is the persisted employee record. ID is assigned by the store.
type Employee struct {
	ID   int64
	Name string
}
