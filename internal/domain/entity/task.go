package entity

// Task is a shared to-do item. Tasks are global, not owned by a user.
type Task struct {
	ID        int64
	Title     string
	Completed bool
}
