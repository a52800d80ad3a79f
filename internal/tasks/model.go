package tasks

// Task is a single to-do item. UserID always equals the key the task is
// stored under, so a task can never leak into another user's list.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	UserID    string `json:"userId"`
}

// Filter selects tasks by completion status.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterComplete   Filter = "complete"
	FilterIncomplete Filter = "incomplete"
)
