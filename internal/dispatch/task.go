package dispatch

import "time"

// ExecutorID identifies a connected executor. It is unique while the
// executor stays connected.
type ExecutorID string

// ExecutorType groups interchangeable executors. The dispatch policy
// selects at this granularity.
type ExecutorType string

// TaskID identifies a task for its lifetime in the dispatcher.
type TaskID string

// task is the dispatcher's record of a live task.
type task struct {
	id      TaskID
	payload []byte

	// pathExecuted holds the types that have processed the task, in
	// visit order.
	pathExecuted []ExecutorType

	// eType is the type the task is currently queued or frozen for.
	// Empty means none.
	eType ExecutorType

	frozenSince   time.Time
	frozenTime    time.Duration
	frozenCount   int
	frozenMessage string

	sendTime time.Time
	retries  int
}

func newTask(id TaskID, payload []byte) *task {
	return &task{
		id:      id,
		payload: payload,
	}
}

func (t *task) path() []ExecutorType {
	p := make([]ExecutorType, len(t.pathExecuted))
	copy(p, t.pathExecuted)
	return p
}
