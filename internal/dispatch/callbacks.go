package dispatch

import "errors"

// Callbacks is the capability surface the dispatcher calls out to. The
// policy half decides routing, the transport half moves payloads, the
// reporting half surfaces task outcomes. Callbacks are always invoked
// with no dispatcher lock held, and a panic inside one is recovered and
// converted to an error.
type Callbacks interface {
	// NextStage returns the type that should process the task next,
	// given the types that already did. Returning an empty type with a
	// nil error means the task is done.
	NextStage(taskID TaskID, payload []byte, path []ExecutorType) (ExecutorType, error)

	// SendTask hands the payload to the transport for delivery to the
	// executor. A nil return means accepted-for-delivery.
	SendTask(eID ExecutorID, taskID TaskID, payload []byte) error

	// DisconnectExecutor tells the transport to drop the executor. It is
	// best effort; errors are logged and swallowed.
	DisconnectExecutor(eID ExecutorID) error

	// TaskError reports a terminal task failure. The task has already
	// been removed when it fires.
	TaskError(taskID TaskID, message string) error

	// TaskProcessed reports a completed stage. An error aborts further
	// processing of the completion.
	TaskProcessed(taskID TaskID, payload []byte, eType ExecutorType) error
}

// noCallbacks is the default Callbacks until SetCallbacks is invoked.
type noCallbacks struct{}

func (noCallbacks) NextStage(TaskID, []byte, []ExecutorType) (ExecutorType, error) {
	return "", errors.New("no dispatch callback defined")
}

func (noCallbacks) SendTask(ExecutorID, TaskID, []byte) error {
	return errors.New("no send task callback defined")
}

func (noCallbacks) DisconnectExecutor(ExecutorID) error {
	return errors.New("no disconnect callback defined")
}

func (noCallbacks) TaskError(TaskID, string) error {
	return errors.New("no error callback defined")
}

func (noCallbacks) TaskProcessed(TaskID, []byte, ExecutorType) error {
	return nil
}
