package dispatch

import (
	"log"
	"sync"
	"time"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// ExecutorQueues holds the per-type FIFO lines of tasks waiting for an
// executor, plus a reverse index from task to the type it waits for. All
// methods are safe for concurrent use.
type ExecutorQueues struct {
	log *log.Logger

	mu          sync.Mutex
	queues      map[ExecutorType]*doublylinkedlist.List
	lastUse     map[ExecutorType]time.Time
	taskInQueue map[TaskID]ExecutorType
}

// NewExecutorQueues returns empty ExecutorQueues.
func NewExecutorQueues(log *log.Logger) *ExecutorQueues {
	return &ExecutorQueues{
		log:         log,
		queues:      make(map[ExecutorType]*doublylinkedlist.List),
		lastUse:     make(map[ExecutorType]time.Time),
		taskInQueue: make(map[TaskID]ExecutorType),
	}
}

// PushTask appends taskID to the queue for eType and returns the new
// queue length. Pushing a task already queued for the same type is a
// no-op returning the current length. Pushing a task queued for another
// type is a caller invariant violation and returns zero. Tasks reinserted
// after an executor loss or a failed send pass ahead=true to jump the
// queue.
func (q *ExecutorQueues) PushTask(eType ExecutorType, taskID TaskID, ahead bool) int {
	q.log.Printf("Pushing task %s into waiting queue for executor %s", taskID, eType)
	q.mu.Lock()
	defer q.mu.Unlock()

	if inType, ok := q.taskInQueue[taskID]; ok {
		if inType != eType {
			q.log.Printf("FATAL: task %s cannot be queued because it's already queued for %s", taskID, inType)
			return 0
		}
		return q.queues[eType].Size()
	}

	queue, ok := q.queues[eType]
	if !ok {
		queue = doublylinkedlist.New()
		q.queues[eType] = queue
	}
	q.lastUse[eType] = time.Now()
	if ahead {
		queue.Prepend(taskID)
	} else {
		queue.Append(taskID)
	}
	q.taskInQueue[taskID] = eType

	return queue.Size()
}

// PopTask removes and returns the head of the queue for eType.
func (q *ExecutorQueues) PopTask(eType ExecutorType) (TaskID, bool) {
	q.mu.Lock()

	queue, ok := q.queues[eType]
	if !ok {
		q.mu.Unlock()
		return "", false
	}
	head, ok := queue.Get(0)
	if !ok {
		q.mu.Unlock()
		return "", false
	}
	queue.Remove(0)
	taskID := head.(TaskID)
	delete(q.taskInQueue, taskID)
	q.lastUse[eType] = time.Now()
	q.mu.Unlock()

	q.log.Printf("Popped task %s from executor %s waiting queue", taskID, eType)
	return taskID, true
}

// DeleteTask removes taskID from whichever queue holds it.
func (q *ExecutorQueues) DeleteTask(taskID TaskID) bool {
	q.log.Printf("Deleting task %s from waiting queues", taskID)
	q.mu.Lock()
	defer q.mu.Unlock()

	eType, ok := q.taskInQueue[taskID]
	if !ok {
		return false
	}
	delete(q.taskInQueue, taskID)
	q.lastUse[eType] = time.Now()

	queue := q.queues[eType]
	it := queue.Iterator()
	for it.Next() {
		if it.Value().(TaskID) == taskID {
			queue.Remove(it.Index())
			return true
		}
	}

	return false
}

// WaitingTasks returns how many tasks wait for eType.
func (q *ExecutorQueues) WaitingTasks(eType ExecutorType) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	queue, ok := q.queues[eType]
	if !ok {
		return 0
	}
	return queue.Size()
}

// ExecutorList returns the types that have a queue.
func (q *ExecutorQueues) ExecutorList() []ExecutorType {
	q.mu.Lock()
	defer q.mu.Unlock()

	var eTypes []ExecutorType
	for eType := range q.queues {
		eTypes = append(eTypes, eType)
	}

	return eTypes
}

// State returns a snapshot of every queue for diagnostics.
func (q *ExecutorQueues) State() map[ExecutorType][]TaskID {
	q.mu.Lock()
	defer q.mu.Unlock()

	state := make(map[ExecutorType][]TaskID)
	for eType, queue := range q.queues {
		tasks := make([]TaskID, 0, queue.Size())
		it := queue.Iterator()
		for it.Next() {
			tasks = append(tasks, it.Value().(TaskID))
		}
		state[eType] = tasks
	}

	return state
}
