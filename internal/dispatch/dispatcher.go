package dispatch

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"code.cloudfoundry.org/task-dispatcher/internal/metrics"
)

// maxFreezes is the freeze count at which a task stops being retried
// and terminates instead.
const maxFreezes = 10

// Dispatcher routes tasks through a dynamic pool of typed executors. It
// owns the task table, the freezer for retry back-off, and the loop that
// drains per-type queues into idle executors.
type Dispatcher struct {
	log *log.Logger

	executorsMu sync.Mutex
	idMap       map[ExecutorID]ExecutorType
	execTypes   map[ExecutorType]int

	tasksMu sync.Mutex
	tasks   map[TaskID]*task

	freezerMu sync.Mutex
	freezer   []TaskID

	queues *ExecutorQueues
	states *ExecutorState

	cb Callbacks

	m              metrics.Initializer
	frozenGauge    func(float64)
	executorGauges map[ExecutorType]func(float64)
	taskCounters   map[ExecutorType]func(uint64)
	taskTimeGauges map[ExecutorType]func(float64)

	failOnTooFrozen         bool
	freezeOnFailedDispatch  bool
	freezeOnUnknownExecutor bool

	sweepInterval time.Duration
	defrostAge    time.Duration
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithFailOnTooFrozen configures whether a task that hits the freeze
// bound reports a terminal error or is dropped silently. Defaults to
// reporting.
func WithFailOnTooFrozen(fail bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.failOnTooFrozen = fail
	}
}

// WithFreezeOnFailedDispatch configures whether a failed dispatch
// callback freezes the task for retry or removes it. Defaults to
// freezing.
func WithFreezeOnFailedDispatch(freeze bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.freezeOnFailedDispatch = freeze
	}
}

// WithFreezeOnUnknownExecutor configures whether a task routed to a type
// with no connected executors freezes until one connects or is removed.
// Defaults to freezing.
func WithFreezeOnUnknownExecutor(freeze bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.freezeOnUnknownExecutor = freeze
	}
}

// WithSweepInterval configures the period of the freezer sweep driven by
// Start. It defaults to 200 seconds.
func WithSweepInterval(interval time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.sweepInterval = interval
	}
}

// WithDefrostAge configures how long a frozen task waits before a sweep
// defrosts it regardless of its type hint. It defaults to 300 seconds.
func WithDefrostAge(age time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.defrostAge = age
	}
}

// New returns a Dispatcher. Callbacks default to failing stubs; wire the
// real ones with SetCallbacks before feeding tasks.
func New(m metrics.Initializer, logger *log.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		log:       logger,
		idMap:     make(map[ExecutorID]ExecutorType),
		execTypes: make(map[ExecutorType]int),
		tasks:     make(map[TaskID]*task),
		queues:    NewExecutorQueues(logger),
		states:    NewExecutorState(),
		cb:        noCallbacks{},

		m:              m,
		executorGauges: make(map[ExecutorType]func(float64)),
		taskCounters:   make(map[ExecutorType]func(uint64)),
		taskTimeGauges: make(map[ExecutorType]func(float64)),

		failOnTooFrozen:         true,
		freezeOnFailedDispatch:  true,
		freezeOnUnknownExecutor: true,

		sweepInterval: 200 * time.Second,
		defrostAge:    300 * time.Second,
	}

	for _, o := range opts {
		o(d)
	}

	d.frozenGauge = m.NewGauge("dispatcher_frozen_tasks")

	return d
}

// SetCallbacks wires the callback surface. It must be called before the
// dispatcher is fed tasks or executors.
func (d *Dispatcher) SetCallbacks(cb Callbacks) {
	d.cb = cb
}

// Start begins the periodic freezer sweep. It does not block.
func (d *Dispatcher) Start() {
	go func() {
		for range time.Tick(d.sweepInterval) {
			d.unfreezeTasks("")
		}
	}()
}

// AddExecutor registers a newly connected executor and fills it from the
// queue of its type. Adding a known ID is a no-op.
func (d *Dispatcher) AddExecutor(eType ExecutorType, eID ExecutorID, maxTasks int) {
	d.log.Printf("Adding new %s executor to the pool %s", eID, eType)
	d.executorsMu.Lock()
	if _, ok := d.idMap[eID]; ok {
		d.executorsMu.Unlock()
		return
	}
	d.idMap[eID] = eType
	d.execTypes[eType]++
	d.states.AddExecutor(eID, eType, maxTasks)
	d.typeGauge(eType)(float64(d.execTypes[eType]))
	d.executorsMu.Unlock()

	d.fillExecutors(eType, true)
}

// RemoveExecutor drops an executor. Tasks it held are reinserted at the
// head of their type's queue and the remaining executors of that type
// are filled so they absorb the work.
func (d *Dispatcher) RemoveExecutor(eID ExecutorID) {
	d.log.Printf("Removing executor %s", eID)
	d.executorsMu.Lock()
	eType, ok := d.idMap[eID]
	if !ok {
		d.executorsMu.Unlock()
		return
	}
	delete(d.idMap, eID)
	d.execTypes[eType]--
	if d.execTypes[eType] <= 0 {
		delete(d.execTypes, eType)
	}
	d.typeGauge(eType)(float64(d.execTypes[eType]))
	for _, taskID := range d.states.RemoveExecutor(eID) {
		d.queues.PushTask(eType, taskID, true)
	}
	d.executorsMu.Unlock()

	if err := d.disconnectExecutorCallback(eID); err != nil {
		d.log.Printf("Error while disconnecting executor %s: %s", eID, err)
	}

	d.fillExecutors(eType, true)
}

// AddTask feeds a task into the dispatcher. Adding a known ID does not
// replace its payload; it only triggers a freezer sweep.
func (d *Dispatcher) AddTask(taskID TaskID, payload []byte) error {
	d.tasksMu.Lock()
	if _, ok := d.tasks[taskID]; ok {
		d.tasksMu.Unlock()
		d.log.Printf("Task %s was already known", taskID)
		d.unfreezeTasks("")
		return nil
	}
	d.tasks[taskID] = newTask(taskID, payload)
	d.tasksMu.Unlock()
	d.log.Printf("Added task %s", taskID)

	return d.dispatchTask(taskID, true)
}

// RemoveTask cancels a task wherever it currently resides. Removing an
// assigned task does not signal the executor; its eventual report is
// rejected as unknown. Removing an unknown task is a no-op.
func (d *Dispatcher) RemoveTask(taskID TaskID) error {
	d.tasksMu.Lock()
	if _, ok := d.tasks[taskID]; !ok {
		d.tasksMu.Unlock()
		d.log.Printf("Task %s is already removed", taskID)
		return nil
	}
	delete(d.tasks, taskID)
	d.tasksMu.Unlock()
	d.log.Printf("Removing task %s", taskID)

	eID, assigned := d.states.GetExecutorOfTask(taskID)
	d.queues.DeleteTask(taskID)
	d.states.RemoveTask(taskID)

	d.freezerMu.Lock()
	for i, id := range d.freezer {
		if id == taskID {
			d.freezer = append(d.freezer[:i], d.freezer[i+1:]...)
			break
		}
	}
	d.frozenGauge(float64(len(d.freezer)))
	d.freezerMu.Unlock()

	if assigned {
		// The executor just lost a slot; try to hand it another task.
		_, err := d.sendTaskToExecutor(eID, "", true)
		return err
	}

	return nil
}

// TaskProcessed handles an executor reporting it finished the current
// stage of a task. The path grows by the executor's type, the payload is
// replaced when the executor submitted a new one, and the task is
// re-dispatched while the freed executor picks up more work.
func (d *Dispatcher) TaskProcessed(eID ExecutorID, taskID TaskID, payload []byte) error {
	if err := d.ackExecutorReport(eID, taskID); err != nil {
		return err
	}

	d.executorsMu.Lock()
	eType, ok := d.idMap[eID]
	d.executorsMu.Unlock()
	if !ok {
		d.log.Printf("Executor type unknown for %s. Redoing task %s", eID, taskID)
		d.dispatchTask(taskID, true)
		return fmt.Errorf("executor type unknown for %s", eID)
	}

	d.tasksMu.Lock()
	var sendTime time.Time
	if t, ok := d.tasks[taskID]; ok {
		sendTime = t.sendTime
	}
	d.tasksMu.Unlock()

	d.executorsMu.Lock()
	taskTime := d.typeTimeGauge(eType)
	taskCount := d.typeCounter(eType)
	d.executorsMu.Unlock()
	taskTime(float64(time.Since(sendTime) / time.Millisecond))
	taskCount(1)

	if err := d.taskProcessedCallback(taskID, payload, eType); err != nil {
		return err
	}

	// Up to here failures were the executor's. From now on they are the
	// task's.
	d.tasksMu.Lock()
	t, ok := d.tasks[taskID]
	if !ok {
		d.tasksMu.Unlock()
		d.log.Printf("Task %s seems to have been removed while being processed", taskID)
		d.sendTaskToExecutor(eID, eType, false)
		return nil
	}
	if payload != nil {
		t.payload = payload
	}
	t.pathExecuted = append(t.pathExecuted, eType)
	d.tasksMu.Unlock()

	d.log.Printf("Executor %s processed task %s", eID, taskID)
	err := d.dispatchTask(taskID, true)
	d.sendTaskToExecutor(eID, eType, false)
	return err
}

// RetryTask handles an executor declining the current stage of a task.
// The retry count grows, the path does not, and the task goes back
// through dispatch so the policy decides again.
func (d *Dispatcher) RetryTask(eID ExecutorID, taskID TaskID) error {
	if err := d.ackExecutorReport(eID, taskID); err != nil {
		return err
	}
	d.log.Printf("Executor %s did NOT process task %s, retrying", eID, taskID)

	d.tasksMu.Lock()
	t, ok := d.tasks[taskID]
	if !ok {
		d.tasksMu.Unlock()
		d.log.Printf("Task %s seems to have been removed while waiting for retry", taskID)
		return nil
	}
	t.retries++
	d.tasksMu.Unlock()

	return d.dispatchTask(taskID, true)
}

// ackExecutorReport validates an executor's claim on a task and
// unassigns it.
func (d *Dispatcher) ackExecutorReport(eID ExecutorID, taskID TaskID) error {
	d.tasksMu.Lock()
	_, ok := d.tasks[taskID]
	d.tasksMu.Unlock()
	if !ok {
		err := fmt.Errorf("task %s is not known", taskID)
		d.log.Printf("%s", err)
		return err
	}
	if !d.states.RemoveTaskFrom(taskID, eID) {
		err := fmt.Errorf("executor %s says it's processed task but it was not sent to it", eID)
		d.log.Printf("%s", err)
		return err
	}

	return nil
}

// TaskIDs returns the IDs of every live task.
func (d *Dispatcher) TaskIDs() []TaskID {
	d.tasksMu.Lock()
	defer d.tasksMu.Unlock()

	var ids []TaskID
	for taskID := range d.tasks {
		ids = append(ids, taskID)
	}
	return ids
}

// ExecutorsConnected returns the connected executor count per type.
func (d *Dispatcher) ExecutorsConnected() map[ExecutorType]int {
	d.executorsMu.Lock()
	defer d.executorsMu.Unlock()

	m := make(map[ExecutorType]int)
	for eType, count := range d.execTypes {
		m[eType] = count
	}
	return m
}

// QueueState returns a snapshot of every waiting queue.
func (d *Dispatcher) QueueState() map[ExecutorType][]TaskID {
	return d.queues.State()
}

func (d *Dispatcher) dispatchTask(taskID TaskID, defrostIfNeeded bool) error {
	d.log.Printf("Dispatching task %s", taskID)

	eType, err := d.nextExecutor(taskID)
	if err != nil {
		d.log.Printf("Error while calling dispatch callback: %s", err)
		if d.freezeOnFailedDispatch {
			if d.freezeTask(taskID, err.Error(), "") {
				return nil
			}
			return err
		}
		d.RemoveTask(taskID)
		d.taskErrorCallback(taskID, fmt.Sprintf("Could not dispatch task: %s", err))
		return errors.New("could not add task: dispatching task failed")
	}

	if eType == "" {
		d.log.Printf("No more executors for task %s", taskID)
		return d.RemoveTask(taskID)
	}

	d.log.Printf("Next executor type is %s for task %s", eType, taskID)
	d.executorsMu.Lock()
	connected := d.execTypes[eType] > 0
	d.executorsMu.Unlock()
	if !connected {
		if d.freezeOnUnknownExecutor {
			d.log.Printf("Executor type %s has not connected. Freezing task %s", eType, taskID)
			d.freezeTask(taskID, fmt.Sprintf("unknown executor %s type", eType), eType)
			return nil
		}
		d.log.Printf("Executor type %s has not connected. Forgetting task %s", eType, taskID)
		return d.RemoveTask(taskID)
	}

	d.queues.PushTask(eType, taskID, false)
	d.fillExecutors(eType, defrostIfNeeded)
	return nil
}

// nextExecutor asks the policy for the task's next type, with the
// decision staged outside every lock.
func (d *Dispatcher) nextExecutor(taskID TaskID) (ExecutorType, error) {
	d.tasksMu.Lock()
	t, ok := d.tasks[taskID]
	if !ok {
		d.tasksMu.Unlock()
		err := fmt.Errorf("task %s was deleted prematurely while being dispatched", taskID)
		d.log.Printf("%s", err)
		return "", err
	}
	payload := t.payload
	path := t.path()
	d.tasksMu.Unlock()

	return d.nextStageCallback(taskID, payload, path)
}

func (d *Dispatcher) fillExecutors(eType ExecutorType, defrostIfNeeded bool) {
	if defrostIfNeeded {
		d.log.Printf("Unfreezing tasks for %s", eType)
		d.unfreezeTasks(eType)
	}

	d.log.Printf("Filling %s executors", eType)
	for {
		eID, ok := d.states.GetIdleExecutor(eType)
		if !ok {
			break
		}
		taskID, err := d.sendTaskToExecutor(eID, eType, false)
		if err != nil {
			d.log.Printf("Could not send task to executor: %s", err)
			break
		}
		if taskID == "" {
			// No more tasks for eType.
			break
		}
		d.log.Printf("Task %s was sent to %s", taskID, eID)
	}
	d.log.Printf("No more idle executors for %s", eType)
}

// sendTaskToExecutor pops a task for eType and hands it to eID. It
// returns the sent task ID, or empty when the queue is dry. A failed
// send rolls back: the task jumps back to the head of the queue and the
// assignment is cleared.
func (d *Dispatcher) sendTaskToExecutor(eID ExecutorID, eType ExecutorType, checkIdle bool) (TaskID, error) {
	if checkIdle && d.states.FreeSlots(eID) == 0 {
		return "", nil
	}
	if eType == "" {
		d.executorsMu.Lock()
		t, ok := d.idMap[eID]
		d.executorsMu.Unlock()
		if !ok {
			return "", fmt.Errorf("executor type unknown for %s", eID)
		}
		eType = t
	}

	taskID, ok := d.queues.PopTask(eType)
	if !ok {
		d.log.Printf("No more tasks for %s", eType)
		return "", nil
	}

	d.log.Printf("Sending task %s to %s=%s", taskID, eType, eID)
	d.states.AddTask(eID, taskID)
	if err := d.msgTaskToExecutor(eID, taskID); err != nil {
		d.queues.PushTask(eType, taskID, true)
		d.states.RemoveTask(taskID)
		return "", err
	}

	return taskID, nil
}

func (d *Dispatcher) msgTaskToExecutor(eID ExecutorID, taskID TaskID) error {
	d.tasksMu.Lock()
	t, ok := d.tasks[taskID]
	if !ok {
		d.tasksMu.Unlock()
		return fmt.Errorf("task %s is not known", taskID)
	}
	t.sendTime = time.Now()
	payload := t.payload
	d.tasksMu.Unlock()

	return d.sendTaskCallback(eID, taskID, payload)
}

// freezeTask parks a task for later retry. It reports false when the
// task is already frozen, unknown, or just hit the freeze bound. In the
// last case the task terminates instead.
func (d *Dispatcher) freezeTask(taskID TaskID, message string, eType ExecutorType) bool {
	d.log.Printf("Freezing task %s", taskID)

	d.tasksMu.Lock()
	t, ok := d.tasks[taskID]
	if !ok {
		d.tasksMu.Unlock()
		return false
	}

	d.freezerMu.Lock()
	for _, id := range d.freezer {
		if id == taskID {
			d.freezerMu.Unlock()
			d.tasksMu.Unlock()
			return false
		}
	}

	t.frozenMessage = message
	t.frozenSince = time.Now()
	t.frozenCount++
	t.eType = eType
	frozen := false
	if t.frozenCount < maxFreezes {
		d.freezer = append(d.freezer, taskID)
		frozen = true
	}
	d.frozenGauge(float64(len(d.freezer)))
	d.freezerMu.Unlock()
	d.tasksMu.Unlock()

	if !frozen {
		d.RemoveTask(taskID)
		if d.failOnTooFrozen {
			d.taskErrorCallback(taskID, fmt.Sprintf("Retried more than %d times. Last error: %s", maxFreezes, message))
		}
		return false
	}

	return true
}

// unfreezeTasks walks the freezer and re-dispatches every task whose
// recorded type matches the hint, or that has been frozen longer than
// the defrost age. Dispatch happens outside the locks. A task defrosts at
// most once per sweep; if it is frozen again it waits for the next sweep.
func (d *Dispatcher) unfreezeTasks(eTypeHint ExecutorType) {
	defrosted := make(map[TaskID]bool)
	i := 0
	for {
		var defrost TaskID

		d.tasksMu.Lock()
		d.freezerMu.Lock()
		if i >= len(d.freezer) {
			d.freezerMu.Unlock()
			d.tasksMu.Unlock()
			return
		}
		taskID := d.freezer[i]
		t, ok := d.tasks[taskID]
		switch {
		case !ok:
			d.log.Printf("Removing task %s from the freezer. Somebody has removed the task", taskID)
			d.freezer = append(d.freezer[:i], d.freezer[i+1:]...)
		case defrosted[taskID]:
			i++
		case eTypeHint != "" && eTypeHint == t.eType,
			time.Since(t.frozenSince) > d.defrostAge:
			d.freezer = append(d.freezer[:i], d.freezer[i+1:]...)
			t.frozenTime += time.Since(t.frozenSince)
			defrost = taskID
			defrosted[taskID] = true
		default:
			i++
		}
		d.frozenGauge(float64(len(d.freezer)))
		d.freezerMu.Unlock()
		d.tasksMu.Unlock()

		if defrost != "" {
			d.log.Printf("Unfroze task %s", defrost)
			d.dispatchTask(defrost, false)
		}
	}
}

// typeGauge lazily registers the connected-executors gauge for a type.
// Callers hold the executors mutex.
func (d *Dispatcher) typeGauge(eType ExecutorType) func(float64) {
	g, ok := d.executorGauges[eType]
	if !ok {
		g = d.m.NewGauge(fmt.Sprintf("dispatcher_executors_%s", eType))
		d.executorGauges[eType] = g
	}
	return g
}

func (d *Dispatcher) typeCounter(eType ExecutorType) func(uint64) {
	c, ok := d.taskCounters[eType]
	if !ok {
		c = d.m.NewCounter(fmt.Sprintf("dispatcher_tasks_%s", eType))
		d.taskCounters[eType] = c
	}
	return c
}

func (d *Dispatcher) typeTimeGauge(eType ExecutorType) func(float64) {
	g, ok := d.taskTimeGauges[eType]
	if !ok {
		g = d.m.NewGauge(fmt.Sprintf("dispatcher_task_time_%s", eType))
		d.taskTimeGauges[eType] = g
	}
	return g
}

func (d *Dispatcher) nextStageCallback(taskID TaskID, payload []byte, path []ExecutorType) (eType ExecutorType, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Printf("Recovered panic in dispatch callback: %v", r)
			eType = ""
			err = fmt.Errorf("panic in dispatch callback: %v", r)
		}
	}()

	return d.cb.NextStage(taskID, payload, path)
}

func (d *Dispatcher) sendTaskCallback(eID ExecutorID, taskID TaskID, payload []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Printf("Recovered panic in send task callback: %v", r)
			err = fmt.Errorf("panic in send task callback: %v", r)
		}
	}()

	return d.cb.SendTask(eID, taskID, payload)
}

func (d *Dispatcher) disconnectExecutorCallback(eID ExecutorID) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Printf("Recovered panic in disconnect callback: %v", r)
			err = fmt.Errorf("panic in disconnect callback: %v", r)
		}
	}()

	return d.cb.DisconnectExecutor(eID)
}

func (d *Dispatcher) taskErrorCallback(taskID TaskID, message string) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Printf("Recovered panic in task error callback: %v", r)
		}
	}()

	if err := d.cb.TaskError(taskID, message); err != nil {
		d.log.Printf("Error while calling task error callback: %s", err)
	}
}

func (d *Dispatcher) taskProcessedCallback(taskID TaskID, payload []byte, eType ExecutorType) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Printf("Recovered panic in task processed callback: %v", r)
			err = fmt.Errorf("panic in task processed callback: %v", r)
		}
	}()

	return d.cb.TaskProcessed(taskID, payload, eType)
}
