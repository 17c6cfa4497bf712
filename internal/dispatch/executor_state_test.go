package dispatch_test

import (
	"code.cloudfoundry.org/task-dispatcher/internal/dispatch"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExecutorState", func() {
	var s *dispatch.ExecutorState

	BeforeEach(func() {
		s = dispatch.NewExecutorState()
	})

	It("tracks capacity as tasks are assigned and removed", func() {
		s.AddExecutor("e1", "type-a", 2)
		Expect(s.FreeSlots("e1")).To(Equal(2))

		Expect(s.AddTask("e1", "t1")).To(Equal(1))
		Expect(s.AddTask("e1", "t1")).To(Equal(1))
		Expect(s.AddTask("e1", "t2")).To(Equal(2))

		Expect(s.FreeSlots("e1")).To(Equal(0))
		Expect(s.Full("e1")).To(BeTrue())

		Expect(s.RemoveTask("t1")).To(BeTrue())
		Expect(s.FreeSlots("e1")).To(Equal(1))
		Expect(s.TasksForExecutor("e1")).To(ConsistOf(dispatch.TaskID("t2")))
	})

	It("clamps capacity to at least one", func() {
		s.AddExecutor("e1", "type-a", 0)
		Expect(s.FreeSlots("e1")).To(Equal(1))
	})

	It("treats unknown executors as full", func() {
		Expect(s.Full("unknown")).To(BeTrue())
		Expect(s.FreeSlots("unknown")).To(Equal(0))
	})

	It("ignores assignments to unknown executors", func() {
		Expect(s.AddTask("unknown", "t1")).To(Equal(0))
	})

	It("maintains the reverse index from task to executor", func() {
		s.AddExecutor("e1", "type-a", 1)
		s.AddTask("e1", "t1")

		eID, ok := s.GetExecutorOfTask("t1")
		Expect(ok).To(BeTrue())
		Expect(eID).To(Equal(dispatch.ExecutorID("e1")))

		_, ok = s.GetExecutorOfTask("t2")
		Expect(ok).To(BeFalse())
	})

	It("returns the executor with the most free slots", func() {
		s.AddExecutor("e1", "type-a", 1)
		s.AddExecutor("e2", "type-a", 3)
		s.AddTask("e1", "t1")

		eID, ok := s.GetIdleExecutor("type-a")
		Expect(ok).To(BeTrue())
		Expect(eID).To(Equal(dispatch.ExecutorID("e2")))
	})

	It("breaks free slot ties deterministically", func() {
		s.AddExecutor("e2", "type-a", 1)
		s.AddExecutor("e1", "type-a", 1)

		for i := 0; i < 10; i++ {
			eID, ok := s.GetIdleExecutor("type-a")
			Expect(ok).To(BeTrue())
			Expect(eID).To(Equal(dispatch.ExecutorID("e1")))
		}
	})

	It("reports no idle executor when every one is full", func() {
		s.AddExecutor("e1", "type-a", 1)
		s.AddTask("e1", "t1")

		_, ok := s.GetIdleExecutor("type-a")
		Expect(ok).To(BeFalse())

		_, ok = s.GetIdleExecutor("type-unknown")
		Expect(ok).To(BeFalse())
	})

	It("lists free executors with their slot counts", func() {
		s.AddExecutor("e1", "type-a", 2)
		s.AddExecutor("e2", "type-a", 1)
		s.AddTask("e2", "t1")

		Expect(s.FreeExecutors("type-a")).To(Equal(map[dispatch.ExecutorID]int{
			"e1": 2,
		}))
	})

	It("returns the assigned tasks when an executor is removed", func() {
		s.AddExecutor("e1", "type-a", 2)
		s.AddTask("e1", "t1")
		s.AddTask("e1", "t2")

		tasks := s.RemoveExecutor("e1")
		Expect(tasks).To(ConsistOf(dispatch.TaskID("t1"), dispatch.TaskID("t2")))

		_, ok := s.GetExecutorOfTask("t1")
		Expect(ok).To(BeFalse())
		Expect(s.RemoveExecutor("e1")).To(BeNil())

		_, ok = s.GetIdleExecutor("type-a")
		Expect(ok).To(BeFalse())
	})

	It("only removes a task from the executor that holds it", func() {
		s.AddExecutor("e1", "type-a", 1)
		s.AddExecutor("e2", "type-a", 1)
		s.AddTask("e1", "t1")

		Expect(s.RemoveTaskFrom("t1", "e2")).To(BeFalse())
		Expect(s.RemoveTaskFrom("t1", "e1")).To(BeTrue())
		Expect(s.RemoveTaskFrom("t1", "e1")).To(BeFalse())
	})
})
