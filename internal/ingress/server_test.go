package ingress_test

import (
	"errors"
	"log"
	"sync"

	"code.cloudfoundry.org/task-dispatcher/internal/dispatch"
	"code.cloudfoundry.org/task-dispatcher/internal/ingress"
	"code.cloudfoundry.org/task-dispatcher/internal/testing"
	rpc "code.cloudfoundry.org/task-dispatcher/pkg/rpc/dispatch_v1"
	"golang.org/x/net/context"
	"google.golang.org/grpc"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Server", func() {
	var (
		spy        *spyDispatcher
		spyMetrics *testing.SpyMetrics
		s          *ingress.Server
		conn       *grpc.ClientConn
		client     rpc.IngressClient
	)

	BeforeEach(func() {
		spy = newSpyDispatcher()
		spyMetrics = testing.NewSpyMetrics()
		s = ingress.NewServer(spy, spyMetrics, log.New(GinkgoWriter, "", 0))
		s.Start()

		var err error
		conn, err = grpc.Dial(s.Addr(), grpc.WithInsecure())
		Expect(err).ToNot(HaveOccurred())
		client = rpc.NewIngressClient(conn)
	})

	AfterEach(func() {
		conn.Close()
		s.Stop()
	})

	It("feeds submitted tasks into the dispatcher", func() {
		_, err := client.AddTask(context.Background(), &rpc.AddTaskRequest{
			TaskId:  "t1",
			Payload: []byte("payload"),
		})
		Expect(err).ToNot(HaveOccurred())

		Eventually(spy.AddedTasks).Should(Equal([]addedTask{
			{taskID: "t1", payload: []byte("payload")},
		}))
		Eventually(spyMetrics.Getter("ingress_tasks")).Should(Equal(uint64(1)))
	})

	It("keeps accepting submissions when the dispatcher rejects one", func() {
		spy.rejectTask("t1", errors.New("dispatch failed"))

		_, err := client.AddTask(context.Background(), &rpc.AddTaskRequest{
			TaskId: "t1",
		})
		Expect(err).ToNot(HaveOccurred())

		_, err = client.AddTask(context.Background(), &rpc.AddTaskRequest{
			TaskId: "t2",
		})
		Expect(err).ToNot(HaveOccurred())

		Eventually(spy.AddedTasks).Should(Equal([]addedTask{
			{taskID: "t2"},
		}))
		Eventually(spyMetrics.Getter("ingress_tasks")).Should(Equal(uint64(1)))
	})

	It("rejects a submission without a task id", func() {
		_, err := client.AddTask(context.Background(), &rpc.AddTaskRequest{})
		Expect(err).To(HaveOccurred())
	})

	It("removes tasks synchronously", func() {
		_, err := client.RemoveTask(context.Background(), &rpc.RemoveTaskRequest{
			TaskId: "t1",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(spy.RemovedTasks()).To(Equal([]dispatch.TaskID{"t1"}))
	})

	It("rejects a removal without a task id", func() {
		_, err := client.RemoveTask(context.Background(), &rpc.RemoveTaskRequest{})
		Expect(err).To(HaveOccurred())
	})

	It("lists live tasks", func() {
		spy.setTaskIDs("t1", "t2")

		resp, err := client.ListTasks(context.Background(), &rpc.ListTasksRequest{})
		Expect(err).ToNot(HaveOccurred())
		Expect(resp.GetTaskIds()).To(ConsistOf("t1", "t2"))
	})

	It("lists connected executors per type", func() {
		spy.setExecutors(map[dispatch.ExecutorType]int{
			"stage-a": 2,
			"stage-b": 1,
		})

		resp, err := client.ListExecutors(context.Background(), &rpc.ListExecutorsRequest{})
		Expect(err).ToNot(HaveOccurred())
		Expect(resp.GetExecutors()).To(Equal(map[string]int64{
			"stage-a": 2,
			"stage-b": 1,
		}))
	})

	It("lists waiting queues", func() {
		spy.setQueues(map[dispatch.ExecutorType][]dispatch.TaskID{
			"stage-a": {"t1", "t2"},
		})

		resp, err := client.ListQueues(context.Background(), &rpc.ListQueuesRequest{})
		Expect(err).ToNot(HaveOccurred())
		Expect(resp.GetQueues()).To(HaveLen(1))
		Expect(resp.GetQueues()["stage-a"].GetTaskIds()).To(Equal([]string{"t1", "t2"}))
	})
})

type addedTask struct {
	taskID  dispatch.TaskID
	payload []byte
}

type spyDispatcher struct {
	mu sync.Mutex

	rejected map[dispatch.TaskID]error

	added     []addedTask
	removed   []dispatch.TaskID
	taskIDs   []dispatch.TaskID
	executors map[dispatch.ExecutorType]int
	queues    map[dispatch.ExecutorType][]dispatch.TaskID
}

func newSpyDispatcher() *spyDispatcher {
	return &spyDispatcher{
		rejected: make(map[dispatch.TaskID]error),
	}
}

func (s *spyDispatcher) AddTask(taskID dispatch.TaskID, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.rejected[taskID]; ok {
		return err
	}
	s.added = append(s.added, addedTask{taskID: taskID, payload: payload})
	return nil
}

func (s *spyDispatcher) RemoveTask(taskID dispatch.TaskID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, taskID)
	return nil
}

func (s *spyDispatcher) TaskIDs() []dispatch.TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dispatch.TaskID{}, s.taskIDs...)
}

func (s *spyDispatcher) ExecutorsConnected() map[dispatch.ExecutorType]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executors
}

func (s *spyDispatcher) QueueState() map[dispatch.ExecutorType][]dispatch.TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queues
}

func (s *spyDispatcher) rejectTask(taskID dispatch.TaskID, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejected[taskID] = err
}

func (s *spyDispatcher) setTaskIDs(taskIDs ...dispatch.TaskID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskIDs = taskIDs
}

func (s *spyDispatcher) setExecutors(executors map[dispatch.ExecutorType]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executors = executors
}

func (s *spyDispatcher) setQueues(queues map[dispatch.ExecutorType][]dispatch.TaskID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues = queues
}

func (s *spyDispatcher) AddedTasks() []addedTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]addedTask{}, s.added...)
}

func (s *spyDispatcher) RemovedTasks() []dispatch.TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dispatch.TaskID{}, s.removed...)
}
