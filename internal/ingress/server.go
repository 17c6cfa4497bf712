package ingress

import (
	"log"
	"net"

	diodes "code.cloudfoundry.org/go-diodes"
	"code.cloudfoundry.org/task-dispatcher/internal/dispatch"
	"code.cloudfoundry.org/task-dispatcher/internal/metrics"
	rpc "code.cloudfoundry.org/task-dispatcher/pkg/rpc/dispatch_v1"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Dispatcher is the part of the dispatch core the ingress surface
// drives.
type Dispatcher interface {
	AddTask(taskID dispatch.TaskID, payload []byte) error
	RemoveTask(taskID dispatch.TaskID) error
	TaskIDs() []dispatch.TaskID
	ExecutorsConnected() map[dispatch.ExecutorType]int
	QueueState() map[dispatch.ExecutorType][]dispatch.TaskID
}

// Server is the gRPC surface that feeds and inspects the dispatcher.
// Submissions are buffered through a diode so a burst of producers
// cannot stall on the dispatch path; a sustained overrun drops the
// oldest submissions and counts them.
type Server struct {
	log *log.Logger
	d   Dispatcher

	addr       string
	lis        net.Listener
	server     *grpc.Server
	serverOpts []grpc.ServerOption

	buffer *diodes.OneToOne

	ingressCounter func(uint64)
	droppedCounter func(uint64)
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithAddr configures the address to listen on. It defaults to
// 127.0.0.1 with a random port.
func WithAddr(addr string) ServerOption {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithServerOpts configures the gRPC server options. It defaults to an
// empty list.
func WithServerOpts(opts ...grpc.ServerOption) ServerOption {
	return func(s *Server) {
		s.serverOpts = opts
	}
}

// NewServer returns a new Server. Start must be invoked before use.
func NewServer(d Dispatcher, m metrics.Initializer, logger *log.Logger, opts ...ServerOption) *Server {
	s := &Server{
		log:  logger,
		d:    d,
		addr: "127.0.0.1:0",

		ingressCounter: m.NewCounter("ingress_tasks"),
		droppedCounter: m.NewCounter("ingress_dropped"),
	}

	for _, o := range opts {
		o(s)
	}

	s.buffer = diodes.NewOneToOne(10000, diodes.AlertFunc(func(missed int) {
		s.log.Printf("ingress buffer dropped %d task submissions", missed)
		s.droppedCounter(uint64(missed))
	}))

	return s
}

// Start begins listening and draining submissions into the dispatcher.
// It does not block.
func (s *Server) Start() {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.log.Fatalf("failed to listen: %v", err)
	}
	s.lis = lis
	s.log.Printf("ingress listening on %s...", s.Addr())

	s.server = grpc.NewServer(s.serverOpts...)
	rpc.RegisterIngressServer(s.server, s)

	go func() {
		if err := s.server.Serve(lis); err != nil {
			s.log.Printf("ingress server exited: %s", err)
		}
	}()

	go s.drainSubmissions()
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.lis.Addr().String()
}

// Stop stops serving.
func (s *Server) Stop() {
	s.server.Stop()
}

func (s *Server) drainSubmissions() {
	poller := diodes.NewPoller(s.buffer)
	for {
		data := poller.Next()
		req := (*rpc.AddTaskRequest)(data)
		if err := s.d.AddTask(dispatch.TaskID(req.GetTaskId()), req.GetPayload()); err != nil {
			s.log.Printf("failed to add task %s: %s", req.GetTaskId(), err)
			continue
		}
		s.ingressCounter(1)
	}
}

// AddTask implements dispatch_v1.IngressServer. Success means
// accepted-for-dispatch, not dispatched.
func (s *Server) AddTask(ctx context.Context, req *rpc.AddTaskRequest) (*rpc.AddTaskResponse, error) {
	if req.GetTaskId() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "task_id is required")
	}

	s.buffer.Set(diodes.GenericDataType(req))

	return &rpc.AddTaskResponse{}, nil
}

// RemoveTask implements dispatch_v1.IngressServer.
func (s *Server) RemoveTask(ctx context.Context, req *rpc.RemoveTaskRequest) (*rpc.RemoveTaskResponse, error) {
	if req.GetTaskId() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "task_id is required")
	}
	if err := s.d.RemoveTask(dispatch.TaskID(req.GetTaskId())); err != nil {
		return nil, status.Errorf(codes.Internal, "%s", err)
	}

	return &rpc.RemoveTaskResponse{}, nil
}

// ListTasks implements dispatch_v1.IngressServer.
func (s *Server) ListTasks(ctx context.Context, req *rpc.ListTasksRequest) (*rpc.ListTasksResponse, error) {
	resp := &rpc.ListTasksResponse{}
	for _, taskID := range s.d.TaskIDs() {
		resp.TaskIds = append(resp.TaskIds, string(taskID))
	}

	return resp, nil
}

// ListExecutors implements dispatch_v1.IngressServer.
func (s *Server) ListExecutors(ctx context.Context, req *rpc.ListExecutorsRequest) (*rpc.ListExecutorsResponse, error) {
	resp := &rpc.ListExecutorsResponse{
		Executors: make(map[string]int64),
	}
	for eType, count := range s.d.ExecutorsConnected() {
		resp.Executors[string(eType)] = int64(count)
	}

	return resp, nil
}

// ListQueues implements dispatch_v1.IngressServer.
func (s *Server) ListQueues(ctx context.Context, req *rpc.ListQueuesRequest) (*rpc.ListQueuesResponse, error) {
	resp := &rpc.ListQueuesResponse{
		Queues: make(map[string]*rpc.TaskQueue),
	}
	for eType, taskIDs := range s.d.QueueState() {
		queue := &rpc.TaskQueue{}
		for _, taskID := range taskIDs {
			queue.TaskIds = append(queue.TaskIds, string(taskID))
		}
		resp.Queues[string(eType)] = queue
	}

	return resp, nil
}
