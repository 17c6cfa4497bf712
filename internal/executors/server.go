package executors

import (
	"fmt"
	"log"
	"net"
	"sync"

	"code.cloudfoundry.org/task-dispatcher/internal/dispatch"
	rpc "code.cloudfoundry.org/task-dispatcher/pkg/rpc/dispatch_v1"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Dispatcher is the part of the dispatch core the executor surface
// drives.
type Dispatcher interface {
	AddExecutor(eType dispatch.ExecutorType, eID dispatch.ExecutorID, maxTasks int)
	RemoveExecutor(eID dispatch.ExecutorID)
	TaskProcessed(eID dispatch.ExecutorID, taskID dispatch.TaskID, payload []byte) error
	RetryTask(eID dispatch.ExecutorID, taskID dispatch.TaskID) error
}

// Server is the gRPC surface executor processes connect to. A Connect
// call registers the executor with the dispatcher and holds the stream
// open; tasks handed to the executor are written to its stream until
// either side goes away. Server implements the transport half of
// dispatch.Callbacks.
type Server struct {
	log *log.Logger
	d   Dispatcher

	addr       string
	lis        net.Listener
	server     *grpc.Server
	serverOpts []grpc.ServerOption
	sendBuffer int

	mu      sync.Mutex
	streams map[dispatch.ExecutorID]chan *rpc.TaskEnvelope
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

// WithSendBuffer configures how many undelivered tasks may sit in front
// of a slow executor stream before sends to it start failing. It
// defaults to 100.
func WithSendBuffer(size int) ServerOption {
	return func(s *Server) {
		s.sendBuffer = size
	}
}

// NewServer returns a new Server. Start must be invoked before
// executors can connect.
func NewServer(d Dispatcher, logger *log.Logger, opts ...ServerOption) *Server {
	s := &Server{
		log:        logger,
		d:          d,
		addr:       "127.0.0.1:0",
		sendBuffer: 100,
		streams:    make(map[dispatch.ExecutorID]chan *rpc.TaskEnvelope),
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// Start begins listening for executors. It does not block.
func (s *Server) Start() {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.log.Fatalf("failed to listen: %v", err)
	}
	s.lis = lis
	s.log.Printf("executor server listening on %s...", s.Addr())

	s.server = grpc.NewServer(s.serverOpts...)
	rpc.RegisterExecutorServer(s.server, s)

	go func() {
		if err := s.server.Serve(lis); err != nil {
			s.log.Printf("executor server exited: %s", err)
		}
	}()
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.lis.Addr().String()
}

// Stop drops every executor and stops serving.
func (s *Server) Stop() {
	s.server.Stop()
}

// Connect implements dispatch_v1.ExecutorServer. It blocks for the
// lifetime of the executor's connection.
func (s *Server) Connect(req *rpc.ConnectRequest, stream rpc.Executor_ConnectServer) error {
	eID := dispatch.ExecutorID(req.GetExecutorId())
	eType := dispatch.ExecutorType(req.GetExecutorType())
	if eID == "" || eType == "" {
		return status.Errorf(codes.InvalidArgument, "executor_id and executor_type are required")
	}

	ch := make(chan *rpc.TaskEnvelope, s.sendBuffer)
	s.mu.Lock()
	if _, ok := s.streams[eID]; ok {
		s.mu.Unlock()
		return status.Errorf(codes.AlreadyExists, "executor %s is already connected", eID)
	}
	s.streams[eID] = ch
	s.mu.Unlock()

	s.d.AddExecutor(eType, eID, int(req.GetMaxTasks()))
	defer s.drop(eID)

	for {
		select {
		case env, ok := <-ch:
			if !ok {
				// Disconnected by the dispatcher.
				return nil
			}
			if err := stream.Send(env); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}

// TaskProcessed implements dispatch_v1.ExecutorServer.
func (s *Server) TaskProcessed(ctx context.Context, req *rpc.TaskProcessedRequest) (*rpc.TaskProcessedResponse, error) {
	err := s.d.TaskProcessed(
		dispatch.ExecutorID(req.GetExecutorId()),
		dispatch.TaskID(req.GetTaskId()),
		req.GetPayload(),
	)
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "%s", err)
	}

	return &rpc.TaskProcessedResponse{}, nil
}

// RetryTask implements dispatch_v1.ExecutorServer.
func (s *Server) RetryTask(ctx context.Context, req *rpc.RetryTaskRequest) (*rpc.RetryTaskResponse, error) {
	err := s.d.RetryTask(
		dispatch.ExecutorID(req.GetExecutorId()),
		dispatch.TaskID(req.GetTaskId()),
	)
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "%s", err)
	}

	return &rpc.RetryTaskResponse{}, nil
}

// SendTask implements the transport half of dispatch.Callbacks. The
// write is non-blocking: a full buffer means the executor is not
// keeping up and the dispatcher should roll the task back.
func (s *Server) SendTask(eID dispatch.ExecutorID, taskID dispatch.TaskID, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.streams[eID]
	if !ok {
		return fmt.Errorf("executor %s is not connected", eID)
	}

	select {
	case ch <- &rpc.TaskEnvelope{TaskId: string(taskID), Payload: payload}:
		return nil
	default:
		return fmt.Errorf("executor %s send buffer is full", eID)
	}
}

// DisconnectExecutor implements the transport half of
// dispatch.Callbacks by closing the executor's stream.
func (s *Server) DisconnectExecutor(eID dispatch.ExecutorID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.streams[eID]
	if !ok {
		return nil
	}
	delete(s.streams, eID)
	close(ch)

	return nil
}

// drop tears down a stream that ended on the executor's side and
// deregisters it from the dispatcher.
func (s *Server) drop(eID dispatch.ExecutorID) {
	s.mu.Lock()
	if ch, ok := s.streams[eID]; ok {
		delete(s.streams, eID)
		close(ch)
	}
	s.mu.Unlock()

	s.d.RemoveExecutor(eID)
}
