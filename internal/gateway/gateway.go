package gateway

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	rpc "code.cloudfoundry.org/task-dispatcher/pkg/rpc/dispatch_v1"
	"github.com/gorilla/mux"
	"golang.org/x/net/context"
)

// Gateway provides a RESTful API in front of the dispatcher's gRPC
// ingress.
type Gateway struct {
	log *log.Logger

	client rpc.IngressClient

	gatewayAddr  string
	lis          net.Listener
	blockOnStart bool
}

// NewGateway creates a new Gateway. It will listen on gatewayAddr and
// submit requests via gRPC through the given ingress client. Start()
// must be invoked before using the Gateway.
func NewGateway(client rpc.IngressClient, gatewayAddr string, logger *log.Logger, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		log:         logger,
		client:      client,
		gatewayAddr: gatewayAddr,
	}

	for _, o := range opts {
		o(g)
	}

	return g
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithGatewayBlock returns a GatewayOption that makes Start() block.
func WithGatewayBlock() GatewayOption {
	return func(g *Gateway) {
		g.blockOnStart = true
	}
}

// Start starts the gateway. It does not block unless WithGatewayBlock
// was set.
func (g *Gateway) Start() {
	lis, err := net.Listen("tcp", g.gatewayAddr)
	if err != nil {
		g.log.Fatalf("failed to listen on %s: %s", g.gatewayAddr, err)
	}
	g.lis = lis
	g.log.Printf("gateway listening on %s...", lis.Addr().String())

	router := mux.NewRouter()
	router.HandleFunc("/v1/tasks", g.addTask).Methods(http.MethodPost)
	router.HandleFunc("/v1/tasks", g.listTasks).Methods(http.MethodGet)
	router.HandleFunc("/v1/tasks/{id}", g.removeTask).Methods(http.MethodDelete)
	router.HandleFunc("/v1/executors", g.listExecutors).Methods(http.MethodGet)
	router.HandleFunc("/v1/queues", g.listQueues).Methods(http.MethodGet)

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
	}

	if g.blockOnStart {
		g.log.Fatalf("gateway exited: %s", server.Serve(lis))
	}

	go func() {
		g.log.Printf("gateway exited: %s", server.Serve(lis))
	}()
}

// Addr returns the address the gateway is listening on.
func (g *Gateway) Addr() string {
	return g.lis.Addr().String()
}

type taskBody struct {
	TaskID  string `json:"task_id"`
	Payload []byte `json:"payload"`
}

func (g *Gateway) addTask(w http.ResponseWriter, r *http.Request) {
	var body taskBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.TaskID == "" {
		http.Error(w, "task_id is required", http.StatusBadRequest)
		return
	}

	ctx, _ := context.WithTimeout(r.Context(), 5*time.Second)
	_, err := g.client.AddTask(ctx, &rpc.AddTaskRequest{
		TaskId:  body.TaskID,
		Payload: body.Payload,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (g *Gateway) removeTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	ctx, _ := context.WithTimeout(r.Context(), 5*time.Second)
	_, err := g.client.RemoveTask(ctx, &rpc.RemoveTaskRequest{
		TaskId: taskID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (g *Gateway) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx, _ := context.WithTimeout(r.Context(), 5*time.Second)
	resp, err := g.client.ListTasks(ctx, &rpc.ListTasksRequest{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	g.writeJSON(w, map[string]interface{}{
		"task_ids": resp.GetTaskIds(),
	})
}

func (g *Gateway) listExecutors(w http.ResponseWriter, r *http.Request) {
	ctx, _ := context.WithTimeout(r.Context(), 5*time.Second)
	resp, err := g.client.ListExecutors(ctx, &rpc.ListExecutorsRequest{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	g.writeJSON(w, map[string]interface{}{
		"executors": resp.GetExecutors(),
	})
}

func (g *Gateway) listQueues(w http.ResponseWriter, r *http.Request) {
	ctx, _ := context.WithTimeout(r.Context(), 5*time.Second)
	resp, err := g.client.ListQueues(ctx, &rpc.ListQueuesRequest{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	queues := make(map[string][]string)
	for eType, queue := range resp.GetQueues() {
		queues[eType] = queue.GetTaskIds()
	}

	g.writeJSON(w, map[string]interface{}{
		"queues": queues,
	})
}

func (g *Gateway) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		g.log.Printf("failed to encode response: %s", err)
	}
}
