package main

import (
	"expvar"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	envstruct "code.cloudfoundry.org/go-envstruct"
	"code.cloudfoundry.org/task-dispatcher/internal/dispatch"
	"code.cloudfoundry.org/task-dispatcher/internal/executors"
	"code.cloudfoundry.org/task-dispatcher/internal/gateway"
	"code.cloudfoundry.org/task-dispatcher/internal/ingress"
	"code.cloudfoundry.org/task-dispatcher/internal/metrics"
	"code.cloudfoundry.org/task-dispatcher/internal/pipeline"
	rpc "code.cloudfoundry.org/task-dispatcher/pkg/rpc/dispatch_v1"
	"google.golang.org/grpc"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	log.Print("Starting Task Dispatcher...")
	defer log.Print("Closing Task Dispatcher.")

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %s", err)
	}

	envstruct.WriteReport(cfg)

	logger := log.New(os.Stderr, "", log.LstdFlags)
	m := metrics.New(expvar.NewMap("dispatcher"))

	d := dispatch.New(
		m,
		logger,
		dispatch.WithSweepInterval(cfg.SweepInterval),
		dispatch.WithFailOnTooFrozen(cfg.FailOnTooFrozen),
		dispatch.WithFreezeOnFailedDispatch(cfg.FreezeOnFailedDispatch),
		dispatch.WithFreezeOnUnknownExecutor(cfg.FreezeOnUnknownExecutor),
	)

	var serverOpts []grpc.ServerOption
	dialOpts := []grpc.DialOption{grpc.WithInsecure()}
	if cfg.TLS.HasAnyCredential() {
		creds, err := cfg.TLS.ServerCredentials()
		if err != nil {
			log.Fatalf("invalid TLS configuration: %s", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))

		clientCreds, err := cfg.TLS.ClientCredentials("task-dispatcher")
		if err != nil {
			log.Fatalf("invalid TLS configuration: %s", err)
		}
		dialOpts = []grpc.DialOption{grpc.WithTransportCredentials(clientCreds)}
	}

	execServer := executors.NewServer(
		d,
		logger,
		executors.WithAddr(cfg.ExecutorAddr),
		executors.WithServerOpts(serverOpts...),
	)

	ingressServer := ingress.NewServer(
		d,
		m,
		logger,
		ingress.WithAddr(cfg.IngressAddr),
		ingress.WithServerOpts(serverOpts...),
	)

	stages := make([]dispatch.ExecutorType, 0, len(cfg.PipelineStages))
	for _, stage := range cfg.PipelineStages {
		stages = append(stages, dispatch.ExecutorType(stage))
	}

	d.SetCallbacks(&callbacks{
		policy:    pipeline.New(stages),
		transport: execServer,
		log:       logger,
	})

	execServer.Start()
	ingressServer.Start()
	d.Start()

	conn, err := grpc.Dial(ingressServer.Addr(), dialOpts...)
	if err != nil {
		log.Fatalf("failed to dial ingress: %s", err)
	}
	gateway.NewGateway(rpc.NewIngressClient(conn), cfg.GatewayAddr, logger).Start()

	// health endpoints (pprof and expvar)
	log.Printf("Health: %s", http.ListenAndServe(cfg.HealthAddr, nil))
}

// callbacks stitches the policy, the executor transport and log-based
// reporting into the dispatcher's callback surface.
type callbacks struct {
	policy    *pipeline.Pipeline
	transport *executors.Server
	log       *log.Logger
}

func (c *callbacks) NextStage(taskID dispatch.TaskID, payload []byte, path []dispatch.ExecutorType) (dispatch.ExecutorType, error) {
	return c.policy.NextStage(taskID, payload, path)
}

func (c *callbacks) SendTask(eID dispatch.ExecutorID, taskID dispatch.TaskID, payload []byte) error {
	return c.transport.SendTask(eID, taskID, payload)
}

func (c *callbacks) DisconnectExecutor(eID dispatch.ExecutorID) error {
	return c.transport.DisconnectExecutor(eID)
}

func (c *callbacks) TaskError(taskID dispatch.TaskID, message string) error {
	c.log.Printf("task %s failed: %s", taskID, message)
	return nil
}

func (c *callbacks) TaskProcessed(taskID dispatch.TaskID, payload []byte, eType dispatch.ExecutorType) error {
	return nil
}
