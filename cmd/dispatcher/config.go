package main

import (
	"time"

	envstruct "code.cloudfoundry.org/go-envstruct"
	"code.cloudfoundry.org/task-dispatcher/internal/tls"
)

// Config is the configuration for a Dispatcher.
type Config struct {
	ExecutorAddr string `env:"EXECUTOR_ADDR, report"`
	IngressAddr  string `env:"INGRESS_ADDR, report"`
	GatewayAddr  string `env:"GATEWAY_ADDR, report"`
	HealthAddr   string `env:"HEALTH_ADDR, report"`

	// PipelineStages are the executor types every task is routed
	// through, in order.
	PipelineStages []string `env:"PIPELINE_STAGES, report"`

	SweepInterval time.Duration `env:"SWEEP_INTERVAL, report"`

	FailOnTooFrozen         bool `env:"FAIL_ON_TOO_FROZEN, report"`
	FreezeOnFailedDispatch  bool `env:"FREEZE_ON_FAILED_DISPATCH, report"`
	FreezeOnUnknownExecutor bool `env:"FREEZE_ON_UNKNOWN_EXECUTOR, report"`

	TLS tls.TLS
}

// LoadConfig creates Config object from environment variables
func LoadConfig() (*Config, error) {
	c := Config{
		ExecutorAddr:  ":8080",
		IngressAddr:   ":8081",
		GatewayAddr:   ":8082",
		HealthAddr:    "localhost:6064",
		SweepInterval: 200 * time.Second,

		FailOnTooFrozen:         true,
		FreezeOnFailedDispatch:  true,
		FreezeOnUnknownExecutor: true,
	}

	if err := envstruct.Load(&c); err != nil {
		return nil, err
	}

	return &c, nil
}
