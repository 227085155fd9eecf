// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-case-vault/internal/logger"
)

// DefaultProbeInterval is used when the probe is created with a
// non-positive interval.
const DefaultProbeInterval = 30 * time.Second

// HealthProbe polls GET /health of the blob store. It only reads the public
// endpoint and never touches the session.
type HealthProbe struct {
	checker  HealthChecker
	report   StatusReporter
	interval time.Duration
	timeout  time.Duration

	logger *logger.Logger
}

func NewHealthProbe(checker HealthChecker, report StatusReporter, interval time.Duration, logger *logger.Logger) *HealthProbe {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &HealthProbe{
		checker:  checker,
		report:   report,
		interval: interval,
		timeout:  interval / 2,
		logger:   logger,
	}
}

// Run probes once right away and then on every tick until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *HealthProbe) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	status, err := p.checker.Health(probeCtx)
	if ctx.Err() != nil {
		// shutting down
		return
	}
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "*HealthProbe.probe").Msg("blob store unreachable")
	}
	p.report(status, err)
}
