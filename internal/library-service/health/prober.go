package health

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const probeTimeout = 10 * time.Second

// Prober runs an Indicator on a cron schedule and logs each outcome. It keeps no history.
type Prober interface {
	Start() error
	Stop()
}

type prober struct {
	cron      *cron.Cron
	schedule  string
	indicator Indicator
	logger    *zap.Logger
}

// Start is a no-op when the schedule is empty.
func (p *prober) Start() error {
	if p.schedule == "" {
		p.logger.Info("periodic health probe disabled")
		return nil
	}
	if _, err := p.cron.AddFunc(p.schedule, p.probe); err != nil {
		return fmt.Errorf("Prober.Start: %w", err)
	}
	p.cron.Start()
	p.logger.Info("periodic health probe started", zap.String("schedule", p.schedule))
	return nil
}

// Stop waits for a running probe to finish.
func (p *prober) Stop() {
	<-p.cron.Stop().Done()
}

func (p *prober) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	h := p.indicator.Health(ctx)
	fields := []zap.Field{zap.String("health_status", h.Status)}
	for k, v := range h.Details {
		fields = append(fields, zap.String(k, v))
	}
	if h.IsUp() {
		p.logger.Info("database health probe", fields...)
	} else {
		p.logger.Warn("database health probe", fields...)
	}
}

func NewProber(logger *zap.Logger, indicator Indicator, schedule string) Prober {
	return &prober{
		cron:      cron.New(),
		schedule:  schedule,
		indicator: indicator,
		logger:    logger,
	}
}
