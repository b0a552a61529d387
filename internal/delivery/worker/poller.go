package worker

import (
	"context"
	"log/slog"
	"time"

	"happnings/config"
	"happnings/internal/usecase"

	"go.uber.org/fx"
)

const defaultPollInterval = 30 * time.Second

// Poller periodically claims due reminder schedules and dispatches them.
// It is the durable backstop behind the Pub/Sub push path.
type Poller struct {
	logger     *slog.Logger
	dispatchUc usecase.DispatchUsecase
	interval   time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// PollerParams holds dependencies for the reminder poller
type PollerParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	DispatchUc usecase.DispatchUsecase
}

// NewPoller creates the reminder dispatch poller and ties it to the fx
// lifecycle.
func NewPoller(params PollerParams) *Poller {
	interval := defaultPollInterval
	if params.Config.Notifier != nil && params.Config.Notifier.PollInterval > 0 {
		interval = params.Config.Notifier.PollInterval
	}

	poller := &Poller{
		logger:     params.Logger,
		dispatchUc: params.DispatchUc,
		interval:   interval,
		done:       make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			poller.start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return poller.stop(ctx)
		},
	})

	return poller
}

func (p *Poller) start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	p.logger.Info("Starting reminder poller", slog.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Reminder poller stopped")

			return
		case now := <-ticker.C:
			p.poll(ctx, now)
		}
	}
}

func (p *Poller) poll(ctx context.Context, now time.Time) {
	claimed, err := p.dispatchUc.DispatchDueReminders(ctx, now.UTC())
	if err != nil {
		p.logger.Error("Reminder dispatch scan failed", slog.Any("error", err))

		return
	}

	if claimed > 0 {
		p.logger.Info("Dispatched due reminders", slog.Int("claimed", claimed))
	}
}

func (p *Poller) stop(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
