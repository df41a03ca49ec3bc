package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type Scheduler struct {
	engine  *cron.Cron
	service *Service
	spec    string
	log     *logrus.Logger
}

func NewScheduler(service *Service, spec string, location *time.Location, log *logrus.Logger) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		engine:  cron.New(cron.WithLocation(location)),
		service: service,
		spec:    spec,
		log:     log,
	}
}

func (scheduler *Scheduler) Start(ctx context.Context) error {
	_, err := scheduler.engine.AddFunc(scheduler.spec, func() {
		sent := scheduler.service.RunOnce(ctx)
		scheduler.log.WithField("sent", sent).Debug("reminders: run finished")
	})
	if err != nil {
		return fmt.Errorf("schedule reminders %q: %w", scheduler.spec, err)
	}

	scheduler.engine.Start()
	scheduler.log.WithField("spec", scheduler.spec).Info("reminders: scheduler started")
	return nil
}

// Stop waits for a running job to finish or for ctx to expire, whichever is first.
func (scheduler *Scheduler) Stop(ctx context.Context) {
	done := scheduler.engine.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
