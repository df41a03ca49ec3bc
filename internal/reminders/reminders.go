package reminders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclenote/internal/analytics"
	"github.com/terraincognita07/cyclenote/internal/models"
)

const maxRememberedReminders = 500

type Sender interface {
	Send(ctx context.Context, message string) error
}

type UserLister interface {
	ListAll() ([]models.User, error)
}

type LogReader interface {
	FetchAllLogs(userID uint) ([]models.SymptomLog, error)
}

// Service sends a period reminder when a user's predicted next period is exactly
// daysAhead days away. Each user gets at most one reminder per calendar day.
type Service struct {
	users     UserLister
	logs      LogReader
	sender    Sender
	daysAhead int
	location  *time.Location
	now       func() time.Time
	log       *logrus.Logger

	mu   sync.Mutex
	sent map[string]time.Time
}

func NewService(users UserLister, logs LogReader, sender Sender, daysAhead int, location *time.Location, log *logrus.Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		users:     users,
		logs:      logs,
		sender:    sender,
		daysAhead: daysAhead,
		location:  location,
		now:       time.Now,
		log:       log,
		sent:      make(map[string]time.Time),
	}
}

// RunOnce checks every user and returns how many reminders were delivered.
func (service *Service) RunOnce(ctx context.Context) int {
	users, err := service.users.ListAll()
	if err != nil {
		service.log.WithError(err).Error("reminders: list users failed")
		return 0
	}

	today := analytics.DateOnly(service.now().In(service.location))
	delivered := 0
	for _, user := range users {
		if ctx.Err() != nil {
			return delivered
		}

		entry := service.log.WithField("user_id", user.ID)
		logs, err := service.logs.FetchAllLogs(user.ID)
		if err != nil {
			entry.WithError(err).Warn("reminders: load logs failed")
			continue
		}

		stats := analytics.ComputeCycleStatistics(logs)
		if stats == nil || !stats.IsComputed() || stats.NextPeriodDate == nil {
			continue
		}
		if analytics.DaysBetween(today, *stats.NextPeriodDate) != service.daysAhead {
			continue
		}

		key := fmt.Sprintf("period:%d:%s", user.ID, today.Format("2006-01-02"))
		if !service.markSent(key, today) {
			continue
		}
		if err := service.sender.Send(ctx, periodReminderMessage(service.daysAhead, *stats.NextPeriodDate)); err != nil {
			service.forget(key)
			entry.WithError(err).Warn("reminders: send period reminder failed")
			continue
		}
		entry.Info("reminders: period reminder sent")
		delivered++
	}
	return delivered
}

func periodReminderMessage(daysAhead int, next time.Time) string {
	switch daysAhead {
	case 0:
		return fmt.Sprintf("cyclenote reminder: your period is predicted to start today (%s).", next.Format("Jan 2"))
	case 1:
		return fmt.Sprintf("cyclenote reminder: your period is predicted to start tomorrow (%s).", next.Format("Jan 2"))
	default:
		return fmt.Sprintf("cyclenote reminder: your period is predicted to start in %d days on %s.", daysAhead, next.Format("Jan 2"))
	}
}

func (service *Service) markSent(key string, today time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if sentOn, ok := service.sent[key]; ok && sentOn.Equal(today) {
		return false
	}
	if len(service.sent) >= maxRememberedReminders {
		service.sent = make(map[string]time.Time)
	}
	service.sent[key] = today
	return true
}

func (service *Service) forget(key string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	delete(service.sent, key)
}
