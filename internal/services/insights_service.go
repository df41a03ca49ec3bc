package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/cyclenote/internal/analytics"
	"github.com/terraincognita07/cyclenote/internal/models"
)

type InsightsLogReader interface {
	FetchAllLogs(userID uint) ([]models.SymptomLog, error)
}

type InsightsService struct {
	logs InsightsLogReader
}

type Insights struct {
	Cycle    *analytics.CycleStatistics `json:"cycle"`
	Symptoms analytics.SymptomPatterns  `json:"symptoms"`
}

func NewInsightsService(logs InsightsLogReader) *InsightsService {
	return &InsightsService{logs: logs}
}

// CycleStatistics returns nil statistics when the user has not logged anything yet.
func (service *InsightsService) CycleStatistics(userID uint) (*analytics.CycleStatistics, error) {
	logs, err := service.logs.FetchAllLogs(userID)
	if err != nil {
		return nil, err
	}
	return analytics.ComputeCycleStatistics(logs), nil
}

func (service *InsightsService) SymptomPatterns(userID uint) (analytics.SymptomPatterns, error) {
	logs, err := service.logs.FetchAllLogs(userID)
	if err != nil {
		return analytics.SymptomPatterns{}, err
	}
	return analytics.ComputeSymptomPatterns(logs), nil
}

func (service *InsightsService) Overview(userID uint) (Insights, error) {
	logs, err := service.logs.FetchAllLogs(userID)
	if err != nil {
		return Insights{}, err
	}
	return Insights{
		Cycle:    analytics.ComputeCycleStatistics(logs),
		Symptoms: analytics.ComputeSymptomPatterns(logs),
	}, nil
}

func (service *InsightsService) ChatContext(userID uint, today time.Time) (string, error) {
	insights, err := service.Overview(userID)
	if err != nil {
		return "", err
	}
	return BuildChatContext(insights, today), nil
}

// BuildChatContext turns derived insights into plain sentences that the chat assistant
// receives as background. It never invents numbers for the insufficient-data states.
func BuildChatContext(insights Insights, today time.Time) string {
	var builder strings.Builder
	today = DateAtLocation(today, today.Location())
	fmt.Fprintf(&builder, "Tracking summary as of %s.\n", today.Format(DayLayout))

	stats := insights.Cycle
	switch {
	case stats == nil:
		builder.WriteString("The user has not logged any days yet.\n")
	case !stats.IsComputed():
		builder.WriteString("Not enough period days have been logged to estimate cycle length.\n")
	default:
		fmt.Fprintf(&builder, "Average cycle length: %d days.\n", stats.AvgCycleLength)
		fmt.Fprintf(&builder, "Average period length: %d days.\n", stats.AvgPeriodLength)
		if stats.NextPeriodDate != nil {
			daysUntil := analytics.DaysBetween(today, *stats.NextPeriodDate)
			fmt.Fprintf(&builder, "Next period predicted for %s (%s).\n", stats.NextPeriodDate.Format(DayLayout), describeDayOffset(daysUntil))
		}
		if !stats.HasEnoughData {
			builder.WriteString("Cycle history is limited, so the prediction uses a default cycle length.\n")
		}
	}

	patterns := insights.Symptoms
	if !patterns.HasEnoughData {
		fmt.Fprintf(&builder, "Symptom patterns need at least %d logged days.\n", analytics.MinLogsForPatterns)
		return builder.String()
	}
	if len(patterns.Counts) == 0 {
		builder.WriteString("No symptoms have been recorded.\n")
		return builder.String()
	}

	parts := make([]string, 0, len(patterns.Counts))
	for _, item := range patterns.Counts {
		parts = append(parts, fmt.Sprintf("%s (%d of %d days)", item.Label, item.Count, patterns.TotalLogs))
	}
	fmt.Fprintf(&builder, "Most common symptoms: %s.\n", strings.Join(parts, ", "))
	return builder.String()
}

func describeDayOffset(days int) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	case days == -1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}
