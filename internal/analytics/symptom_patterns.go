package analytics

import (
	"sort"

	"github.com/terraincognita07/cyclenote/internal/models"
)

const (
	MinLogsForPatterns = 5
	TopSymptomCount    = 5
)

type SymptomCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type SymptomPatterns struct {
	HasEnoughData  bool           `json:"has_enough_data"`
	CommonSymptoms []string       `json:"common_symptoms"`
	Counts         []SymptomCount `json:"counts"`
	TotalLogs      int            `json:"total_logs"`
}

// ComputeSymptomPatterns ranks symptom labels by the number of logged days that mention them.
// A date logged more than once counts once, using its last entry. Ties keep the order in
// which labels were first seen, walking the days oldest first.
func ComputeSymptomPatterns(logs []models.SymptomLog) SymptomPatterns {
	logs = dedupeAndSortByDate(logs)
	if len(logs) < MinLogsForPatterns {
		return SymptomPatterns{
			HasEnoughData:  false,
			CommonSymptoms: []string{},
			Counts:         []SymptomCount{},
			TotalLogs:      len(logs),
		}
	}

	ranked := rankSymptoms(logs)
	if len(ranked) > TopSymptomCount {
		ranked = ranked[:TopSymptomCount]
	}

	labels := make([]string, 0, len(ranked))
	for _, item := range ranked {
		labels = append(labels, item.Label)
	}

	return SymptomPatterns{
		HasEnoughData:  true,
		CommonSymptoms: labels,
		Counts:         ranked,
		TotalLogs:      len(logs),
	}
}

func rankSymptoms(logs []models.SymptomLog) []SymptomCount {
	indexByLabel := make(map[string]int)
	counts := make([]SymptomCount, 0)

	for _, entry := range logs {
		seenInLog := make(map[string]struct{}, len(entry.Symptoms))
		for _, label := range entry.Symptoms {
			if _, seen := seenInLog[label]; seen {
				continue
			}
			seenInLog[label] = struct{}{}

			index, known := indexByLabel[label]
			if !known {
				index = len(counts)
				indexByLabel[label] = index
				counts = append(counts, SymptomCount{Label: label})
			}
			counts[index].Count++
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
