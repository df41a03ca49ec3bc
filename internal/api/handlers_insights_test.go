package api

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

type cycleStatisticsBody struct {
	Status          string  `json:"status"`
	HasEnoughData   bool    `json:"has_enough_data"`
	AvgCycleLength  any     `json:"avg_cycle_length"`
	AvgPeriodLength any     `json:"avg_period_length"`
	NextPeriodDate  *string `json:"next_period_date"`
}

func TestCycleStatisticsEndpointStates(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "insights-cycle@example.com")

	empty := doJSONRequest(t, app, http.MethodGet, "/api/insights/cycle", "", authCookie)
	defer empty.Body.Close()
	raw, err := io.ReadAll(empty.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if strings.TrimSpace(string(raw)) != "null" {
		t.Fatalf("expected null body without logs, got %q", string(raw))
	}

	putLog(t, app, authCookie, "2026-01-01", `{"flow":3,"mood":5}`)
	insufficient := doJSONRequest(t, app, http.MethodGet, "/api/insights/cycle", "", authCookie)
	defer insufficient.Body.Close()
	stats := cycleStatisticsBody{}
	decodeJSONBody(t, insufficient.Body, &stats)
	if stats.HasEnoughData || stats.AvgCycleLength != "N/A" || stats.AvgPeriodLength != "N/A" {
		t.Fatalf("expected insufficient statistics, got %#v", stats)
	}
	if stats.NextPeriodDate != nil {
		t.Fatalf("expected no prediction, got %q", *stats.NextPeriodDate)
	}

	putLog(t, app, authCookie, "2026-01-29", `{"flow":2,"mood":5}`)
	computed := doJSONRequest(t, app, http.MethodGet, "/api/insights/cycle", "", authCookie)
	defer computed.Body.Close()
	stats = cycleStatisticsBody{}
	decodeJSONBody(t, computed.Body, &stats)
	if !stats.HasEnoughData {
		t.Fatalf("expected enough data, got %#v", stats)
	}
	if stats.AvgCycleLength != float64(28) || stats.AvgPeriodLength != float64(1) {
		t.Fatalf("expected averages 28/1, got %#v", stats)
	}
	if stats.NextPeriodDate == nil || *stats.NextPeriodDate != "2026-02-26" {
		t.Fatalf("expected next period 2026-02-26, got %#v", stats.NextPeriodDate)
	}
}

func TestSymptomPatternsEndpoint(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "insights-symptoms@example.com")

	days := []string{"2026-02-01", "2026-02-02", "2026-02-03", "2026-02-04"}
	for _, day := range days {
		putLog(t, app, authCookie, day, `{"mood":5,"symptoms":["Cramps"]}`)
	}

	few := doJSONRequest(t, app, http.MethodGet, "/api/insights/symptoms", "", authCookie)
	defer few.Body.Close()
	patterns := struct {
		HasEnoughData  bool     `json:"has_enough_data"`
		CommonSymptoms []string `json:"common_symptoms"`
	}{}
	decodeJSONBody(t, few.Body, &patterns)
	if patterns.HasEnoughData || len(patterns.CommonSymptoms) != 0 {
		t.Fatalf("expected insufficient patterns with four logs, got %#v", patterns)
	}

	putLog(t, app, authCookie, "2026-02-05", `{"mood":5,"symptoms":["Headache","Cramps"]}`)
	enough := doJSONRequest(t, app, http.MethodGet, "/api/insights/symptoms", "", authCookie)
	defer enough.Body.Close()
	decodeJSONBody(t, enough.Body, &patterns)
	if !patterns.HasEnoughData {
		t.Fatal("expected patterns with five logs")
	}
	if len(patterns.CommonSymptoms) != 2 || patterns.CommonSymptoms[0] != "Cramps" || patterns.CommonSymptoms[1] != "Headache" {
		t.Fatalf("unexpected common symptoms %#v", patterns.CommonSymptoms)
	}
}

func TestChatContextEndpointQuotesStatistics(t *testing.T) {
	t.Parallel()

	app, handler, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "insights-chat@example.com")
	handler.now = func() time.Time { return time.Date(2026, time.February, 20, 15, 0, 0, 0, time.UTC) }
	putLog(t, app, authCookie, "2026-01-01", `{"flow":3,"mood":5}`)
	putLog(t, app, authCookie, "2026-01-29", `{"flow":3,"mood":5}`)

	response := doJSONRequest(t, app, http.MethodGet, "/api/insights/chat-context", "", authCookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := struct {
		Prompt string `json:"prompt"`
	}{}
	decodeJSONBody(t, response.Body, &payload)
	for _, fragment := range []string{"as of 2026-02-20", "Average cycle length: 28 days", "2026-02-26 (in 6 days)"} {
		if !strings.Contains(payload.Prompt, fragment) {
			t.Fatalf("expected prompt to contain %q, got %q", fragment, payload.Prompt)
		}
	}
}

func TestInsightsOverviewAndDefaultSymptoms(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "insights-overview@example.com")

	overview := doJSONRequest(t, app, http.MethodGet, "/api/insights", "", authCookie)
	defer overview.Body.Close()
	payload := map[string]any{}
	decodeJSONBody(t, overview.Body, &payload)
	if _, ok := payload["cycle"]; !ok {
		t.Fatalf("expected cycle key, got %#v", payload)
	}
	if _, ok := payload["symptoms"]; !ok {
		t.Fatalf("expected symptoms key, got %#v", payload)
	}

	defaults := doJSONRequest(t, app, http.MethodGet, "/api/symptoms/defaults", "", authCookie)
	defer defaults.Body.Close()
	labels := struct {
		Symptoms []string `json:"symptoms"`
	}{}
	decodeJSONBody(t, defaults.Body, &labels)
	if len(labels.Symptoms) == 0 || labels.Symptoms[0] != "Cramps" {
		t.Fatalf("unexpected default symptoms %#v", labels.Symptoms)
	}
}
