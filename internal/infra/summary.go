package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SummaryPayload is sent by the worker pool to the summary sidecar. The
// sidecar turns the shift figures into a short narrative for the owner.
type SummaryPayload struct {
	SessionID          string   `json:"session_id"`
	Date               string   `json:"date"`
	Shift              string   `json:"shift"`
	RoomRevenue        float64  `json:"room_revenue"`
	ConsumptionRevenue float64  `json:"consumption_revenue"`
	TotalExpenses      float64  `json:"total_expenses"`
	NetIncome          float64  `json:"net_income"`
	ExpectedCash       float64  `json:"expected_cash"`
	DeclaredCash       *float64 `json:"declared_cash,omitempty"`
	Variance           *float64 `json:"variance,omitempty"`
	Classification     string   `json:"classification,omitempty"`
	StayCount          int      `json:"stay_count"`
	PendingStayCount   int      `json:"pending_stay_count"`
}

// SummaryResponse is returned by the sidecar.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// SummaryClient delegates narrative generation to the Python sidecar over
// HTTP. Keeping the LLM call out of process isolates its failures from the
// core backend.
type SummaryClient struct {
	sidecarURL string
	httpClient *http.Client
}

func NewSummaryClient(sidecarURL string) *SummaryClient {
	return &SummaryClient{
		sidecarURL: sidecarURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Summarize sends a POST to the sidecar and returns the generated narrative.
func (c *SummaryClient) Summarize(ctx context.Context, payload SummaryPayload) (*SummaryResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("summary: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sidecarURL+"/summarize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("summary: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("summary: sidecar unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("summary: sidecar returned %d", resp.StatusCode)
	}

	var result SummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("summary: decode response: %w", err)
	}
	return &result, nil
}
