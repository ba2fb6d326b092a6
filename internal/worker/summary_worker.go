package worker

// summary_worker.go
// Processes narrative jobs from QueueSummary: sends the closed shift's
// figures to the summary sidecar and stores the generated text on the
// session. Immediate failures get exponential backoff (max 3 in-process
// retries); after that the session stays in summary_state='pending' and the
// retry cron takes over.

import (
	"context"
	"encoding/json"
	"time"

	"motelpos/internal/infra"
	"motelpos/internal/model"
	"motelpos/internal/repository"
	"motelpos/internal/shiftcalc"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SummaryJobPayload is the job envelope sent to QueueSummary.
type SummaryJobPayload struct {
	SessionID string `json:"session_id"`
}

// SummaryWorker calls the summary sidecar and persists the narrative.
type SummaryWorker struct {
	client      *infra.SummaryClient
	shiftRepo   repository.ShiftRepository
	occupancies repository.OccupancyRepository
}

func NewSummaryWorker(
	client *infra.SummaryClient,
	shiftRepo repository.ShiftRepository,
	occupancies repository.OccupancyRepository,
) *SummaryWorker {
	return &SummaryWorker{client: client, shiftRepo: shiftRepo, occupancies: occupancies}
}

// Process handles a single summary job:
//  1. Parse SummaryJobPayload from the job envelope
//  2. Fetch the closed session and build the sidecar payload
//  3. Call the sidecar with exponential backoff (max 3 retries)
//  4. Store the narrative, or leave the session pending for the retry cron
func (w *SummaryWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload SummaryJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("summary_worker: invalid payload")
		return
	}

	sessionID, err := uuid.Parse(payload.SessionID)
	if err != nil {
		log.Error().Str("session_id", payload.SessionID).Msg("summary_worker: invalid session_id")
		return
	}

	session, err := w.shiftRepo.FindByID(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", payload.SessionID).Msg("summary_worker: session not found")
		return
	}

	sidecarPayload, err := w.buildPayload(ctx, session)
	if err != nil {
		log.Error().Err(err).Str("session_id", payload.SessionID).Msg("summary_worker: failed to build payload")
		return
	}

	var resp *infra.SummaryResponse
	callErr := withRetry(ctx, 3, func(attempt int) error {
		r, err := w.client.Summarize(ctx, *sidecarPayload)
		if err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("session_id", payload.SessionID).
				Msg("summary_worker: sidecar attempt failed, retrying")
			return err
		}
		resp = r
		return nil
	})

	if callErr != nil {
		// Stays pending — the retry cron picks it up from next_summary_retry_at
		errMsg := callErr.Error()
		session.SummaryRetryCount++
		session.LastSummaryError = &errMsg
		nextRetry := time.Now().Add(computeRetryBackoff(session.SummaryRetryCount))
		session.NextSummaryRetryAt = &nextRetry
		_ = w.shiftRepo.Update(ctx, session)
		log.Error().Err(callErr).Str("session_id", payload.SessionID).Msg("summary_worker: sidecar failed after all retries")
		return
	}

	w.storeSummary(ctx, session, resp.Summary)
	log.Info().Str("session_id", payload.SessionID).Msg("summary_worker: narrative stored")
}

// buildPayload flattens the session's frozen reconciliation plus stay counts
// into the sidecar request.
func (w *SummaryWorker) buildPayload(ctx context.Context, session *model.ShiftSession) (*infra.SummaryPayload, error) {
	p := &infra.SummaryPayload{
		SessionID: session.ID.String(),
		Date:      session.Date.Format("2006-01-02"),
		Shift:     session.Shift,
	}
	if session.RoomRevenue != nil {
		p.RoomRevenue = session.RoomRevenue.InexactFloat64()
	}
	if session.ConsumptionRevenue != nil {
		p.ConsumptionRevenue = session.ConsumptionRevenue.InexactFloat64()
	}
	if session.TotalExpenses != nil {
		p.TotalExpenses = session.TotalExpenses.InexactFloat64()
	}
	if session.NetIncome != nil {
		p.NetIncome = session.NetIncome.InexactFloat64()
	}
	if session.ExpectedCash != nil {
		p.ExpectedCash = session.ExpectedCash.InexactFloat64()
	}
	if session.DeclaredCash != nil {
		v := session.DeclaredCash.InexactFloat64()
		p.DeclaredCash = &v
	}
	if session.Variance != nil {
		v := session.Variance.InexactFloat64()
		p.Variance = &v
	}
	if session.Classification != nil {
		p.Classification = *session.Classification
	}

	label, err := shiftcalc.ParseLabel(session.Shift)
	if err != nil {
		return nil, err
	}
	window := shiftcalc.WindowFor(session.Date, label)

	closed, err := w.occupancies.ListClosedBetween(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	p.StayCount = len(closed)

	open, err := w.occupancies.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	stays := make([]shiftcalc.OpenStay, len(open))
	for i, o := range open {
		stays[i] = shiftcalc.OpenStay{ID: o.ID.String(), RoomNumber: o.Room.Number, CheckIn: o.CheckIn}
	}
	p.PendingStayCount = len(shiftcalc.ActiveAsOf(stays, window))

	return p, nil
}

func (w *SummaryWorker) storeSummary(ctx context.Context, session *model.ShiftSession, text string) {
	done := "done"
	session.Summary = &text
	session.SummaryState = &done
	session.NextSummaryRetryAt = nil
	session.LastSummaryError = nil
	if err := w.shiftRepo.Update(ctx, session); err != nil {
		log.Error().Err(err).Str("session_id", session.ID.String()).Msg("summary_worker: failed to store narrative")
	}
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

// computeRetryBackoff spaces cron-driven retries: 2m, 4m, 8m … capped at 32m.
func computeRetryBackoff(retryCount int) time.Duration {
	if retryCount > 5 {
		retryCount = 5
	}
	return time.Duration(2<<uint(retryCount-1)) * time.Minute
}
