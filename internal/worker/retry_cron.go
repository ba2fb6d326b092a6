package worker

// retry_cron.go
// Background goroutine that periodically re-attempts narrative generation for
// sessions stuck in summary_state='pending' with a next_summary_retry_at in
// the past. Uses the Circuit Breaker to avoid hammering a downed sidecar.

import (
	"context"
	"fmt"
	"time"

	"motelpos/internal/infra"
	"motelpos/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10

	// MaxSummaryRetries is the point where a session stops retrying and the
	// job lands in the DLQ.
	MaxSummaryRetries = 5
)

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	ShiftRepo     repository.ShiftRepository
	SummaryWorker *SummaryWorker
	CB            *infra.CircuitBreaker
	RDB           *redis.Client
}

// StartRetryCron launches a background goroutine that ticks every 30s,
// queries pending sessions, and re-attempts sidecar calls through the CB.
// It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	// If CB is open, skip entirely — don't hammer a downed sidecar
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	now := time.Now()
	sessions, err := cfg.ShiftRepo.ListPendingSummaries(ctx, now, retryBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query pending sessions")
		return
	}

	if len(sessions) == 0 {
		return
	}

	log.Info().Int("count", len(sessions)).Msg("retry_cron: processing pending summaries")

	for i := range sessions {
		session := &sessions[i]

		// Check CB state before each call — it may have tripped mid-batch
		if cfg.CB.State() == infra.CBOpen {
			log.Debug().Msg("retry_cron: circuit breaker opened mid-batch, stopping")
			return
		}

		payload, err := cfg.SummaryWorker.buildPayload(ctx, session)
		if err != nil {
			log.Error().Err(err).Str("session_id", session.ID.String()).Msg("retry_cron: failed to build payload")
			continue
		}

		var resp *infra.SummaryResponse
		cbErr := cfg.CB.Execute(func() error {
			r, err := cfg.SummaryWorker.client.Summarize(ctx, *payload)
			if err != nil {
				return err
			}
			resp = r
			return nil
		})

		if cbErr != nil {
			// Failure — increment retry count, schedule next attempt
			session.SummaryRetryCount++
			errMsg := cbErr.Error()
			session.LastSummaryError = &errMsg
			nextRetry := time.Now().Add(computeRetryBackoff(session.SummaryRetryCount))
			session.NextSummaryRetryAt = &nextRetry

			if session.SummaryRetryCount >= MaxSummaryRetries {
				failed := "failed"
				session.SummaryState = &failed
				session.NextSummaryRetryAt = nil
				log.Error().
					Str("session_id", session.ID.String()).
					Int("retries", session.SummaryRetryCount).
					Msg("retry_cron: max retries exceeded, moving to failed/DLQ")

				dlqPayload := fmt.Sprintf(`{"session_id":"%s"}`, session.ID)
				SendToDLQ(ctx, cfg.RDB, QueueSummary, "summary", []byte(dlqPayload),
					fmt.Sprintf("max retries (%d) exceeded: %s", MaxSummaryRetries, errMsg),
					session.SummaryRetryCount)
			} else {
				log.Warn().
					Str("session_id", session.ID.String()).
					Int("retry_count", session.SummaryRetryCount).
					Time("next_retry_at", *session.NextSummaryRetryAt).
					Msg("retry_cron: sidecar retry failed, scheduled next attempt")
			}

			_ = cfg.ShiftRepo.Update(ctx, session)
			continue
		}

		// Success path
		cfg.SummaryWorker.storeSummary(ctx, session, resp.Summary)
		log.Info().
			Str("session_id", session.ID.String()).
			Int("total_retries", session.SummaryRetryCount).
			Msg("retry_cron: narrative obtained after retry")
	}
}
