package worker

// report_worker.go
// Processes shift-report jobs from QueueReport: renders the closed shift to
// PDF, stores the path on the session row, then enqueues an email job so the
// owner gets the report without polling the dashboard.

import (
	"context"
	"encoding/json"
	"fmt"

	"motelpos/internal/dto"
	"motelpos/internal/infra"
	"motelpos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReportJobPayload is the job envelope sent to QueueReport.
type ReportJobPayload struct {
	SessionID string `json:"session_id"`
}

// ReportBuilder assembles the full shift report. Implemented by the report
// service; declared here so the worker package does not depend on service.
type ReportBuilder interface {
	ShiftReport(ctx context.Context, sessionID uuid.UUID) (*dto.ShiftReportResponse, error)
}

// ReportWorker renders shift-close PDFs off the request path.
type ReportWorker struct {
	reports        ReportBuilder
	shiftRepo      repository.ShiftRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
	motelName      string
	reportEmail    string
}

func NewReportWorker(
	reports ReportBuilder,
	shiftRepo repository.ShiftRepository,
	dispatcher *Dispatcher,
	pdfStoragePath string,
	motelName string,
	reportEmail string,
) *ReportWorker {
	return &ReportWorker{
		reports:        reports,
		shiftRepo:      shiftRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
		motelName:      motelName,
		reportEmail:    reportEmail,
	}
}

// Process handles a single report job:
//  1. Parse ReportJobPayload from the job envelope
//  2. Assemble the report (session, stays, consumptions, expenses)
//  3. Render the PDF and store its path on the session
//  4. Enqueue an email job when a recipient is configured
func (w *ReportWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("report_worker: invalid payload")
		return
	}

	sessionID, err := uuid.Parse(payload.SessionID)
	if err != nil {
		log.Error().Str("session_id", payload.SessionID).Msg("report_worker: invalid session_id")
		return
	}

	report, err := w.reports.ShiftReport(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", payload.SessionID).Msg("report_worker: failed to assemble report")
		return
	}

	pdfPath, err := infra.GenerateShiftReportPDF(report, w.motelName, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("session_id", payload.SessionID).Msg("report_worker: PDF generation failed")
		return
	}

	session, err := w.shiftRepo.FindByID(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", payload.SessionID).Msg("report_worker: session vanished")
		return
	}
	session.ReportPath = &pdfPath
	if err := w.shiftRepo.Update(ctx, session); err != nil {
		log.Warn().Err(err).Str("session_id", payload.SessionID).Msg("report_worker: failed to store report path")
	}
	log.Info().Str("pdf", pdfPath).Str("session_id", payload.SessionID).Msg("report_worker: PDF generated")

	if w.reportEmail != "" {
		emailJob := EmailJobPayload{
			ToEmail: w.reportEmail,
			Subject: fmt.Sprintf("%s — shift report %s (%s)", w.motelName, report.Session.Date, report.Session.Shift),
			Body:    "Attached is the reconciliation report for the closed shift.",
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", w.reportEmail).Msg("report_worker: failed to enqueue email")
		}
	}
}
