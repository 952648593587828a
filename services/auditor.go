package services

import (
	"github.com/google/uuid"

	"revenue-check/models"
	"revenue-check/utils"
)

// Auditor runs the full check of one normalized table against a reference.
type Auditor struct {
	logger     *utils.Logger
	aggregator *Aggregator
	inspector  *Inspector
	verifier   *Verifier
}

func NewAuditor(logger *utils.Logger) *Auditor {
	return &Auditor{
		logger:     logger,
		aggregator: NewAggregator(logger),
		inspector:  NewInspector(logger),
		verifier:   NewVerifier(logger),
	}
}

// Audit builds the report for the reference period and the reference's missing order.
func (a *Auditor) Audit(t *models.Table, ref models.Reference) *models.Report {
	runID := uuid.NewString()
	report := &models.Report{
		RunID:    runID,
		Overview: a.aggregator.Overview(t),
		Period:   a.aggregator.Summarize(t, ref.Period),
		Order:    a.inspector.LookupOrder(t, ref.MissingOrder),
	}

	// The decimal sum is exact; its nearest float64 is what the reference literals are compared to.
	total := report.Period.Total.InexactFloat64()
	report.Verification = a.verifier.Verify(total, ref, report.Period.ByRep)

	a.logger.With("run_id", runID).Info("[auditor] %d rows, %d in %s, order %d present=%t, verdict=%s",
		report.Overview.TotalRows, report.Period.Rows, ref.Period,
		ref.MissingOrder, report.Order.Found, report.Verification.Verdict)
	return report
}
