package services

import (
	"revenue-check/models"
	"revenue-check/utils"
)

// Verifier decides whether a period total matches one of the reference totals.
type Verifier struct {
	logger *utils.Logger
}

func NewVerifier(logger *utils.Logger) *Verifier {
	return &Verifier{logger: logger}
}

// Verify compares the computed total with the reference totals using exact float equality,
// complete total first. Any rounding difference therefore lands on VerdictReviewRequired,
// never on a false "complete". The per-salesperson comparison is for display only.
func (v *Verifier) Verify(total float64, ref models.Reference, byRep []models.RepSubtotal) models.Verification {
	result := models.Verification{
		Verdict:     models.VerdictReviewRequired,
		Computed:    total,
		Reference:   ref,
		Comparisons: compareReps(ref.ExpectedByRep, byRep),
	}

	if total == ref.CompleteTotal {
		result.Verdict = models.VerdictComplete
	} else if total == ref.MissingOrderTotal {
		result.Verdict = models.VerdictMissingOrder
	}

	if result.Verdict == models.VerdictComplete {
		v.logger.Info("[verifier] %s total %s matches the complete reference", ref.Period, utils.FormatUSD(total))
	} else {
		v.logger.Warn("[verifier] %s total %s: verdict %s", ref.Period, utils.FormatUSD(total), result.Verdict)
	}
	return result
}

// compareReps lists expected reps in reference order, then reps only seen in the data.
func compareReps(expected []models.RepExpectation, actual []models.RepSubtotal) []models.RepComparison {
	out := make([]models.RepComparison, 0, len(expected)+len(actual))
	pos := make(map[string]int, len(expected))

	for _, e := range expected {
		pos[e.Salesperson] = len(out)
		out = append(out, models.RepComparison{
			Salesperson: e.Salesperson,
			Expected:    e.Total,
			HasExpected: true,
		})
	}
	for _, a := range actual {
		amount := a.Total.InexactFloat64()
		if i, ok := pos[a.Salesperson]; ok {
			out[i].Actual = amount
			out[i].HasActual = true
			continue
		}
		out = append(out, models.RepComparison{
			Salesperson: a.Salesperson,
			Actual:      amount,
			HasActual:   true,
		})
	}
	return out
}
