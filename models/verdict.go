package models

import "fmt"

// Verdict is the outcome of comparing a period total to the reference totals.
type Verdict int

const (
	VerdictReviewRequired Verdict = iota
	VerdictComplete
	VerdictMissingOrder
)

func (v Verdict) String() string {
	switch v {
	case VerdictComplete:
		return "complete"
	case VerdictMissingOrder:
		return "missing_order"
	default:
		return "review_required"
	}
}

// Importable reports whether the file may go to the downstream system.
func (v Verdict) Importable() bool {
	return v == VerdictComplete
}

// RepExpectation is a hand-known subtotal for one salesperson.
type RepExpectation struct {
	Salesperson string  `yaml:"salesperson"`
	Total       float64 `yaml:"total"`
}

// Reference holds the hand-known totals a period is checked against.
// ExpectedByRep is shown next to the actual breakdown and never decides the verdict.
type Reference struct {
	Period            string           `yaml:"period"`
	CompleteTotal     float64          `yaml:"complete_total"`
	MissingOrderTotal float64          `yaml:"missing_order_total"`
	MissingOrder      int64            `yaml:"missing_order"`
	ExpectedByRep     []RepExpectation `yaml:"expected_by_rep"`
}

// Validate checks the reference can tell its two totals apart.
func (r Reference) Validate() error {
	if r.Period == "" {
		return fmt.Errorf("reference: period must not be empty")
	}
	if r.CompleteTotal == r.MissingOrderTotal {
		return fmt.Errorf("reference: complete_total and missing_order_total are both %.2f", r.CompleteTotal)
	}
	return nil
}

// RepComparison puts an expected and an actual subtotal side by side.
type RepComparison struct {
	Salesperson string
	Expected    float64
	Actual      float64
	HasExpected bool
	HasActual   bool
}

// Delta is Actual minus Expected, zero when either side is absent.
func (c RepComparison) Delta() float64 {
	if !c.HasExpected || !c.HasActual {
		return 0
	}
	return c.Actual - c.Expected
}

// Verification is the verifier's result for one period.
type Verification struct {
	Verdict     Verdict
	Computed    float64
	Reference   Reference
	Comparisons []RepComparison
}

// Shortfall is how far the computed total sits below the complete total.
func (v Verification) Shortfall() float64 {
	return v.Reference.CompleteTotal - v.Computed
}
