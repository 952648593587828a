package services

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"revenue-check/models"
	"revenue-check/utils"
)

// maxListedColumns matches how many header columns the overview prints.
const maxListedColumns = 15

// Reporter prints a Report as human-readable text.
type Reporter struct {
	out io.Writer

	title   lipgloss.Style
	section lipgloss.Style
	bold    lipgloss.Style
	good    lipgloss.Style
	warn    lipgloss.Style
	bad     lipgloss.Style
	muted   lipgloss.Style
}

// NewReporter creates a Reporter writing to w. Colour follows the terminal behind w
// and is turned off entirely when noColor is set.
func NewReporter(w io.Writer, noColor bool) *Reporter {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Reporter{
		out:     w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		bold:    r.NewStyle().Bold(true),
		good:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		bad:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		muted:   r.NewStyle().Faint(true),
	}
}

func (rp *Reporter) Print(r *models.Report) {
	sep := strings.Repeat("═", 60)
	thin := strings.Repeat("─", 60)

	rp.printf("\n%s\n", rp.title.Render(sep))
	rp.printf("%s\n", rp.title.Render("  SALES EXPORT REVENUE CHECK"))
	rp.printf("%s\n", rp.muted.Render("  run "+r.RunID))
	rp.printf("%s\n\n", rp.title.Render(sep))

	rp.printOverview(r.Overview, thin)
	rp.printPeriod(r.Period, thin)
	rp.printOrder(r.Order, thin)
	rp.printIssuedDates(r.Period, thin)
	rp.printComparison(r.Verification, thin)
	rp.printVerdict(r.Verification, thin)

	rp.printf("%s\n\n", rp.title.Render(sep))
}

func (rp *Reporter) printOverview(ov models.TableOverview, thin string) {
	rp.heading("File Overview", thin)
	rp.printf("  Source          : %s\n", ov.Source)
	rp.printf("  Total rows      : %s\n", rp.bold.Render(utils.FormatCount(ov.TotalRows)))

	cols := ov.Columns
	if len(cols) > maxListedColumns {
		cols = cols[:maxListedColumns]
	}
	rp.printf("  Columns         : %s\n", strings.Join(cols, ", "))
	rp.printf("  Sales persons   : %s\n", strings.Join(ov.Salespersons, ", "))
	rp.printf("\n  Rows by sales person\n")
	for _, rc := range ov.RowsByRep {
		rp.printf("    %-24s %8s\n", displayName(rc.Salesperson), utils.FormatCount(rc.Rows))
	}
	rp.printf("\n")
}

func (rp *Reporter) printPeriod(ps models.PeriodSummary, thin string) {
	rp.heading(ps.Period, thin)
	rp.printf("  Rows            : %s\n", utils.FormatCount(ps.Rows))
	rp.printf("  Unique orders   : %s\n", utils.FormatCount(ps.DistinctOrders))
	rp.printf("  Total revenue   : %s\n", rp.good.Render(utils.FormatDecimalUSD(ps.Total)))

	if ps.Rows == 0 {
		rp.printf("  No rows for this period\n\n")
		return
	}

	rp.printf("\n  Revenue by sales person\n")
	for _, rs := range ps.ByRep {
		rp.printf("    %-24s %16s\n", displayName(rs.Salesperson), utils.FormatDecimalUSD(rs.Total))
	}

	ls := ps.LineStats
	rp.printf("\n  Line items      : mean %s | median %s | min %s | max %s\n\n",
		utils.FormatUSD(ls.Mean), utils.FormatUSD(ls.Median), utils.FormatUSD(ls.Min), utils.FormatUSD(ls.Max))
}

func (rp *Reporter) printOrder(ol models.OrderLookup, thin string) {
	rp.heading(fmt.Sprintf("Order %d Check", ol.OrderNumber), thin)
	if !ol.Found {
		rp.printf("  Has order %d   : %s\n\n", ol.OrderNumber, rp.bad.Render("false"))
		return
	}

	rp.printf("  Has order %d   : %s\n", ol.OrderNumber, rp.good.Render("true"))
	rp.printf("  Rows            : %d\n", ol.Rows)
	rp.printf("  Revenue         : %s\n", utils.FormatDecimalUSD(ol.Total))
	rp.printf("  Issued dates    : %s\n", strings.Join(ol.IssuedDates, ", "))
	rp.printf("  Year-month      : %s\n", strings.Join(ol.Periods, ", "))
	rp.printf("  Sales person    : %s\n", strings.Join(ol.Salespersons, ", "))

	rp.printf("\n  %-12s %-16s %-12s %-28s %14s\n", "Issued date", "Year-month", "Sales person", "Product", "Total Price")
	for _, l := range ol.Lines {
		rp.printf("  %-12s %-16s %-12s %-28s %14s\n",
			l.IssuedDate, l.Period, l.Salesperson, truncate(l.Product, 28), utils.FormatDecimalUSD(l.TotalPrice))
	}
	rp.printf("\n")
}

func (rp *Reporter) printIssuedDates(ps models.PeriodSummary, thin string) {
	rp.heading("Issued Dates in "+ps.Period, thin)
	if len(ps.TopIssuedDates) == 0 {
		rp.printf("  No issued dates\n\n")
		return
	}
	for _, dc := range ps.TopIssuedDates {
		rp.printf("  %-24s %6d\n", displayName(dc.IssuedDate), dc.Rows)
	}
	rp.printf("\n")
}

func (rp *Reporter) printComparison(v models.Verification, thin string) {
	rp.heading("Expected vs Actual", thin)
	rp.printf("  %-24s %16s %16s\n", "Total", utils.FormatUSD(v.Reference.CompleteTotal), utils.FormatUSD(v.Computed))
	for _, c := range v.Comparisons {
		expected, actual := "-", "-"
		if c.HasExpected {
			expected = utils.FormatUSD(c.Expected)
		}
		if c.HasActual {
			actual = utils.FormatUSD(c.Actual)
		}
		line := fmt.Sprintf("  %-24s %16s %16s", displayName(c.Salesperson), expected, actual)
		if d := c.Delta(); d != 0 {
			line += "  " + rp.warn.Render(signedUSD(d))
		}
		rp.printf("%s\n", line)
	}
	rp.printf("\n")
}

func (rp *Reporter) printVerdict(v models.Verification, thin string) {
	rp.heading("Verdict", thin)
	headline, action := VerdictText(v)
	if v.Verdict.Importable() {
		rp.printf("  %s\n  %s\n\n", rp.good.Render(headline), rp.good.Render(action))
		return
	}
	rp.printf("  %s\n  %s\n\n", rp.warn.Render(headline), rp.bad.Render(action))
}

// VerdictText returns the headline and the recommended action for a verification.
func VerdictText(v models.Verification) (headline, action string) {
	switch v.Verdict {
	case models.VerdictComplete:
		return fmt.Sprintf("FILE IS COMPLETE - revenue matches expected %s", utils.FormatUSD(v.Reference.CompleteTotal)),
			"GO FOR IMPORT"
	case models.VerdictMissingOrder:
		return fmt.Sprintf("FILE IS MISSING ORDER %d - revenue is %s (short %s)",
				v.Reference.MissingOrder, utils.FormatUSD(v.Computed), utils.FormatUSD(v.Shortfall())),
			"DO NOT IMPORT - get complete file"
	default:
		return fmt.Sprintf("UNEXPECTED REVENUE: %s", utils.FormatUSD(v.Computed)),
			"REVIEW REQUIRED"
	}
}

func (rp *Reporter) heading(name, thin string) {
	rp.printf("%s\n", rp.section.Render("  "+name))
	rp.printf("  %s\n", thin)
}

func (rp *Reporter) printf(format string, args ...any) {
	fmt.Fprintf(rp.out, format, args...)
}

func signedUSD(f float64) string {
	if f > 0 {
		return "+" + utils.FormatUSD(f)
	}
	return utils.FormatUSD(f)
}

func displayName(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(blank)"
	}
	return s
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
