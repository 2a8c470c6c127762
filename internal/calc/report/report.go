package report

import (
	"fmt"
	"io"
	"time"

	"Strapcalc/internal/calc/securing"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project     string         `json:"project"`
	Author      string         `json:"author"`
	Title       string         `json:"title"`
	Notes       string         `json:"notes"`
	Calculation securing.Input `json:"calculation"`
}

var now = time.Now

// Render calculates in.Calculation and writes the PDF report to w.
func Render(w io.Writer, in Input) error {
	res, err := securing.Calculate(in.Calculation)
	if err != nil {
		return err
	}
	if in.Title == "" {
		in.Title = "Cargo Securing Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	line(pdf, "Project: %s", in.Project)
	line(pdf, "Author: %s", in.Author)
	line(pdf, "Date: %s", now().Format("2006-01-02"))
	pdf.Ln(4)

	cargo := in.Calculation.Cargo
	factors := securing.RegionFactorsFor(cargo.Region)
	section(pdf, "Cargo")
	line(pdf, "Region: %s (%s)", cargo.Region, factors.Standard)
	line(pdf, "Weight: %.2f %s", cargo.Weight, cargo.WeightUnit)
	line(pdf, "Length: %.2f %s", cargo.Length, cargo.DimensionUnit)
	line(pdf, "Securing method: %s, angle %.0f deg", in.Calculation.Method, in.Calculation.AngleOrDefault())
	pdf.Ln(4)

	section(pdf, "Requirement")
	line(pdf, "Required load capacity (incl. %.0f%% margin): %.0f %s", factors.SafetyMargin, res.BaseRequiredWLL, res.Unit)
	line(pdf, "Method factor: %.2f   Angle efficiency: %.2f", res.MethodFactor, res.AngleEfficiencyFactor)
	line(pdf, "Total required WLL: %.0f %s", res.TotalRequiredWLL, res.Unit)
	line(pdf, "Minimum tie-downs: %d", res.MinimumTieDowns)
	pdf.Ln(4)

	section(pdf, "Recommended configurations")
	if res.NoSafeConfiguration {
		pdf.SetTextColor(200, 0, 0)
		pdf.MultiCell(0, 6, "WARNING: "+res.Warning, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	} else {
		recommendationTable(pdf, res.Recommendations)
	}

	if in.Notes != "" {
		pdf.Ln(6)
		section(pdf, "Notes")
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func line(pdf *gofpdf.Fpdf, format string, args ...any) {
	pdf.Cell(0, 6, fmt.Sprintf(format, args...))
	pdf.Ln(6)
}

func recommendationTable(pdf *gofpdf.Fpdf, recs []securing.Recommendation) {
	widths := []float64{22, 32, 38, 30, 68}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Straps", "Strap rating", "Total capacity", "Margin", "Reason"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, rec := range recs {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", rec.StrapCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%.0f %s", rec.StrapWLL, rec.StrapUnit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%.0f %s", rec.TotalCapacity, rec.StrapUnit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.1f%%", rec.SafetyMargin), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, rec.RecommendationReason, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
}
