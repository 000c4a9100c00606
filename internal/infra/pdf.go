package infra

// pdf.go — asset register PDF export using go-pdf/fpdf.
// A4 landscape table: code, name, status, purchase date, purchase value,
// accumulated depreciation, book value, plus totals row.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-pdf/fpdf"
)

// AssetRegisterRow is one line of the asset register export.
type AssetRegisterRow struct {
	Code          string
	Name          string
	Category      string
	Status        string
	PurchaseDate  time.Time
	PurchaseValue decimal.Decimal
	Depreciation  decimal.Decimal
	BookValue     decimal.Decimal
}

// GenerateAssetRegisterPDF renders the register for a company and returns the
// PDF bytes.
func GenerateAssetRegisterPDF(companyName string, rows []AssetRegisterRow, asOf time.Time) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Asset Register — "+companyName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Book values as of "+asOf.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Column layout ─────────────────────────────────────────────────────────
	widths := []float64{
		contentW * 0.10, // code
		contentW * 0.24, // name
		contentW * 0.13, // category
		contentW * 0.09, // status
		contentW * 0.10, // purchase date
		contentW * 0.12, // purchase value
		contentW * 0.11, // depreciation
		contentW * 0.11, // book value
	}
	headers := []string{"Code", "Name", "Category", "Status", "Purchased", "Purchase", "Depreciation", "Book Value"}
	aligns := []string{"L", "L", "L", "L", "L", "R", "R", "R"}

	pdf.SetFont("Helvetica", "B", 8)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "B", 0, aligns[i], false, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ──────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	totalPurchase := decimal.Zero
	totalBook := decimal.Zero

	for _, r := range rows {
		name := r.Name
		if len(name) > 42 {
			name = name[:41] + "…"
		}
		cells := []string{
			r.Code,
			name,
			r.Category,
			r.Status,
			r.PurchaseDate.Format("2006-01-02"),
			r.PurchaseValue.StringFixed(2),
			r.Depreciation.StringFixed(2),
			r.BookValue.StringFixed(2),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 5, cell, "", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)

		totalPurchase = totalPurchase.Add(r.PurchaseValue)
		totalBook = totalBook.Add(r.BookValue)
	}

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 9)
	label := fmt.Sprintf("Total (%d assets)", len(rows))
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4], 6, label, "T", 0, "L", false, 0, "")
	pdf.CellFormat(widths[5], 6, totalPurchase.StringFixed(2), "T", 0, "R", false, 0, "")
	pdf.CellFormat(widths[6], 6, "", "T", 0, "R", false, 0, "")
	pdf.CellFormat(widths[7], 6, totalBook.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render register: %w", err)
	}
	return buf.Bytes(), nil
}
