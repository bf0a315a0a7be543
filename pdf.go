package main

import (
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 10
	pdfLineHeight = 6
	pdfFontSize   = 9
)

// pdfColumns mirrors the detailed table layout; widths sum to the
// printable A4 width.
var pdfColumns = []struct {
	title string
	width float64
}{
	{"Permission", 24},
	{"Owner", 28},
	{"Name", 62},
	{"Type", 14},
	{"Size B", 26},
	{"Modified", 36},
}

// generatePDF renders the detailed listing of path to a PDF file.
func generatePDF(path string, entries []Entry, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pdfFontSize+2)
	pdf.CellFormat(pdfPageWidth-2*pdfMargin, pdfLineHeight, fmt.Sprintf("Listing of %s", path), "", 1, "L", false, 0, "")
	pdf.Ln(pdfLineHeight / 2)

	pdf.SetFont("Helvetica", "B", pdfFontSize)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, pdfLineHeight, col.title, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Courier", "", pdfFontSize)
	for _, e := range entries {
		cells := []string{
			e.Permissions,
			e.Owner,
			e.Name,
			string(e.Kind),
			strconv.FormatUint(e.Size, 10),
			e.modifiedDisplay(),
		}
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, pdfLineHeight, cells[i], "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", outputPath, err)
	}
	fmt.Printf("Output saved to %s\n", outputPath)
	return nil
}
