// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// ReportDocument is the renderable form of a generated report.
type ReportDocument struct {
	Title    string
	UserName string
	Sections []ReportSection
}

// ReportSection is one titled block of label/value rows in a report document.
type ReportSection struct {
	Heading string
	Rows    []ReportRow
}

// ReportRow is a single label/value line in a report section.
type ReportRow struct {
	Label string
	Value string
}

// PDFRenderer renders a report document to PDF through an external service.
type PDFRenderer interface {
	// Render renders the document and returns the PDF bytes.
	Render(ctx context.Context, doc ReportDocument) ([]byte, error)
}
