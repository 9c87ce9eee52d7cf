// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fundflow/backend/config"
	"github.com/fundflow/backend/internal/application/adapter"
)

// pdfClient implements adapter.PDFRenderer against an external HTTP rendering
// service that accepts the document as JSON and returns PDF bytes.
type pdfClient struct {
	cfg        config.PDFConfig
	httpClient *http.Client
}

// NewPDFClient creates a new PDF rendering client instance.
func NewPDFClient(cfg config.PDFConfig) adapter.PDFRenderer {
	return &pdfClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Render renders the document and returns the PDF bytes.
func (c *pdfClient) Render(ctx context.Context, doc adapter.ReportDocument) ([]byte, error) {
	if c.cfg.ServiceURL == "" {
		return nil, fmt.Errorf("pdf service is not configured")
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ServiceURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call pdf service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pdf service returned status %d", resp.StatusCode)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf response: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("pdf service returned an empty document")
	}
	return pdf, nil
}
