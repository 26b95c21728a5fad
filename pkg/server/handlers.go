package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/datacontract/pkg/contract"
	"github.com/NVIDIA/datacontract/pkg/dataset"
	"github.com/NVIDIA/datacontract/pkg/serializer"
)

// ValidateRequest is the POST /v1/validate body: a contract document plus
// the dataset to check against it.
type ValidateRequest struct {
	Contract *contract.Document `json:"contract" yaml:"contract"`
	Dataset  DatasetPayload     `json:"dataset" yaml:"dataset"`
}

// DatasetPayload carries tabular data as an ordered column list plus one
// map per row. Keys absent from a record become null cells.
type DatasetPayload struct {
	Columns []string         `json:"columns" yaml:"columns"`
	Records []map[string]any `json:"records" yaml:"records"`
}

// LintResponse is the POST /v1/lint success body.
type LintResponse struct {
	Status   string `json:"status" yaml:"status"`
	Contract string `json:"contract" yaml:"contract"`
	Fields   int    `json:"fields" yaml:"fields"`
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteError(w, r, ErrCodeInvalidRequest, "malformed request body", map[string]any{"error": err.Error()})
		return false
	}
	// Reject trailing garbage after the JSON document
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		WriteError(w, r, ErrCodeInvalidRequest, "unexpected data after request body", nil)
		return false
	}
	return true
}

// handleValidate handles POST /v1/validate. Data violations are not API
// errors: a failing dataset still yields 200 with a fail-status report.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, r, ErrCodeMethodNotAllowed, "only POST is supported", nil)
		return
	}

	apiVersion := negotiateAPIVersion(r)

	var req ValidateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	c, err := contract.FromDocument(req.Contract)
	if err != nil {
		WriteError(w, r, ErrCodeInvalidContract, "invalid contract", map[string]any{"error": err.Error()})
		return
	}

	ds, err := dataset.FromRecords(req.Dataset.Columns, req.Dataset.Records)
	if err != nil {
		WriteError(w, r, ErrCodeInvalidDataset, "invalid dataset", map[string]any{"error": err.Error()})
		return
	}

	report, err := s.validator.Validate(r.Context(), c, ds)
	if err != nil {
		WriteErrorFromErr(w, r, err, "validation failed", nil)
		return
	}

	slog.Info("validated dataset",
		"contract", c.Name(),
		"api_version", apiVersion,
		"rows", ds.Len(),
		"violations", len(report.Violations),
		"status", report.Summary.Status,
	)

	serializer.RespondJSON(w, http.StatusOK, report)
}

// handleLint handles POST /v1/lint: contract construction checks only,
// no dataset involved.
func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, r, ErrCodeMethodNotAllowed, "only POST is supported", nil)
		return
	}

	var doc contract.Document
	if !s.decodeBody(w, r, &doc) {
		return
	}

	c, err := contract.FromDocument(&doc)
	if err != nil {
		WriteError(w, r, ErrCodeInvalidContract, "invalid contract", map[string]any{"error": err.Error()})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, LintResponse{
		Status:   "ok",
		Contract: c.Name(),
		Fields:   c.Len(),
	})
}
