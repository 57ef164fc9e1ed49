package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// CreateBatchRequest is the JSON body for POST /api/v1/batches.
type CreateBatchRequest struct {
	Accounts []string `json:"accounts"`
	Region   string   `json:"region"`
}

// decodeCreateBatchRequest reads and validates the request body.
func decodeCreateBatchRequest(r *http.Request) (*CreateBatchRequest, error) {
	var req CreateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	req.Region = strings.TrimSpace(req.Region)
	if req.Region == "" {
		return nil, fmt.Errorf("region is required")
	}
	if strings.ContainsAny(req.Region, " \t") {
		return nil, fmt.Errorf("invalid region %q", req.Region)
	}

	return &req, nil
}
