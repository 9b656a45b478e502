package server

import (
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/warehouse"
)

// =============================================================================
// Request Types
// =============================================================================

// LayoutRequest is the request body for computing a layout.
type LayoutRequest struct {
	Config  warehouse.Config `json:"config"`
	Refresh bool             `json:"refresh,omitempty"`
}

// ValidateRequest is the request body for validating a configuration.
type ValidateRequest struct {
	Config warehouse.Config `json:"config"`
}

// =============================================================================
// Response Types
// =============================================================================

// LayoutResponse is the response for a computed layout.
type LayoutResponse struct {
	LayoutID   string              `json:"layout_id"`
	ConfigHash string              `json:"config_hash"`
	Cached     bool                `json:"cached"`
	Warnings   []warehouse.Warning `json:"warnings"`
	Tree       *warehouse.Tree     `json:"tree"`
}

// ValidateResponse is the response for a validation request.
type ValidateResponse struct {
	Valid  bool                    `json:"valid"`
	Errors []warehouse.ConfigError `json:"errors"`
}

// ValidationFailureResponse is returned with status 422 when a layout is
// requested for a config that fails validation.
type ValidationFailureResponse struct {
	Errors []warehouse.ConfigError `json:"errors"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse reports build information.
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// ErrorResponse is the generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
