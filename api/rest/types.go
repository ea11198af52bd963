// Package rest provides the REST API server for expression conversion.
package rest

import "yqhp/postfix/internal/batch"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	Position *int   `json:"position,omitempty"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ReadyResponse represents a readiness check response.
type ReadyResponse struct {
	Ready     bool   `json:"ready"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ConvertRequest represents a single conversion request.
type ConvertRequest struct {
	Expression string `json:"expression"`
}

// ConvertResponse represents a single conversion result.
type ConvertResponse struct {
	RequestID string   `json:"request_id"`
	Infix     string   `json:"infix"`
	Postfix   string   `json:"postfix"`
	Tokens    []string `json:"tokens"`
}

// BatchRequest represents a batch conversion request.
type BatchRequest struct {
	Expressions []string `json:"expressions"`
}

// BatchResponse represents a batch conversion result.
type BatchResponse struct {
	RequestID string        `json:"request_id"`
	Results   []batch.Item  `json:"results"`
	Summary   batch.Summary `json:"summary"`
}
