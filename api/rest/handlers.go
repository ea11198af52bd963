package rest

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"yqhp/postfix/internal/batch"
	"yqhp/postfix/internal/expression"
)

// healthCheck handles GET /health
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// readyCheck handles GET /ready
func (s *Server) readyCheck(c *fiber.Ctx) error {
	ready := s.processor != nil
	status := "ready"
	if !ready {
		status = "not_ready"
	}

	return c.JSON(ReadyResponse{
		Ready:     ready,
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// convert handles POST /api/v1/convert
func (s *Server) convert(c *fiber.Ctx) error {
	var req ConvertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
		})
	}

	if limit := s.config.MaxExpressionLength; limit > 0 && len(req.Expression) > limit {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "expression_too_long",
			Message: fmt.Sprintf("Expression exceeds %d bytes", limit),
		})
	}

	result, err := expression.Convert(req.Expression)
	if err != nil {
		s.logger.Debug("conversion failed",
			zap.String("request_id", requestID(c)),
			zap.String("infix", req.Expression),
			zap.Error(err),
		)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(conversionError(err))
	}

	tokens := make([]string, len(result.Tokens))
	for i, tok := range result.Tokens {
		tokens[i] = tok.Literal
	}

	return c.JSON(ConvertResponse{
		RequestID: requestID(c),
		Infix:     result.Infix,
		Postfix:   result.Postfix,
		Tokens:    tokens,
	})
}

// convertBatch handles POST /api/v1/convert/batch
func (s *Server) convertBatch(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
		})
	}

	if len(req.Expressions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "At least one expression is required",
		})
	}
	if limit := s.config.MaxBatchSize; limit > 0 && len(req.Expressions) > limit {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "batch_too_large",
			Message: fmt.Sprintf("Batch exceeds %d expressions", limit),
		})
	}

	if limit := s.config.MaxExpressionLength; limit > 0 {
		for i, expr := range req.Expressions {
			if len(expr) > limit {
				return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
					Error:   "expression_too_long",
					Message: fmt.Sprintf("Expression %d exceeds %d bytes", i+1, limit),
				})
			}
		}
	}

	items, err := s.processor.Process(c.UserContext(), batch.FromStrings(req.Expressions))
	if err != nil {
		var lineErr *batch.LineError
		if errors.As(err, &lineErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(conversionError(err))
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(BatchResponse{
		RequestID: requestID(c),
		Results:   items,
		Summary:   batch.Summarize(items),
	})
}

// conversionError maps a conversion failure to its response body.
func conversionError(err error) ErrorResponse {
	resp := ErrorResponse{
		Error:   "conversion_failed",
		Message: err.Error(),
	}

	var tokenErr *expression.InvalidTokenError
	var bracketErr *expression.MismatchedBracketError
	switch {
	case errors.As(err, &tokenErr):
		pos := tokenErr.Position
		resp.Error = "invalid_token"
		resp.Position = &pos
	case errors.As(err, &bracketErr):
		pos := bracketErr.Position
		resp.Error = "mismatched_bracket"
		resp.Position = &pos
	}
	return resp
}
