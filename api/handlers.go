package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CristiGvl/diskspace/internal/diskspace"
	"github.com/CristiGvl/diskspace/internal/log"
	"github.com/CristiGvl/diskspace/internal/platform"
)

// MethodCall is the body of a method channel request
type MethodCall struct {
	Method string `json:"method"`
}

// MethodResult is the body of a successful method channel response
type MethodResult struct {
	Method string            `json:"method"`
	Result diskspace.Reading `json:"result"`
}

// errorBody is returned for every failed request
type errorBody struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Method string `json:"method,omitempty"`
}

const (
	codeStorageUnavailable = "storage_unavailable"
	codeNotImplemented     = "not_implemented"
	codeTimeout            = "timeout"
)

func (s *Server) queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.queryTimeout)
}

// queryError maps a query failure onto an HTTP response
func queryError(c *fiber.Ctx, method string, err error) error {
	switch {
	case errors.Is(err, diskspace.ErrStorageUnavailable):
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{
			Error: err.Error(), Code: codeStorageUnavailable, Method: method,
		})
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusGatewayTimeout).JSON(errorBody{
			Error: err.Error(), Code: codeTimeout, Method: method,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: err.Error(), Method: method})
	}
}

// Method channel endpoint
func (s *Server) callMethod(c *fiber.Ctx) error {
	var call MethodCall
	if err := c.BodyParser(&call); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "invalid request body"})
	}

	ctx, cancel := s.queryContext()
	defer cancel()

	resp, err := s.query.Handle(ctx, diskspace.ParseOperation(call.Method))
	if err != nil {
		log.Error().Str("method", call.Method).Err(err).Msg("Disk space query failed")
		return queryError(c, call.Method, err)
	}

	if !resp.Implemented {
		log.Warn().Str("method", call.Method).Msg("Unsupported method")
		return c.Status(fiber.StatusNotImplemented).JSON(errorBody{
			Error:  diskspace.ErrUnsupportedOperation.Error(),
			Code:   codeNotImplemented,
			Method: call.Method,
		})
	}

	return c.JSON(MethodResult{Method: call.Method, Result: resp.Value})
}

// Capacity endpoint
func (s *Server) getCapacity(c *fiber.Ctx) error {
	ctx, cancel := s.queryContext()
	defer cancel()

	capacity, err := s.query.Capacity(ctx)
	if err != nil {
		return queryError(c, "", err)
	}

	return c.JSON(capacity)
}

// Total capacity endpoint
func (s *Server) getTotal(c *fiber.Ctx) error {
	ctx, cancel := s.queryContext()
	defer cancel()

	total, err := s.query.TotalMB(ctx)
	if err != nil {
		return queryError(c, diskspace.MethodTotal, err)
	}

	return c.JSON(MethodResult{Method: diskspace.MethodTotal, Result: total})
}

// Free capacity endpoint
func (s *Server) getFree(c *fiber.Ctx) error {
	ctx, cancel := s.queryContext()
	defer cancel()

	free, err := s.query.FreeMB(ctx)
	if err != nil {
		return queryError(c, diskspace.MethodFree, err)
	}

	return c.JSON(MethodResult{Method: diskspace.MethodFree, Result: free})
}

// Volume description endpoint
func (s *Server) getVolume(c *fiber.Ctx) error {
	ctx, cancel := s.queryContext()
	defer cancel()

	info, err := s.diskReader.GetInfo(ctx, s.query.Path())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: err.Error()})
	}

	return c.JSON(info)
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	ctx, cancel := s.queryContext()
	defer cancel()

	status, code := "ok", fiber.StatusOK
	if _, err := s.query.Capacity(ctx); err != nil {
		log.Warn().Err(err).Msg("Health check could not read data volume")
		status, code = "degraded", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"platform":  platform.GetOS(),
		"data_dir":  s.query.Path(),
		"timestamp": time.Now().Unix(),
	})
}
