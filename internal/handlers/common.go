// common.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// Package handlers maps the page routes onto the page services. Each
// handler struct covers one side of the app (owner pages, tenant pages,
// accounts, shell) and renders through the shared JSON envelope in utils.
package handlers

import (
	"errors"
	"time"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/store"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/types"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// fail renders a service error. Validation failures list their fields,
// missing records are a 404; anything else propagates to the global
// error handler as a CustomError tagged with the failing operation.
func fail(c *fiber.Ctx, err error, op string) error {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		return utils.ValidationErrorResponse(c, verr.Fields)
	}
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFoundResponse(c, "Record not found")
	}
	return &types.CustomError{
		Code:    fiber.StatusInternalServerError,
		Message: err.Error(),
		Type:    op,
	}
}

// ErrorHandler handles errors globally, rendering them in the standard
// envelope with the CustomError code and type when one is carried.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var cerr *types.CustomError
	if errors.As(err, &cerr) {
		code = cerr.Code
		message = cerr.Message
		errorType = cerr.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// invalidInput is the standard response for an unparseable request body.
func invalidInput(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
}
