// Package server provides the HTTP REST API for the extension generator.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/extension-forge/internal/codegen"
	"github.com/jonathan/extension-forge/internal/manifest"
	"github.com/jonathan/extension-forge/internal/output"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error
func HTTPStatus(err error) int {
	var validationErr *manifest.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity
	}

	var codegenErr *codegen.Error
	if errors.As(err, &codegenErr) {
		return http.StatusInternalServerError
	}

	var ioErr *output.IOError
	if errors.As(err, &ioErr) {
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
