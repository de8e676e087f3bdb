package handlers

import (
	"github.com/asia-jinzai-support/orientation-consent/internal/blob"
	"github.com/asia-jinzai-support/orientation-consent/internal/orientation"
	"github.com/asia-jinzai-support/orientation-consent/internal/pdf"
)

// WorkflowHandler serves the four-stage consent flow. It is stateless:
// everything a stage needs (token, language, signature URL) arrives in
// the request itself, so a handler instance can be shared freely.
type WorkflowHandler struct {
	gate     *orientation.Gate
	blobs    *blob.Client
	renderer *pdf.Renderer
}

// NewWorkflowHandler creates the handler for the consent flow stages.
func NewWorkflowHandler(gate *orientation.Gate, blobs *blob.Client, renderer *pdf.Renderer) *WorkflowHandler {
	return &WorkflowHandler{
		gate:     gate,
		blobs:    blobs,
		renderer: renderer,
	}
}
