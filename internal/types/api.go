package types

import (
	"github.com/go-playground/validator/v10"
)

// GenerateRequest represents a request to run the full generation pipeline.
type GenerateRequest struct {
	Prompt    string `json:"prompt" validate:"required,min=3,max=1000"`
	TargetDir string `json:"target_dir,omitempty"`
	Write     bool   `json:"write,omitempty"`
}

// AnalyzeRequest represents a request to run prompt analysis only.
type AnalyzeRequest struct {
	Prompt string `json:"prompt" validate:"max=1000"`
}

// GenerateResponse is returned by the generate endpoint with the full bundle
// and a summary of what was inferred.
type GenerateResponse struct {
	Features *FeatureSet      `json:"features"`
	Bundle   *ExtensionBundle `json:"bundle"`
	Report   *WriteReport     `json:"report,omitempty"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
