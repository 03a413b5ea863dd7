package models

// GenerationRequest is the effective input of a single invocation
type GenerationRequest struct {
	URL       string
	OutputDir string
	LogDir    string
}
