package http

// GenerateRequest is the JSON body of POST /generate-options.
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// GenerateResponse is the success body of POST /generate-options.
type GenerateResponse struct {
	Options  []string `json:"options"`
	Provider string   `json:"provider"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
