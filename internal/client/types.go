package client

// REST API request/response types

type generateRequest struct {
	NumDigits       int64  `json:"num_digits"`
	MinValue        int64  `json:"min_value"`
	MaxValue        int64  `json:"max_value"`
	DuplicateOption string `json:"duplicate_option"`
}

type generateResponse struct {
	GeneratedOutput string  `json:"generated_output"`
	Values          []int64 `json:"values"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
