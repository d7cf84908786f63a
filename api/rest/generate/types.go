package generate

import (
	"bytes"
	"encoding/json"

	"codeberg.org/randseq/server/internal/sequence"
)

// Field holds a numeric form field as submitted: the web form posts
// strings, API clients post numbers. Parsing is deferred to the sequence
// package so non-numeric input is reported as invalid_input.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}

	*f = Field(data)
	return nil
}

// Request represents the request body for number generation
type Request struct {
	NumDigits       Field  `json:"num_digits" swaggertype:"string" example:"6"`
	MinValue        Field  `json:"min_value" swaggertype:"string" example:"0"`
	MaxValue        Field  `json:"max_value" swaggertype:"string" example:"9"`
	DuplicateOption string `json:"duplicate_option" example:"allow_duplicates"`
	AllowDuplicates *bool  `json:"allow_duplicates,omitempty"`
}

// resolves the duplicate mode: duplicate_option wins, the boolean is a fallback
func (r Request) mode() string {
	if r.DuplicateOption == "" && r.AllowDuplicates != nil {
		if *r.AllowDuplicates {
			return string(sequence.ModeAllowDuplicates)
		}
		return string(sequence.ModeUniqueNumbers)
	}

	return r.DuplicateOption
}

// Response represents the response for number generation
type Response struct {
	GeneratedOutput string  `json:"generated_output" example:"042719"`
	Values          []int64 `json:"values"`
	Count           int64   `json:"count"`
	Min             int64   `json:"min"`
	Max             int64   `json:"max"`
	DuplicateOption string  `json:"duplicate_option"`
}
