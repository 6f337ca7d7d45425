package types

import "encoding/json"

// Result is a single unit of tool output handed to output providers.
type Result struct {
	Tool     string      `json:"tool"`
	Filename string      `json:"-"`
	Data     interface{} `json:"data"`
}

type ResultOption func(*Result)

func NewResult(tool string, data interface{}, opts ...ResultOption) Result {
	r := &Result{
		Tool: tool,
		Data: data,
	}

	for _, opt := range opts {
		opt(r)
	}
	return *r
}

func WithFilename(filename string) ResultOption {
	return func(r *Result) {
		r.Filename = filename
	}
}

func (r *Result) String() string {
	if s, ok := r.Data.(string); ok {
		return s
	}
	d, _ := json.MarshalIndent(r.Data, "", "  ")
	return string(d)
}

func (r *Result) DataJson() []byte {
	d, _ := json.Marshal(r.Data)
	return d
}
