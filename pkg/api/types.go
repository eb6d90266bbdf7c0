package api

// ValidateRequest is the body of POST /v1/validate. A nil Value is the
// absent value.
type ValidateRequest struct {
	Value *string `json:"value"`
}

// BatchRequest is the body of POST /v1/validate/batch.
type BatchRequest struct {
	Values []*string `json:"values"`
}

// Result is the verdict for one value.
type Result struct {
	Value   *string `json:"value"`
	Valid   bool    `json:"valid"`
	Reason  string  `json:"reason,omitempty"`
	Message string  `json:"message,omitempty"`
}

type BatchResult struct {
	Results []Result `json:"results"`
	Valid   int      `json:"valid"`
	Invalid int      `json:"invalid"`
}

type RulesResponse struct {
	Precision    int  `json:"precision"`
	Scale        int  `json:"scale"`
	OnlyPositive bool `json:"only_positive"`
}

type errorResponse struct {
	Error string `json:"error"`
}
