package domain

// Report summarizes one run
type Report struct {
	Fetched       int `json:"fetched"`
	Eligible      int `json:"eligible"`
	Skipped       int `json:"skipped"`
	Translated    int `json:"translated"`
	Posted        int `json:"posted"`
	Linked        int `json:"linked"`
	LinkFallbacks int `json:"link_fallbacks"`
	Failed        int `json:"failed"`
}

// LogAttrs flattens the report into slog key/value pairs
func (r Report) LogAttrs() []any {
	return []any{
		"fetched", r.Fetched,
		"eligible", r.Eligible,
		"skipped", r.Skipped,
		"translated", r.Translated,
		"posted", r.Posted,
		"linked", r.Linked,
		"link_fallbacks", r.LinkFallbacks,
		"failed", r.Failed,
	}
}
