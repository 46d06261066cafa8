package models

// Candidate is one in-scope gym landing page found in the sitemap.
type Candidate struct {
	URL  string `json:"url"`
	Slug string `json:"slug"`
}

// FetchedPage is the outcome of a single GET.
type FetchedPage struct {
	URL        string
	FinalURL   string
	StatusCode int
	Body       []byte
}

// SkippedPage records a candidate that produced no assessment.
type SkippedPage struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}
