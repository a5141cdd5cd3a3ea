package models

// Counts is the aggregate read backing the dashboard landing page.
type Counts struct {
	Certifications  int64 `json:"certifications"`
	Education       int64 `json:"education"`
	Projects        int64 `json:"projects"`
	Technologies    int64 `json:"technologies"`
	Testimonials    int64 `json:"testimonials"`
	WorkExperiences int64 `json:"workExperiences"`
}
