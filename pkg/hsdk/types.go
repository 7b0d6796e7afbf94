package hsdk

import "time"

// API models for the recruiting backend. The backend owns all semantics
// (profiling, screening, scoring happen server-side); these are plain
// transport shapes.

// Vacancy is a job opening owned by a recruiter. Status moves through
// draft -> profiling -> published -> closed; profiling is the AI chat that
// fills in requirements.
type Vacancy struct {
	ID           string    `json:"id,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Requirements []string  `json:"requirements,omitempty"`
	NiceToHave   []string  `json:"nice_to_have,omitempty"`
	Status       string    `json:"status,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// Candidate is an applicant on a vacancy, screened and scored by the backend.
type Candidate struct {
	ID        string          `json:"id,omitempty"`
	VacancyID string          `json:"vacancy_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	ResumeURL string          `json:"resume_url,omitempty"`
	Status    string          `json:"status,omitempty"`
	Score     *ScreeningScore `json:"score,omitempty"`
	AppliedAt time.Time       `json:"applied_at,omitempty"`
}

// ScreeningScore is the backend's evaluation of a candidate against a
// vacancy. Component scores sum into Total (0-100).
type ScreeningScore struct {
	Experience float64 `json:"experience_score"`
	Education  float64 `json:"education_score"`
	Skills     float64 `json:"skills_score"`
	Total      float64 `json:"total_score"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// ChatMessage is one turn of a profiling or screening conversation.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ChatRequest is the payload for the recruiter chat endpoint.
type ChatRequest struct {
	VacancyID string `json:"vacancy_id"`
	Message   string `json:"message"`
}
