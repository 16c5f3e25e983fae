package dto

type TemplateResponse struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Downloads   int     `json:"downloads"`
	Premium     bool    `json:"premium"`
}

type TemplateListResponse struct {
	Templates  []TemplateResponse `json:"templates"`
	Categories []string           `json:"categories"`
	Total      int                `json:"total"`
}

type LawyerResponse struct {
	Id               int      `json:"id"`
	Name             string   `json:"name"`
	Specialty        string   `json:"specialty"`
	Experience       string   `json:"experience"`
	Rating           float64  `json:"rating"`
	Reviews          int      `json:"reviews"`
	HourlyRate       string   `json:"hourly_rate"`
	HourlyRateAmount int      `json:"hourly_rate_amount"`
	Location         string   `json:"location"`
	Languages        []string `json:"languages"`
	Availability     string   `json:"availability"`
	Verified         bool     `json:"verified"`
	TopRated         bool     `json:"top_rated"`
	Description      string   `json:"description"`
}

type LawyerListResponse struct {
	Lawyers     []LawyerResponse `json:"lawyers"`
	Specialties []string         `json:"specialties"`
	Total       int              `json:"total"`
}
