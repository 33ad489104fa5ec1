package dto

// HealthResponse represents the service health
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Service     string `json:"service" example:"chalee-api"`
	Environment string `json:"environment" example:"development"`
	Database    string `json:"database" example:"up"`
	Timestamp   string `json:"timestamp"`
}
