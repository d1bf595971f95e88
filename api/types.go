package api

// healthResponse is the GET /health body
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// scoreResponse is the POST /api/v1/score body
type scoreResponse struct {
	Score int    `json:"score"`
	Tier  string `json:"tier"`
}

// errorResponse is the JSON error envelope
type errorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
