package models

// RocketInfoResponse is the 200 body.
type RocketInfoResponse struct {
	Question string `json:"Question"`
	Response string `json:"Response"`
}

// ErrorResponse is the 500 body.
type ErrorResponse struct {
	Error   string `json:"Error"`
	Details string `json:"Details"`
}
