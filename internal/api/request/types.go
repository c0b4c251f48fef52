package request

// StartSessionRequest is the request body for starting a session
type StartSessionRequest struct {
	Level string `json:"level"`
}

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	Letter string `json:"letter"`
}
