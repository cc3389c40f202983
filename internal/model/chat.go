package model

// ChatRequest is a free-text message sent to the travel assistant
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant's reply
type ChatResponse struct {
	Response string `json:"response"`
}
