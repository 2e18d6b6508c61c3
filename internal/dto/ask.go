package dto

// AskRequest carries the user's free-text prompt.
type AskRequest struct {
	Prompt string `json:"prompt"`
}

// AskResponse carries the model's answer.
type AskResponse struct {
	Response string `json:"response"`
}
