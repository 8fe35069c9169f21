package payload

type ChatTurn struct {
	Role    string `json:"role"    validate:"required,oneof=user assistant"`
	Message string `json:"message" validate:"required"`
}

type ChatRequest struct {
	Token          string     `json:"token"`
	Query          string     `json:"query"          validate:"required,max=8000"`
	History        []ChatTurn `json:"history"        validate:"max=200,dive"`
	ResponseFormat string     `json:"responseFormat" validate:"max=500"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
