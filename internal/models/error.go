package models

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"erro" example:"Pedido não encontrado"`
}

// ChangesResponse reports how many rows a delete or update touched
type ChangesResponse struct {
	Message string `json:"mensagem" example:"Pizza removida"`
	Changes int64  `json:"changes" example:"1"`
}

// NewErrorResponse creates an error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
