package dto

// ErrorResponseDTO 는 공통 에러 응답 형식을 통일하기 위한 DTO 이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"topic is empty"`
}

// MessageResponseDTO 는 단순 메시지 응답 형식을 통일하기 위한 DTO 이다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"ok"`
}
