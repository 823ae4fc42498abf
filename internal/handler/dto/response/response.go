package response

import "github.com/google/uuid"

// Success envelopes. Failures go through httperr with the same shape plus a
// message, so every body carries a "success" discriminator.

type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type IDResponse struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Data(data any) DataResponse {
	return DataResponse{Success: true, Data: data}
}

func ID(id uuid.UUID) IDResponse {
	return IDResponse{Success: true, ID: id}
}

func Message(msg string) MessageResponse {
	return MessageResponse{Success: true, Message: msg}
}

type IDMessageResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

func IDMessage(id uuid.UUID, msg string) IDMessageResponse {
	return IDMessageResponse{Success: true, Message: msg, ID: id}
}
