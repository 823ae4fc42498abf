package request

import "time"

// Times arrive as RFC 3339 strings; encoding/json handles the parse.

type CreateBookingRequest struct {
	OvenID    string    `json:"ovenId"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Title     string    `json:"title"`
}

type UpdateBookingRequest struct {
	OvenID    string    `json:"ovenId"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Title     string    `json:"title"`
}

type CancelBookingRequest struct {
	BookingID string `json:"bookingId" binding:"required,uuid"`
}
