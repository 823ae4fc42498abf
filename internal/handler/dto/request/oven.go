package request

type CreateOvenRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateOvenRequest struct {
	ID     string `json:"id" binding:"required,uuid"`
	Status string `json:"status" binding:"required,oneof=active maintenance"`
}
