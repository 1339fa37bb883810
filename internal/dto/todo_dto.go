package dto

// TodoStatusUpdateRequest changes the status of one todo item.
type TodoStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}
