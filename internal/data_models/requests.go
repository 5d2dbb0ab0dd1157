package dto

type CreatePlanRequest struct {
	Goal string `json:"goal" form:"goal"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" form:"status"`
}
