package taskstub

type SeedTask struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Deadline string `json:"deadline"`
	// InMinutes places the deadline relative to now when Deadline is empty.
	InMinutes *int `json:"in_minutes"`
}

type SeedRequest struct {
	Tasks []SeedTask `json:"tasks" binding:"required"`
}

type FailRequest struct {
	Status int `json:"status"`
}
