package handler

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type PreferenceRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type PreferenceResponse struct {
	Enabled   bool `json:"enabled"`
	Persisted bool `json:"persisted"`
}

type VisibilityRequest struct {
	Hidden bool `json:"hidden"`
}

type VisibilityResponse struct {
	PollScheduled bool `json:"poll_scheduled"`
}

type SessionResetResponse struct {
	Cleared int `json:"cleared"`
}
