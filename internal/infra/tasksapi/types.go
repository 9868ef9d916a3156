package tasksapi

import "encoding/json"

const UpcomingPath = "/tasks/api/upcoming/"

// upcomingPayload defers task decoding so one bad entry does not sink the batch.
type upcomingPayload struct {
	Tasks []json.RawMessage `json:"tasks"`
}
