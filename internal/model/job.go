package model

// CareerInfo is the O*NET-backed description the backend returns for a job
// title lookup.
type CareerInfo struct {
	Description string   `json:"description"`
	Tasks       []string `json:"tasks"`
}
