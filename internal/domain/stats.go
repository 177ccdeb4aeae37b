package domain

// Stats are the live aggregate chat counters shown on the agent dashboard.
type Stats struct {
	ActiveChats  int `json:"activeChats"`
	WaitingChats int `json:"waitingChats"`
	TotalChats   int `json:"totalChats"`
}
