package domain

// Subject enumerates what a customer wants help with.
type Subject string

const (
	SubjectAPI       Subject = "api"
	SubjectTechnical Subject = "technical"
	SubjectBilling   Subject = "billing"
	SubjectGeneral   Subject = "general"
	SubjectOther     Subject = "other"
)

// Customer is the directory record for a connected customer.
type Customer struct {
	ConnectionID string  `json:"connectionId"`
	Name         string  `json:"name"`
	Username     string  `json:"username"`
	Subject      Subject `json:"subject"`
	ChatID       string  `json:"chatId"`
}

// AgentOnline is the only agent status the system tracks today.
const AgentOnline = "online"

// Agent is the directory record for a connected support agent.
type Agent struct {
	ConnectionID string `json:"connectionId"`
	Name         string `json:"name"`
	Status       string `json:"status"`
}

// DisplayName returns the name shown to customers.
func (a *Agent) DisplayName() string {
	if a.Name == "" {
		return "Customer Service"
	}
	return a.Name
}
