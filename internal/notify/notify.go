package notify

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EmailVerifiedEvent struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

type ApplicationStatusEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"application_id"`
	JobTitle      string `json:"job_title"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

// EmailVerified tells the user's open sessions that verification
// completed, typically in another tab.
func (h *Hub) EmailVerified(userID uuid.UUID) {
	if h == nil {
		return
	}
	h.sendJSON(userID, EmailVerifiedEvent{
		Type:      "email_verified",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Hub) ApplicationStatusChanged(userID, applicationID uuid.UUID, jobTitle, status string) {
	if h == nil {
		return
	}
	h.sendJSON(userID, ApplicationStatusEvent{
		Type:          "application_status_changed",
		ApplicationID: applicationID.String(),
		JobTitle:      jobTitle,
		Status:        status,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Hub) sendJSON(userID uuid.UUID, evt any) {
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Send(userID, b)
}
