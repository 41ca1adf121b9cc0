package api

import (
	"encoding/json"

	"github.com/satriahrh/genai-backend/domain/entities"
)

// SynthesizeRequest represents the request payload for speech synthesis
type SynthesizeRequest struct {
	Text      string          `json:"text"`
	AgentName json.RawMessage `json:"agent_name,omitempty"`
}

// agent returns agent_name as a string. Numbers, objects and other
// non-string values are kept as their raw JSON text, so they never match a persona.
func (r SynthesizeRequest) agent() string {
	if len(r.AgentName) == 0 {
		return ""
	}
	var name string
	if err := json.Unmarshal(r.AgentName, &name); err == nil {
		return name
	}
	return string(r.AgentName)
}

// MessageResponse is the welcome payload
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status string `json:"status"`
}

// PersonasResponse lists the persona roster
type PersonasResponse struct {
	Personas []entities.Persona `json:"personas"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}
