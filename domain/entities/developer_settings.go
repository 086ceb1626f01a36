package entities

import (
	"time"
)

// Preferred LLM identifiers accepted by the settings service. The selection
// is a closed enumeration; anything else is rejected at the boundary.
const (
	LLMGeminiPro        = "gemini-pro"
	LLMGemini15Pro      = "gemini-1.5-pro"
	LLMGemini15Flash    = "gemini-1.5-flash"
	DefaultPreferredLLM = LLMGeminiPro
)

// ValidPreferredLLM reports whether name is an accepted model selection.
func ValidPreferredLLM(name string) bool {
	switch name {
	case LLMGeminiPro, LLMGemini15Pro, LLMGemini15Flash:
		return true
	}
	return false
}

// DeveloperSettings holds per-user preferences. At most one row exists per
// user; writes go through upsert-by-userID.
type DeveloperSettings struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"userId"`
	PreferredLLM string    `db:"preferred_llm" json:"preferredLlm"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
