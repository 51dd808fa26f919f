package models

// LoginConfig holds optional email-delivery credentials. When absent or
// incomplete, delivery falls back to a mailto hand-off outside the core.
type LoginConfig struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	ServiceID  string `json:"serviceId"`
	TemplateID string `json:"templateId"`
	PublicKey  string `json:"publicKey"`
}

// IsConfigured reports whether provider delivery can be used.
func (c *LoginConfig) IsConfigured() bool {
	return c != nil && c.Email != "" && c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}
