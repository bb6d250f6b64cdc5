package dto

// AuthContextResponse tells the client what embedded browser it is
// running in and which sign-in methods that environment supports.
type AuthContextResponse struct {
	Context      string `json:"context"`
	DisplayName  string `json:"display_name"`
	OAuthAllowed bool   `json:"oauth_allowed"`
	Fallback     string `json:"fallback"`
}
