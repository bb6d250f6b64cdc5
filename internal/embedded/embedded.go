// Package embedded classifies the browsing context a request came from.
// Some native apps host a constrained web view that blocks third-party
// OAuth popups; sign-in flows need to know this before offering a
// Google/Facebook button.
package embedded

import "strings"

// Context identifies a known embedded browser host.
type Context string

const (
	ContextNone      Context = "none"
	ContextTikTok    Context = "tiktok"
	ContextInstagram Context = "instagram"
	ContextFacebook  Context = "facebook"
)

// Capabilities describes what an embedded context permits and which
// fallback the sign-in UI should offer when OAuth is blocked.
type Capabilities struct {
	OAuthAllowed bool   `json:"oauth_allowed"`
	Fallback     string `json:"fallback,omitempty"`
	DisplayName  string `json:"display_name"`
}

const fallbackEmailForm = "email_form"

var capabilityTable = map[Context]Capabilities{
	ContextNone:      {OAuthAllowed: true, DisplayName: "Browser"},
	ContextTikTok:    {OAuthAllowed: false, Fallback: fallbackEmailForm, DisplayName: "TikTok"},
	ContextInstagram: {OAuthAllowed: false, Fallback: fallbackEmailForm, DisplayName: "Instagram"},
	ContextFacebook:  {OAuthAllowed: false, Fallback: fallbackEmailForm, DisplayName: "Facebook"},
}

// markers are matched against the lowercased user agent. Order matters:
// the Instagram app embeds an FBAV-like token on some platforms, so the
// more specific marker is checked first.
var markers = []struct {
	token   string
	context Context
}{
	{"tiktok", ContextTikTok},
	{"musical_ly", ContextTikTok},
	{"instagram", ContextInstagram},
	{"fbav", ContextFacebook},
	{"fban", ContextFacebook},
}

// Classify determines the embedded context from a user agent string and
// the request referrer. The referrer is a secondary signal: a few
// in-app browsers strip their UA token but keep their origin.
func Classify(userAgent, referrer string) Context {
	ua := strings.ToLower(userAgent)
	for _, m := range markers {
		if strings.Contains(ua, m.token) {
			return m.context
		}
	}
	ref := strings.ToLower(referrer)
	switch {
	case strings.Contains(ref, "tiktok.com"):
		return ContextTikTok
	case strings.Contains(ref, "instagram.com"):
		return ContextInstagram
	}
	return ContextNone
}

// CapabilitiesFor returns the capability row for a context, defaulting
// to the unrestricted browser row for unknown values.
func CapabilitiesFor(c Context) Capabilities {
	if caps, ok := capabilityTable[c]; ok {
		return caps
	}
	return capabilityTable[ContextNone]
}
