package embedded

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		userAgent string
		referrer  string
		want      Context
	}{
		{"plain chrome", "Mozilla/5.0 (Linux; Android 14) Chrome/120.0", "", ContextNone},
		{"tiktok ua", "Mozilla/5.0 ... trill_2022 musical_ly_28.0.0 JsSdk/1.0", "", ContextTikTok},
		{"tiktok token", "Mozilla/5.0 ... TikTok 31.5.3", "", ContextTikTok},
		{"instagram ua", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) Instagram 300.0", "", ContextInstagram},
		{"facebook app", "Mozilla/5.0 [FBAN/FBIOS;FBAV/430.0.0]", "", ContextFacebook},
		{"referrer only", "Mozilla/5.0 Chrome/120.0", "https://www.tiktok.com/@someone", ContextTikTok},
		{"instagram referrer", "Mozilla/5.0 Chrome/120.0", "https://l.instagram.com/?u=x", ContextInstagram},
		{"empty", "", "", ContextNone},
	}
	for _, c := range cases {
		if got := Classify(c.userAgent, c.referrer); got != c.want {
			t.Errorf("%s: Classify = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestInstagramBeatsFacebookToken(t *testing.T) {
	// Instagram's iOS app carries both Instagram and FBAV tokens.
	ua := "Mozilla/5.0 (iPhone) Instagram 300.0 [FBAV/430.0]"
	if got := Classify(ua, ""); got != ContextInstagram {
		t.Errorf("Classify = %s, want %s", got, ContextInstagram)
	}
}

func TestCapabilities(t *testing.T) {
	if caps := CapabilitiesFor(ContextNone); !caps.OAuthAllowed || caps.Fallback != "" {
		t.Errorf("browser context should allow oauth with no fallback, got %+v", caps)
	}
	for _, c := range []Context{ContextTikTok, ContextInstagram, ContextFacebook} {
		caps := CapabilitiesFor(c)
		if caps.OAuthAllowed {
			t.Errorf("%s should not allow oauth", c)
		}
		if caps.Fallback != fallbackEmailForm {
			t.Errorf("%s fallback = %q, want %q", c, caps.Fallback, fallbackEmailForm)
		}
	}
	if caps := CapabilitiesFor(Context("weird")); !caps.OAuthAllowed {
		t.Error("unknown context should fall back to unrestricted browser row")
	}
}
