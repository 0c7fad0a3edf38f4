package scrape

import (
	"net/http"
	"strings"
)

// BlockType names the kind of anti-bot interstitial a page was served as.
type BlockType string

const (
	BlockNone       BlockType = ""
	BlockCloudflare BlockType = "cloudflare"
	BlockCaptcha    BlockType = "captcha"
	BlockJSShell    BlockType = "js_shell"
)

// jsShellMax is the body size under which a noscript or meta-refresh page is
// taken to be an empty JavaScript shell.
const jsShellMax = 2000

// interstitialMarkers appear on challenge pages themselves, never bare vendor
// names such as a cdnjs.cloudflare.com script or a reCAPTCHA form widget.
var interstitialMarkers = []struct {
	marker string
	kind   BlockType
}{
	{"cf-browser-verification", BlockCloudflare},
	{"checking your browser", BlockCloudflare},
	{"<title>just a moment...</title>", BlockCloudflare},
	{"cf-chl-", BlockCloudflare},
	{"complete the captcha", BlockCaptcha},
	{"complete the recaptcha", BlockCaptcha},
	{"verify you are human", BlockCaptcha},
}

// DetectBlock reports whether a response is an anti-bot interstitial rather
// than the site's own page. Callers run it on non-200 responses and on 200
// pages that yielded no insights.
func DetectBlock(resp *http.Response, body []byte) (bool, BlockType) {
	if resp == nil {
		return false, BlockNone
	}

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusServiceUnavailable {
		if resp.Header.Get("cf-ray") != "" || resp.Header.Get("cf-mitigated") != "" ||
			strings.EqualFold(resp.Header.Get("server"), "cloudflare") {
			return true, BlockCloudflare
		}
	}

	lower := strings.ToLower(string(body))
	for _, m := range interstitialMarkers {
		if strings.Contains(lower, m.marker) {
			return true, m.kind
		}
	}

	if len(body) < jsShellMax {
		if strings.Contains(lower, "<noscript") && strings.Contains(lower, "javascript") {
			return true, BlockJSShell
		}
		if strings.Contains(lower, `http-equiv="refresh"`) {
			return true, BlockJSShell
		}
	}

	return false, BlockNone
}
