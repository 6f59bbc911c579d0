package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPSWithPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    func() *http.Request
		policy SchemePolicy
		want   bool
	}{
		{
			name: "plain http",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/", nil)
			},
			want: false,
		},
		{
			name: "tls connection",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.TLS = &tls.ConnectionState{}
				return req
			},
			want: true,
		},
		{
			name: "forwarded proto ignored by default",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("X-Forwarded-Proto", "https")
				return req
			},
			want: false,
		},
		{
			name: "forwarded proto trusted",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("X-Forwarded-Proto", "https")
				return req
			},
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsHTTPSWithPolicy(tc.req(), tc.policy); got != tc.want {
				t.Fatalf("IsHTTPSWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasSameOriginProofWithPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		referer string
		want    bool
	}{
		{name: "matching origin", origin: "http://empower.test", want: true},
		{name: "matching origin explicit port", origin: "http://empower.test:80", want: true},
		{name: "foreign origin", origin: "http://evil.test", want: false},
		{name: "scheme mismatch", origin: "https://empower.test", want: false},
		{name: "referer fallback", referer: "http://empower.test/onboarding", want: true},
		{name: "no proof", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "http://empower.test/onboarding/next", nil)
			req.Host = "empower.test"
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			if got := HasSameOriginProofWithPolicy(req, SchemePolicy{}); got != tc.want {
				t.Fatalf("HasSameOriginProofWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}
