package discord

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func restError(status int) error {
	return &discordgo.RESTError{Response: &http.Response{StatusCode: status}}
}

func TestRetryableRESTClassifiesStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited", restError(http.StatusTooManyRequests), true},
		{"server error", restError(http.StatusInternalServerError), true},
		{"bad gateway", restError(http.StatusBadGateway), true},
		{"forbidden", restError(http.StatusForbidden), false},
		{"not found", restError(http.StatusNotFound), false},
		{"wrapped rate limit", fmt.Errorf("overwrite: %w", restError(http.StatusTooManyRequests)), true},
		{"plain error", errors.New("dial tcp: connection refused"), false},
		{"no response", &discordgo.RESTError{}, false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := retryableREST(tc.err); got != tc.want {
				t.Fatalf("retryableREST(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestScopeName(t *testing.T) {
	if got := scopeName(""); got != "global" {
		t.Fatalf("scopeName(\"\") = %q, want \"global\"", got)
	}
	if got := scopeName("42"); got != "guild 42" {
		t.Fatalf("scopeName(\"42\") = %q, want \"guild 42\"", got)
	}
}
