package request_test

import (
	"testing"

	"go-inova/internal/shared/request"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientType(t *testing.T) {
	cases := []struct {
		header, ua string
		want       request.ClientType
	}{
		{"web", "", request.ClientWeb},
		{"", "Mozilla/5.0 (X11; Linux x86_64)", request.ClientWeb},
		{"", "okhttp/4.12.0", request.ClientMobile},
		{"", "curl/8.5.0", request.ClientAPI},
		{"MOBILE", "Mozilla/5.0", request.ClientMobile},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, request.ResolveClientType(tc.header, tc.ua), tc.header+"|"+tc.ua)
	}
}
