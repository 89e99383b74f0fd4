// Copyright (c) 2026 Folio. All rights reserved.
// Author: code@chalkfarm.mx

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chalkfarm/folio/internal/platform/constants"
)

type fakeAppConfig struct {
	development bool
	origins     []string
}

func (f fakeAppConfig) IsDevelopment() bool      { return f.development }
func (f fakeAppConfig) AllowedOrigins() []string { return f.origins }

func TestCORSOriginPolicy(t *testing.T) {
	cases := []struct {
		name      string
		cfg       fakeAppConfig
		origin    string
		wantAllow bool
	}{
		{
			name:      "development allows any origin",
			cfg:       fakeAppConfig{development: true},
			origin:    "http://localhost:3000",
			wantAllow: true,
		},
		{
			name:      "production allows first party domain",
			cfg:       fakeAppConfig{},
			origin:    "https://folio.chalkfarm.mx",
			wantAllow: true,
		},
		{
			name:      "production allows configured extra origin",
			cfg:       fakeAppConfig{origins: []string{"https://partner.example.com"}},
			origin:    "https://partner.example.com",
			wantAllow: true,
		},
		{
			name:      "production rejects unknown origin",
			cfg:       fakeAppConfig{origins: []string{"https://partner.example.com"}},
			origin:    "https://evil.example.com",
			wantAllow: false,
		},
	}

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
			request.Header.Set(constants.HeaderOrigin, c.origin)
			recorder := httptest.NewRecorder()

			CORS(c.cfg)(next).ServeHTTP(recorder, request)

			got := recorder.Header().Get("Access-Control-Allow-Origin")
			if c.wantAllow {
				assert.Equal(t, c.origin, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { reached = true })

	request := httptest.NewRequest(http.MethodOptions, "/api/v1/books", nil)
	request.Header.Set(constants.HeaderOrigin, "https://folio.chalkfarm.mx")
	recorder := httptest.NewRecorder()

	CORS(fakeAppConfig{})(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.False(t, reached)
}
