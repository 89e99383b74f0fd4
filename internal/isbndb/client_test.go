// Copyright (c) 2026 Folio. All rights reserved.
// Author: code@chalkfarm.mx

package isbndb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLookupSuccess(t *testing.T) {
	var gotPath, gotAuth string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"book": {
			"title": "Pattern Recognition",
			"language": "en",
			"authors": ["William Gibson"],
			"isbn": "0425192938",
			"isbn13": "9780425192931"
		}}`))
	})

	book, err := client.Lookup(context.Background(), "0425192938")
	require.NoError(t, err)

	assert.Equal(t, "/book/0425192938", gotPath)
	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, "Pattern Recognition", book.Title)
	assert.Equal(t, "en", book.Language)
	assert.Equal(t, []string{"William Gibson"}, book.Authors)
	assert.Equal(t, "0425192938", book.ISBN)
	assert.Equal(t, "9780425192931", book.ISBN13)
}

func TestLookupNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	book, err := client.Lookup(context.Background(), "0000000000")
	assert.Nil(t, book)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupUnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Lookup(context.Background(), "0425192938")

	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, http.StatusServiceUnavailable, serviceErr.StatusCode)
	assert.Equal(t, "unexpected status", serviceErr.Reason)
}

func TestLookupMalformedPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>oops</html>`},
		{name: "missing book object", body: `{}`},
		{name: "missing title", body: `{"book": {"language": "en", "authors": ["A"], "isbn": "0425192938"}}`},
		{name: "missing language", body: `{"book": {"title": "T", "authors": ["A"], "isbn": "0425192938"}}`},
		{name: "empty authors", body: `{"book": {"title": "T", "language": "en", "authors": [], "isbn": "0425192938"}}`},
		{name: "blank author entry", body: `{"book": {"title": "T", "language": "en", "authors": [""], "isbn": "0425192938"}}`},
		{name: "no identifiers", body: `{"book": {"title": "T", "language": "en", "authors": ["A"]}}`},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(testCase.body))
			})

			_, err := client.Lookup(context.Background(), "0425192938")

			var serviceErr *ServiceError
			require.ErrorAs(t, err, &serviceErr)
			assert.Equal(t, http.StatusOK, serviceErr.StatusCode)
			assert.Equal(t, ReasonMalformedPayload, serviceErr.Reason)
		})
	}
}

func TestLookupSingleIdentifierAccepted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"book": {"title": "T", "language": "en", "authors": ["A"], "isbn13": "9780425192931"}}`))
	})

	book, err := client.Lookup(context.Background(), "9780425192931")
	require.NoError(t, err)
	assert.Empty(t, book.ISBN)
	assert.Equal(t, "9780425192931", book.ISBN13)
}

func TestLookupContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Lookup(ctx, "0425192938")

	var serviceErr *ServiceError
	assert.True(t, errors.As(err, &serviceErr))
}
