package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() Message {
	return Message{
		Crop:    "Maize",
		Note:    "Water",
		Date:    "2026-09-01",
		Country: "Nigeria",
		ToEmail: "farmer@example.com",
	}
}

func TestSend_PostsTemplateFields(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service_test", "template_test")
	require.NoError(t, c.Send(context.Background(), testMessage()))

	assert.Equal(t, "service_test", got.ServiceID)
	assert.Equal(t, "template_test", got.TemplateID)
	assert.NotEmpty(t, got.MessageID)
	assert.Equal(t, testMessage(), got.TemplateParams)
}

func TestSend_RetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s", "t")
	require.NoError(t, c.Send(context.Background(), testMessage()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestSend_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s", "t")
	err := c.Send(context.Background(), testMessage())
	assert.ErrorContains(t, err, "500")
	assert.Equal(t, int32(3), calls.Load())
}

func TestSend_PermanentFailureNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad template", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s", "t")
	err := c.Send(context.Background(), testMessage())
	assert.ErrorContains(t, err, "400")
	assert.Equal(t, int32(1), calls.Load())
}
