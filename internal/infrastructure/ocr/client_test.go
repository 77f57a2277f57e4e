package ocr

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linklens/backend/internal/domain"
)

func TestRecognizeText_Success(t *testing.T) {
	image := []byte{0xff, 0xd8, 0xff}

	var gotPath, gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "deal https://www.meesho.com/s/p/123 pin: 400001"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	text, err := client.RecognizeText(context.Background(), image)

	require.NoError(t, err)
	assert.Equal(t, "deal https://www.meesho.com/s/p/123 pin: 400001", text)
	assert.Equal(t, "/v1/recognize", gotPath)
	assert.Equal(t, "application/octet-stream", gotContentType)
	assert.Equal(t, image, gotBody)
}

func TestRecognizeText_NoBaseURL(t *testing.T) {
	client := NewClient("")
	_, err := client.RecognizeText(context.Background(), []byte{0x01})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOCRUnavailable))
}

func TestRecognizeText_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("model crashed"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.RecognizeText(context.Background(), []byte{0x01})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOCRFailure))
}

func TestRecognizeText_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.RecognizeText(context.Background(), []byte{0x01})

	assert.Error(t, err)
}
