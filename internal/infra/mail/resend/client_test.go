package resend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionlane/vision-board/internal/domain/mail"
)

func TestSendBuildsMultipartRequest(t *testing.T) {
	var (
		gotAuth   string
		gotFields map[string]string
		gotName   string
		gotBytes  []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotFields[k] = v[0]
		}
		f, hdr, err := r.FormFile("attachment")
		require.NoError(t, err)
		defer f.Close()
		gotName = hdr.Filename
		gotBytes, err = io.ReadAll(f)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClientWithEndpoint("test-key", "Vision Board <reports@example.com>", srv.URL)
	err := c.Send(context.Background(), mail.Message{
		To:             "user@example.com",
		Subject:        "Your Vision Board Analysis",
		HTMLBody:       "<p>attached</p>",
		AttachmentName: "vision-board-analysis.pdf",
		Attachment:     []byte("%PDF-1.4 fake"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Vision Board <reports@example.com>", gotFields["from"])
	assert.Equal(t, "user@example.com", gotFields["to"])
	assert.Equal(t, "Your Vision Board Analysis", gotFields["subject"])
	assert.Equal(t, "<p>attached</p>", gotFields["html"])
	assert.Equal(t, "vision-board-analysis.pdf", gotName)
	assert.Equal(t, []byte("%PDF-1.4 fake"), gotBytes)
}

func TestSendWithoutAttachment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("attachment")
		assert.Error(t, err)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClientWithEndpoint("k", "from@example.com", srv.URL)
	err := c.Send(context.Background(), mail.Message{To: "to@example.com", Subject: "hi"})
	assert.NoError(t, err)
}

func TestSendSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid from"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClientWithEndpoint("k", "bad", srv.URL)
	err := c.Send(context.Background(), mail.Message{To: "to@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
	assert.Contains(t, err.Error(), "invalid from")
}
