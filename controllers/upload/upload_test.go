package uploadController

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestHandlePaymentProofUpload(t *testing.T) {
	uploadDir := t.TempDir()

	r := gin.New()
	r.POST("/uploads/payment-proof", HandlePaymentProofUpload(uploadDir, "http://localhost:8080"))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "receipt (final).jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads/payment-proof", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "/uploads/proofs/")
	// Filename was sanitized
	assert.NotContains(t, w.Body.String(), "(final)")

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".jpg", filepath.Ext(entries[0].Name()))
}

func TestHandlePaymentProofUploadRequiresFile(t *testing.T) {
	r := gin.New()
	r.POST("/uploads/payment-proof", HandlePaymentProofUpload(t.TempDir(), "http://localhost:8080"))

	req := httptest.NewRequest(http.MethodPost, "/uploads/payment-proof", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
