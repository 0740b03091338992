package analysis

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"skillfit-backend/internal/match"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewService(match.New(match.ExactOracle{})))
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"jdText":"We need Python, SQL and Docker experience.","resumeText":"Skills: Python, SQL"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Data    Report `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success=true")
	}
	if resp.Data.Score != 66.67 {
		t.Fatalf("unexpected score: %v", resp.Data.Score)
	}
	if resp.Data.TailoredResume != "Skills: Python, SQL, docker" {
		t.Fatalf("unexpected tailored resume: %q", resp.Data.TailoredResume)
	}
}

func TestAnalyzeEndpointValidation(t *testing.T) {
	router := newTestRouter()

	for _, body := range []string{
		`{"jdText":"","resumeText":"something"}`,
		`{"jdText":"something","resumeText":""}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "validation_error") {
			t.Fatalf("body %q: expected validation_error, got %s", body, rec.Body.String())
		}
	}
}

func multipartUpload(t *testing.T, jdText, fileName, contentType string, fileData []byte) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("jdText", jdText); err != nil {
		t.Fatalf("write field: %v", err)
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="resume"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(fileData); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req, httptest.NewRecorder()
}

func TestAnalyzeUploadPlainText(t *testing.T) {
	router := newTestRouter()
	req, rec := multipartUpload(t, "We need Python, SQL and Docker experience.", "resume.txt", "text/plain", []byte("Skills: Python, SQL"))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"Skills: Python, SQL, docker"`) {
		t.Fatalf("expected tailored resume in response: %s", rec.Body.String())
	}
}

func TestAnalyzeUploadUnsupportedType(t *testing.T) {
	router := newTestRouter()
	req, rec := multipartUpload(t, "We need Python.", "photo.gif", "image/gif", []byte("GIF89a"))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "unsupported_document") {
		t.Fatalf("expected unsupported_document, got %s", rec.Body.String())
	}
}

func TestAnalyzeUploadMissingFile(t *testing.T) {
	router := newTestRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("jdText", "We need Python."); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
