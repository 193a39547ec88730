package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/accounts-api/internal/core/domain"
	"github.com/talenthub/accounts-api/internal/core/ports"
)

const maxTestUpload = 5 << 20

var (
	pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")
)

type stubAccountService struct {
	clientCalls     int
	freelancerCalls int
	loginCalls      int
	lastFreelancer  ports.RegisterFreelancerInput
	err             error
}

func (s *stubAccountService) RegisterClient(_ context.Context, input ports.RegisterClientInput) (*ports.AuthResult, error) {
	s.clientCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &ports.AuthResult{
		Token: "tok",
		Role:  domain.RoleClient,
		Profile: &domain.ClientProfile{
			ID: "acc_1", Name: input.Name, Email: input.Email, Role: domain.RoleClient,
			BusinessName: input.BusinessName,
		},
	}, nil
}

func (s *stubAccountService) RegisterFreelancer(_ context.Context, input ports.RegisterFreelancerInput) (*ports.AuthResult, error) {
	s.freelancerCalls++
	s.lastFreelancer = input
	if s.err != nil {
		return nil, s.err
	}
	return &ports.AuthResult{
		Token: "tok",
		Role:  domain.RoleFreelancer,
		Profile: &domain.FreelancerProfile{
			ID: "acc_2", Name: input.Name, Email: input.Email, Role: domain.RoleFreelancer,
			Skills: input.Skills, Experience: input.Experience,
		},
	}, nil
}

func (s *stubAccountService) Login(_ context.Context, email, _, _ string) (*ports.AuthResult, error) {
	s.loginCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &ports.AuthResult{
		Token:   "tok",
		Role:    domain.RoleClient,
		Profile: &domain.ClientProfile{ID: "acc_1", Email: email, Role: domain.RoleClient},
	}, nil
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newMultipartContext(t *testing.T, path string, fields map[string]string, files map[string][]byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for field, content := range files {
		name := field + ".bin"
		fw, err := w.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("create file %s: %v", field, err)
		}
		if _, err := io.Copy(fw, bytes.NewReader(content)); err != nil {
			t.Fatalf("write file %s: %v", field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func freelancerFields() map[string]string {
	return map[string]string{
		"name":       "Bob",
		"email":      "bob@example.com",
		"password":   "pass123",
		"skills":     "Go",
		"experience": "5 years",
	}
}

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%v)", he.Code, he.Message)
	}
}

func TestRegisterClient_Created(t *testing.T) {
	svc := &stubAccountService{}
	h := NewAccountHandler(svc, maxTestUpload)

	body := `{"name":"Alice","email":"alice@example.com","password":"pass123",
		"businessName":"Acme","businessType":"retail","companySize":"10-50","address":"1 Main St"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/register/client", body)

	if err := h.RegisterClient(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Success bool            `json:"success"`
		Token   string          `json:"token"`
		User    json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Token == "" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "pass123") {
		t.Fatalf("response leaks the password: %s", rec.Body.String())
	}
	if strings.Contains(strings.ToLower(rec.Body.String()), "passwordhash") {
		t.Fatalf("response leaks the credential field: %s", rec.Body.String())
	}
}

func TestRegisterClient_MissingFields(t *testing.T) {
	svc := &stubAccountService{}
	h := NewAccountHandler(svc, maxTestUpload)

	c, _ := newJSONContext(t, http.MethodPost, "/api/register/client",
		`{"email":"alice@example.com","password":"pass123"}`)

	assertBadRequest(t, h.RegisterClient(c))
	if svc.clientCalls != 0 {
		t.Fatalf("service called despite validation failure")
	}
}

func TestRegisterClient_RoleFieldRejected(t *testing.T) {
	svc := &stubAccountService{}
	h := NewAccountHandler(svc, maxTestUpload)

	body := `{"name":"Alice","email":"alice@example.com","password":"pass123",
		"businessName":"Acme","businessType":"retail","companySize":"10-50","address":"1 Main St",
		"userType":"freelancer"}`
	c, _ := newJSONContext(t, http.MethodPost, "/api/register/client", body)

	assertBadRequest(t, h.RegisterClient(c))
}

func TestRegisterFreelancer_Created(t *testing.T) {
	svc := &stubAccountService{}
	h := NewAccountHandler(svc, maxTestUpload)

	c, rec := newMultipartContext(t, "/api/register/freelancer", freelancerFields(),
		map[string][]byte{"profilePicture": pngBytes, "resume": pdfBytes})

	if err := h.RegisterFreelancer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastFreelancer.Picture == nil || svc.lastFreelancer.Resume == nil {
		t.Fatalf("attachments not passed to service")
	}
	if svc.lastFreelancer.Picture.ContentType != "image/png" {
		t.Fatalf("picture mime not sniffed: %s", svc.lastFreelancer.Picture.ContentType)
	}
	if svc.lastFreelancer.Resume.ContentType != "application/pdf" {
		t.Fatalf("resume mime not sniffed: %s", svc.lastFreelancer.Resume.ContentType)
	}
	if !strings.Contains(rec.Body.String(), `"skills":"Go"`) {
		t.Fatalf("response missing freelancer fields: %s", rec.Body.String())
	}
}

func TestRegisterFreelancer_MissingResume(t *testing.T) {
	svc := &stubAccountService{}
	h := NewAccountHandler(svc, maxTestUpload)

	c, _ := newMultipartContext(t, "/api/register/freelancer", freelancerFields(),
		map[string][]byte{"profilePicture": pngBytes})

	assertBadRequest(t, h.RegisterFreelancer(c))
	if svc.freelancerCalls != 0 {
		t.Fatalf("account persisted despite missing resume")
	}
}

func TestRegisterFreelancer_RejectsNonImagePicture(t *testing.T) {
	svc := &stubAccountService{}
	h := NewAccountHandler(svc, maxTestUpload)

	c, _ := newMultipartContext(t, "/api/register/freelancer", freelancerFields(),
		map[string][]byte{"profilePicture": []byte("plain text"), "resume": pdfBytes})

	assertBadRequest(t, h.RegisterFreelancer(c))
	if svc.freelancerCalls != 0 {
		t.Fatalf("account persisted despite rejected picture")
	}
}

func TestRegisterFreelancer_RejectsOversizedFile(t *testing.T) {
	svc := &stubAccountService{}
	h := NewAccountHandler(svc, 16) // tiny ceiling

	c, _ := newMultipartContext(t, "/api/register/freelancer", freelancerFields(),
		map[string][]byte{"profilePicture": pngBytes, "resume": pdfBytes})

	assertBadRequest(t, h.RegisterFreelancer(c))
}

func TestLogin_OK(t *testing.T) {
	svc := &stubAccountService{}
	h := NewAccountHandler(svc, maxTestUpload)

	c, rec := newJSONContext(t, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"pass123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"token":"tok"`) {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
}

func TestLogin_ServiceErrorPropagates(t *testing.T) {
	svc := &stubAccountService{err: domain.ErrInvalidCredentials}
	h := NewAccountHandler(svc, maxTestUpload)

	c, _ := newJSONContext(t, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestLogin_MissingPassword(t *testing.T) {
	svc := &stubAccountService{}
	h := NewAccountHandler(svc, maxTestUpload)

	c, _ := newJSONContext(t, http.MethodPost, "/api/login", `{"email":"alice@example.com"}`)

	assertBadRequest(t, h.Login(c))
	if svc.loginCalls != 0 {
		t.Fatalf("service called despite validation failure")
	}
}
