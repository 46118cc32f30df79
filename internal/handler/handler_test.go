package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/config"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/handler"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/router"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/storage"
)

// newTestAPI wires the full route table onto a fresh memory store.
// Redis middlewares are replaced with pass-throughs and no event
// publisher is configured, matching a bare development deployment.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()
	pass := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	cfg := config.Config{
		JWTSecret:    "handler-test-secret",
		AccessTTLMin: 60,
		BcryptCost:   4,
	}
	store := storage.NewMemoryStore()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Deps{
		Catalog:   handler.NewCatalogHandler(store),
		Forms:     handler.NewFormsHandler(store, nil),
		Auth:      handler.NewAuthHandler(cfg, store),
		JWTSecret: cfg.JWTSecret,
		CacheMW:   pass,
		LimitMW:   pass,
	})
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return m
}

func wantMessage(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if got := decode(t, rec)["message"]; got != msg {
		t.Fatalf("message = %v, want %q", got, msg)
	}
}

func TestHealthz(t *testing.T) {
	e := newTestAPI(t)
	rec := doJSON(e, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGetServices(t *testing.T) {
	e := newTestAPI(t)
	rec := doJSON(e, http.MethodGet, "/api/services", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var services []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &services); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(services) != 3 {
		t.Fatalf("got %d services, want 3", len(services))
	}
	first := services[0]
	for _, key := range []string{"id", "title", "description", "price", "type", "features", "imageUrl"} {
		if _, ok := first[key]; !ok {
			t.Errorf("service missing %q field: %v", key, first)
		}
	}
}

func TestGetServiceByID(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/api/services/2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decode(t, rec)["type"]; got != "commercial" {
		t.Fatalf("service 2 type = %v, want commercial", got)
	}

	wantMessage(t, doJSON(e, http.MethodGet, "/api/services/999", ""), http.StatusNotFound, "Service not found")
	wantMessage(t, doJSON(e, http.MethodGet, "/api/services/abc", ""), http.StatusBadRequest, "Invalid service ID")
}

func TestGetCoursesAndTestimonials(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/api/courses", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("courses status = %d, want 200", rec.Code)
	}
	var courses []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &courses); err != nil {
		t.Fatalf("decode courses: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("got %d courses, want 1", len(courses))
	}

	wantMessage(t, doJSON(e, http.MethodGet, "/api/courses/42", ""), http.StatusNotFound, "Course not found")

	rec = doJSON(e, http.MethodGet, "/api/testimonials", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("testimonials status = %d, want 200", rec.Code)
	}
	var testimonials []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &testimonials); err != nil {
		t.Fatalf("decode testimonials: %v", err)
	}
	if len(testimonials) != 3 {
		t.Fatalf("got %d testimonials, want 3", len(testimonials))
	}
}

func TestCreateBooking(t *testing.T) {
	e := newTestAPI(t)

	body := `{"firstName":"Jo","lastName":"Lee","email":"jo@example.com","phone":"1234567",
		"consultationType":"residential","date":"2025-06-01","time":"9:00 AM"}`
	rec := doJSON(e, http.MethodPost, "/api/booking", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	got := decode(t, rec)
	if id, ok := got["id"].(float64); !ok || id < 1 {
		t.Fatalf("id = %v, want positive", got["id"])
	}
	if s, ok := got["createdAt"].(string); !ok || s == "" {
		t.Fatalf("createdAt = %v, want timestamp", got["createdAt"])
	}
	if got["consultationType"] != "residential" {
		t.Fatalf("consultationType = %v", got["consultationType"])
	}
}

func TestCreateBookingValidation(t *testing.T) {
	e := newTestAPI(t)
	valid := map[string]string{
		"firstName": "Jo", "lastName": "Lee", "email": "jo@example.com",
		"phone": "1234567", "consultationType": "residential",
		"date": "2025-06-01", "time": "9:00 AM",
	}
	cases := []struct {
		name  string
		field string
		value string
		msg   string
	}{
		{"short first name", "firstName", "J", "First name must be at least 2 characters."},
		{"short last name", "lastName", "L", "Last name must be at least 2 characters."},
		{"bad email", "email", "not-an-email", "Please enter a valid email address."},
		{"short phone", "phone", "12345", "Please enter a valid phone number."},
		{"unknown consultation type", "consultationType", "industrial", "Please select a valid consultation type."},
		{"bad date", "date", "June 1st", "Please enter a valid date."},
		{"unknown time slot", "time", "3:33 AM", "Please select one of the available time slots."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := make(map[string]string, len(valid))
			for k, v := range valid {
				payload[k] = v
			}
			payload[tc.field] = tc.value
			body, _ := json.Marshal(payload)
			wantMessage(t, doJSON(e, http.MethodPost, "/api/booking", string(body)), http.StatusBadRequest, tc.msg)
		})
	}
}

func TestCreateCourseInquiry(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/course-inquiry",
		`{"fullName":"Asha Nair","email":"asha@example.com","courseInterest":"foundations","newsletter":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	got := decode(t, rec)
	if got["newsletter"] != true {
		t.Fatalf("newsletter = %v, want true", got["newsletter"])
	}

	wantMessage(t, doJSON(e, http.MethodPost, "/api/course-inquiry",
		`{"fullName":"Asha Nair","email":"asha@example.com","courseInterest":"mastery"}`),
		http.StatusBadRequest, "Please select a valid course option.")
}

func TestCreateContactMessage(t *testing.T) {
	e := newTestAPI(t)

	// Four characters after trimming fails the subject minimum; five pass.
	wantMessage(t, doJSON(e, http.MethodPost, "/api/contact",
		`{"name":"Ravi","email":"ravi@example.com","subject":"Hiya","message":"I would like a consultation."}`),
		http.StatusBadRequest, "Subject must be at least 5 characters.")

	rec := doJSON(e, http.MethodPost, "/api/contact",
		`{"name":"Ravi","email":"ravi@example.com","subject":"Hello","message":"I would like a consultation."}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	if got := decode(t, rec)["subject"]; got != "Hello" {
		t.Fatalf("subject = %v", got)
	}
}

func TestNewsletterSubscription(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/newsletter", `{"email":"sub@example.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	wantMessage(t, doJSON(e, http.MethodPost, "/api/newsletter", `{"email":"sub@example.com"}`),
		http.StatusBadRequest, "Email is already subscribed to the newsletter")

	wantMessage(t, doJSON(e, http.MethodPost, "/api/newsletter", `{"email":"nope"}`),
		http.StatusBadRequest, "Please enter a valid email address.")
}

func TestPanchang(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/panchang", `{"date":"2025-01-01"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	got := decode(t, rec)
	if got["sunrise"] != "06:15 AM" || got["sunset"] != "06:45 PM" ||
		got["moonrise"] != "08:30 PM" || got["moonset"] != "07:20 AM" {
		t.Fatalf("timing strings wrong: %v", got)
	}
	for _, key := range []string{"nakshatra", "karna", "yoga", "tithi"} {
		if s, ok := got[key].(string); !ok || s == "" {
			t.Errorf("%s = %v, want non-empty string", key, got[key])
		}
	}

	// Same date again must produce the identical body.
	again := doJSON(e, http.MethodPost, "/api/panchang", `{"date":"2025-01-01"}`)
	if rec.Body.String() != again.Body.String() {
		t.Fatalf("panchang not deterministic:\n%s\n%s", rec.Body.String(), again.Body.String())
	}

	wantMessage(t, doJSON(e, http.MethodPost, "/api/panchang", `{"date":"yesterday"}`),
		http.StatusBadRequest, "Please enter a valid date.")
}

func TestAuthFlow(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"admin","password":"correct horse"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	if tok, ok := decode(t, rec)["token"].(string); !ok || tok == "" {
		t.Fatal("register did not return a token")
	}

	wantMessage(t, doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"admin","password":"correct horse"}`),
		http.StatusConflict, "Username already exists")

	wantMessage(t, doJSON(e, http.MethodPost, "/api/auth/login",
		`{"username":"admin","password":"wrong horse"}`),
		http.StatusUnauthorized, "Invalid credentials")

	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"username":"admin","password":"correct horse"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	token, _ := decode(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("login did not return a token")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	me := httptest.NewRecorder()
	e.ServeHTTP(me, req)
	if me.Code != http.StatusOK {
		t.Fatalf("me status = %d, want 200 (body %s)", me.Code, me.Body.String())
	}
	if got := decode(t, me)["username"]; got != "admin" {
		t.Fatalf("me username = %v, want admin", got)
	}

	bare := doJSON(e, http.MethodGet, "/api/auth/me", "")
	if bare.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated me status = %d, want 401", bare.Code)
	}
}
