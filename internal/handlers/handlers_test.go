package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barblab-api/internal/audit"
	"github.com/BruksfildServices01/barblab-api/internal/credentials"
	"github.com/BruksfildServices01/barblab-api/internal/handlers"
	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/middleware"
	"github.com/BruksfildServices01/barblab-api/internal/models"
	"github.com/BruksfildServices01/barblab-api/internal/session"
	ucAuth "github.com/BruksfildServices01/barblab-api/internal/usecase/auth"
	ucBooking "github.com/BruksfildServices01/barblab-api/internal/usecase/booking"
	ucDirectory "github.com/BruksfildServices01/barblab-api/internal/usecase/directory"
)

// --- Mock repositories ---

type fakeDirectoryRepo struct {
	clients map[uint]*models.Client
	byCPF   map[string]*models.Client
	admins  map[string]*models.Admin
	nextID  uint
}

func (f *fakeDirectoryRepo) CreateClient(ctx context.Context, client *models.Client) error {
	if _, ok := f.byCPF[client.CPF]; ok {
		return httperr.ErrBusiness(httperr.CodeDuplicateCPF)
	}
	f.nextID++
	client.ID = f.nextID
	f.clients[client.ID] = client
	f.byCPF[client.CPF] = client
	return nil
}

func (f *fakeDirectoryRepo) DeleteClient(ctx context.Context, id uint) error {
	c, ok := f.clients[id]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	delete(f.byCPF, c.CPF)
	delete(f.clients, id)
	return nil
}

func (f *fakeDirectoryRepo) SetLastSMSSent(ctx context.Context, id uint, at time.Time) error {
	return nil
}

func (f *fakeDirectoryRepo) GetClientByID(ctx context.Context, id uint) (*models.Client, error) {
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeDirectoryRepo) GetClientByCPF(ctx context.Context, cpf string) (*models.Client, error) {
	if c, ok := f.byCPF[cpf]; ok {
		return c, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeDirectoryRepo) CountByCPF(ctx context.Context, cpf string) (int64, error) {
	if _, ok := f.byCPF[cpf]; ok {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeDirectoryRepo) ListClients(ctx context.Context) ([]models.Client, error) {
	out := make([]models.Client, 0, len(f.clients))
	for id := f.nextID; id > 0; id-- {
		if c, ok := f.clients[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeDirectoryRepo) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	if a, ok := f.admins[username]; ok {
		return a, nil
	}
	return nil, errors.New("record not found")
}

type fakeBookingRepo struct {
	dir          *fakeDirectoryRepo
	appointments []*models.Appointment
	nextID       uint
}

func (f *fakeBookingRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.nextID++
	ap.ID = f.nextID
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeBookingRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(f.appointments))
	for i := len(f.appointments) - 1; i >= 0; i-- {
		out = append(out, *f.appointments[i])
	}
	return out, nil
}

func (f *fakeBookingRepo) DeleteAppointment(ctx context.Context, id uint) error {
	for i, ap := range f.appointments {
		if ap.ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeBookingRepo) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	return f.dir.GetClientByID(ctx, id)
}

type noopSink struct{}

func (noopSink) Dispatch(ev audit.Event) {}

// --- Test server ---

const testSecret = "segredo_de_teste"

func newTestServer(t *testing.T) (*gin.Engine, *fakeDirectoryRepo, *fakeBookingRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adminHash, err := credentials.Hash("1234")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	dirRepo := &fakeDirectoryRepo{
		clients: map[uint]*models.Client{},
		byCPF:   map[string]*models.Client{},
		admins: map[string]*models.Admin{
			"admin": {ID: 1, Username: "admin", PasswordHash: adminHash},
		},
	}
	bookRepo := &fakeBookingRepo{dir: dirRepo}

	store := session.NewMemoryStore()
	sink := noopSink{}

	registerUC := ucDirectory.NewRegister(dirRepo, sink)
	getSelfUC := ucDirectory.NewGetSelf(dirRepo)
	loginClientUC := ucAuth.NewLoginClient(dirRepo)
	loginAdminUC := ucAuth.NewLoginAdmin(dirRepo)
	createUC := ucBooking.NewCreateAppointment(bookRepo, sink)

	authHandler := handlers.NewAuthHandler(store, registerUC, loginClientUC, getSelfUC)
	bookingHandler := handlers.NewBookingHandler(createUC)
	adminHandler := handlers.NewAdminHandler(dirRepo, bookRepo, nil, sink)
	adminWebHandler := handlers.NewAdminWebHandler(store, loginAdminUC)

	r := gin.New()

	tmpl := template.Must(template.New("admin_login.html").Parse(`login {{.Erro}}{{.Flash}}`))
	template.Must(tmpl.New("admin.html").Parse(`painel`))
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.Sessions(store, testSecret))

	r.GET("/admin-login", adminWebHandler.LoginPage)
	r.POST("/admin-login", adminWebHandler.Login)
	r.GET("/admin", adminWebHandler.Panel)
	r.GET("/admin-logout", adminWebHandler.Logout)

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/me", authHandler.Me)

		client := api.Group("/")
		client.Use(middleware.RequireClient())
		{
			client.POST("/agendar", bookingHandler.Create)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/clients", adminHandler.ListClients)
			admin.GET("/agendamentos", adminHandler.ListAppointments)
			admin.DELETE("/client/:id", adminHandler.DeleteClient)
			admin.DELETE("/agendamento/:id", adminHandler.DeleteAppointment)
			admin.GET("/export_csv", adminHandler.ExportClientsCSV)
		}
	}

	return r, dirRepo, bookRepo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	return (&http.Response{Header: w.Header()}).Cookies()
}

// --- Tests ---

func TestRegisterScenario(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"nome":     "Ana Silva",
		"cpf":      "111.444.777-35",
		"password": "segredo123",
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		OK bool `json:"ok"`
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.OK || resp.ID == 0 {
		t.Fatalf("unexpected response %+v", resp)
	}

	// a mesma sessão agora autoriza operações de cliente
	cookies := sessionCookies(w)
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie on the register response")
	}

	w2 := doJSON(t, r, http.MethodPost, "/api/agendar", gin.H{
		"servico":  "corte",
		"barbeiro": "Carlos",
		"data":     "2026-09-10",
		"horario":  "14:00",
	}, cookies)
	if w2.Code != http.StatusOK {
		t.Fatalf("booking after register = %d, body %s", w2.Code, w2.Body.String())
	}
}

func TestRegisterValidationStatuses(t *testing.T) {
	r, _, _ := newTestServer(t)

	cases := []struct {
		body gin.H
		code string
	}{
		{gin.H{"nome": "", "cpf": "11144477735", "password": "x"}, httperr.CodeMissingField},
		{gin.H{"nome": "Ana", "cpf": "11144477736", "password": "x"}, httperr.CodeInvalidCPF},
	}

	for _, tc := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/register", tc.body, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %v: status = %d", tc.body, w.Code)
		}
		if !strings.Contains(w.Body.String(), tc.code) {
			t.Errorf("body %v: expected code %s, got %s", tc.body, tc.code, w.Body.String())
		}
	}
}

func TestBookingRequiresClientSession(t *testing.T) {
	r, _, bookRepo := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/agendar", gin.H{
		"servico":  "corte",
		"barbeiro": "Carlos",
		"data":     "2026-09-10",
		"horario":  "14:00",
	}, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if len(bookRepo.appointments) != 0 {
		t.Fatal("unauthorized booking must not produce a ledger row")
	}
}

func TestLoginFailureIs401(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"cpf":      "11144477735",
		"password": "qualquer",
	}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), httperr.CodeInvalidCredentials) {
		t.Fatalf("expected invalid_credentials, got %s", w.Body.String())
	}
}

func TestMeAnonymousReturnsNull(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/me", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "null" {
		t.Fatalf("expected null body, got %s", w.Body.String())
	}
}

func adminLogin(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()

	form := url.Values{"usuario": {"admin"}, "senha": {"1234"}}
	req := httptest.NewRequest(http.MethodPost, "/admin-login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("admin login status = %d, body %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}
	return sessionCookies(w)
}

func TestAdminRoutesRequireAdminScope(t *testing.T) {
	r, _, _ := newTestServer(t)

	for _, path := range []string{"/api/admin/clients", "/api/admin/agendamentos", "/api/admin/export_csv"} {
		w := doJSON(t, r, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, w.Code)
		}
	}

	// cliente logado também não entra no painel
	reg := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"nome": "Ana Silva", "cpf": "11144477735", "password": "segredo123",
	}, nil)
	w := doJSON(t, r, http.MethodGet, "/api/admin/clients", nil, sessionCookies(reg))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("client session on admin route: expected 401, got %d", w.Code)
	}
}

func TestAdminDeleteClientTwice(t *testing.T) {
	r, _, _ := newTestServer(t)

	reg := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"nome": "Ana Silva", "cpf": "11144477735", "password": "segredo123",
	}, nil)
	if reg.Code != http.StatusOK {
		t.Fatalf("register: %d", reg.Code)
	}

	cookies := adminLogin(t, r)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/client/1", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("first delete = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/admin/client/1", nil, cookies)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete = %d, want 404", w.Code)
	}
}

func TestAdminWrongPasswordRerendersForm(t *testing.T) {
	r, _, _ := newTestServer(t)

	form := url.Values{"usuario": {"admin"}, "senha": {"errada"}}
	req := httptest.NewRequest(http.MethodPost, "/admin-login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 re-render, got %d", w.Code)
	}

	// a falha não pode ter estabelecido escopo nenhum
	w2 := doJSON(t, r, http.MethodGet, "/api/admin/clients", nil, sessionCookies(w))
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after failed admin login, got %d", w2.Code)
	}
}

func TestExportClientsCSV(t *testing.T) {
	r, _, _ := newTestServer(t)

	reg := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"nome": "Ana Silva", "cpf": "11144477735", "password": "segredo123",
		"telefone": "11988887777",
	}, nil)
	if reg.Code != http.StatusOK {
		t.Fatalf("register: %d", reg.Code)
	}

	cookies := adminLogin(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/admin/export_csv", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("export = %d", w.Code)
	}
	if disp := w.Header().Get("Content-Disposition"); !strings.Contains(disp, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", disp)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if lines[0] != "id,nome,cpf,email,telefone,cep,endereco,observacoes,last_sms_sent" {
		t.Fatalf("unexpected csv header: %q", lines[0])
	}
	if len(lines) != 2 || !strings.Contains(lines[1], "11144477735") {
		t.Fatalf("expected one client row, got %v", lines)
	}
}

func TestClientLogoutKeepsAdminScope(t *testing.T) {
	r, _, _ := newTestServer(t)

	// mesma sessão de navegador: cliente e admin ao mesmo tempo
	reg := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"nome": "Ana Silva", "cpf": "11144477735", "password": "segredo123",
	}, nil)
	cookies := sessionCookies(reg)

	form := url.Values{"usuario": {"admin"}, "senha": {"1234"}}
	req := httptest.NewRequest(http.MethodPost, "/admin-login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("admin login on client session: %d", w.Code)
	}

	if out := doJSON(t, r, http.MethodPost, "/api/logout", nil, cookies); out.Code != http.StatusOK {
		t.Fatalf("logout: %d", out.Code)
	}

	// escopo admin sobrevive ao logout de cliente
	if out := doJSON(t, r, http.MethodGet, "/api/admin/clients", nil, cookies); out.Code != http.StatusOK {
		t.Fatalf("admin scope lost after client logout: %d", out.Code)
	}
	// e o escopo de cliente realmente caiu
	if out := doJSON(t, r, http.MethodPost, "/api/agendar", gin.H{
		"servico": "corte", "barbeiro": "Carlos", "data": "2026-09-10", "horario": "14:00",
	}, cookies); out.Code != http.StatusUnauthorized {
		t.Fatalf("client scope should be gone, got %d", out.Code)
	}
}
