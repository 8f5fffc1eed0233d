package session

// AdminScope é o escopo de administrador dentro da sessão.
type AdminScope struct {
	ID uint `json:"id"`
}

// Session carrega os dois escopos de autorização de um mesmo
// token de navegador. Os escopos são independentes: uma sessão
// pode ter cliente e admin ativos ao mesmo tempo, ou nenhum.
type Session struct {
	ClientID *uint       `json:"client_id,omitempty"`
	Admin    *AdminScope `json:"admin,omitempty"`
}

func New() *Session {
	return &Session{}
}

func (s *Session) HasClient() bool {
	return s.ClientID != nil
}

func (s *Session) HasAdmin() bool {
	return s.Admin != nil
}

func (s *Session) LoginClient(id uint) {
	s.ClientID = &id
}

// LogoutClient é idempotente e não toca no escopo de admin.
func (s *Session) LogoutClient() {
	s.ClientID = nil
}

func (s *Session) LoginAdmin(id uint) {
	s.Admin = &AdminScope{ID: id}
}

// LogoutAdmin é idempotente e não toca no escopo de cliente.
func (s *Session) LogoutAdmin() {
	s.Admin = nil
}
