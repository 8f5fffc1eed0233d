package credentials

import "golang.org/x/crypto/bcrypt"

// Hash gera o hash bcrypt da senha. O salt é gerado por hash e
// fica embutido no próprio valor armazenado.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compara hash e senha em tempo constante.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
