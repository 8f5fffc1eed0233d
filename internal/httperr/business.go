package httperr

import "errors"

// Códigos de negócio usados pelos usecases. Handlers mapeiam
// cada código para o status HTTP correspondente.
const (
	CodeMissingField       = "missing_field"
	CodeInvalidCPF         = "invalid_cpf"
	CodeDuplicateCPF       = "cpf_already_registered"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUnauthorized       = "unauthorized"
	CodeNotFound           = "not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
