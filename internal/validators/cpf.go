package validators

// OnlyDigits remove tudo que não for dígito — usado para
// normalizar CPF, telefone etc.
func OnlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// IsValidCPF valida os dois dígitos verificadores de um CPF.
// Aceita entrada formatada ("111.444.777-35") ou crua; qualquer
// entrada malformada simplesmente retorna false.
func IsValidCPF(cpf string) bool {
	cpf = OnlyDigits(cpf)

	if len(cpf) != 11 {
		return false
	}

	// Sequências de dígitos repetidos passam no checksum mas
	// são CPFs conhecidamente inválidos.
	repeated := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	if checkDigit(cpf, 9, 10) != int(cpf[9]-'0') {
		return false
	}
	return checkDigit(cpf, 10, 11) == int(cpf[10]-'0')
}

// checkDigit calcula um dígito verificador sobre os primeiros
// n dígitos com pesos decrescentes a partir de firstWeight.
func checkDigit(cpf string, n, firstWeight int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(cpf[i]-'0') * (firstWeight - i)
	}

	r := (sum * 10) % 11
	if r == 10 {
		r = 0
	}
	return r
}
