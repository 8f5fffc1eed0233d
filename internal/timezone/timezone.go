package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Now devolve o horário atual no fuso da barbearia. Todos os
// timestamps persistidos usam o mesmo fuso para ficarem
// ordenáveis entre si.
func Now() time.Time {
	return time.Now().In(Location())
}
