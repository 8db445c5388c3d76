package midiamaxdomain

import "time"

// Credentials contém as credenciais de acesso ao painel do MidiaMax.
// Elas chegam já descriptografadas (o armazenamento é responsabilidade
// do backend do dashboard) e nunca são persistidas por este serviço.
type Credentials struct {
	Username string
	Password string
	// MFASeed é a semente TOTP opcional. A geração do código não é
	// implementada aqui; veja TOTPProvider no pacote do integrador.
	MFASeed string
}

// Period representa o intervalo de datas (inclusivo) do relatório solicitado.
type Period struct {
	Start time.Time
	End   time.Time
}

// Days retorna a quantidade de dias do período, contando as duas pontas.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}
