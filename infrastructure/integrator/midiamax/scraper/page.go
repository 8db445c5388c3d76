package scraper

import "time"

// Session é a visão que os fluxos de scraping têm de uma sessão de navegador.
// A implementação real fica em browserdriver; os testes usam um fake. Cada
// sessão pertence a exatamente uma tentativa de extração.
type Session interface {
	// ID retorna o identificador da tentativa, usado nos diretórios de
	// diagnóstico e nos logs.
	ID() string

	// Navigate abre a URL informada na página da sessão.
	Navigate(url string) error

	// WaitUntilReady bloqueia até a página assentar: carregamento concluído,
	// sem atividade de rede pendente e sem indicadores de loading visíveis.
	WaitUntilReady(timeout time.Duration) error

	// WaitVisible aguarda o seletor ficar visível dentro do tempo limite.
	WaitVisible(selector string, timeout time.Duration) error

	// FirstVisible aguarda o primeiro dos seletores a ficar visível e retorna
	// qual venceu. Erro somente quando nenhum aparece dentro do tempo limite.
	FirstVisible(timeout time.Duration, selectors ...string) (string, error)

	// Exists verifica imediatamente se o seletor está presente e visível.
	Exists(selector string) bool

	// Click clica no elemento indicado.
	Click(selector string) error

	// Type digita o texto com cadência humana (pausas aleatórias entre
	// teclas), necessário para os debounces do painel e para reduzir a
	// detecção de automação.
	Type(selector, text string) error

	// Fill define o valor do campo diretamente, sem simular digitação.
	Fill(selector, value string) error

	// Text retorna o texto visível do elemento.
	Text(selector string) (string, error)

	// Pause dorme um intervalo aleatório curto entre ações.
	Pause()

	// Screenshot captura a página inteira no diretório de diagnóstico da
	// sessão e retorna o caminho gravado. Nunca falha: em erro, loga e
	// retorna vazio.
	Screenshot(label string) string

	// ExpectDownload arma a espera por um download do navegador e retorna a
	// função que bloqueia até o arquivo chegar (ou o tempo limite estourar),
	// devolvendo o caminho salvo.
	ExpectDownload(timeout time.Duration) func() (string, error)

	// Close encerra o navegador da sessão. Idempotente; erros secundários
	// são engolidos e apenas logados.
	Close() error
}
