package browserdriver

import (
	"context"

	"github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/scraper"
)

// Factory abre sessões reais de navegador para o integrador. Os diretórios
// raiz são fixos; cada sessão ganha um subdiretório próprio com o seu ID.
type Factory struct {
	screenshotRoot   string
	downloadRoot     string
	loadingIndicator string
}

func NewFactory(screenshotRoot, downloadRoot, loadingIndicator string) *Factory {
	return &Factory{
		screenshotRoot:   screenshotRoot,
		downloadRoot:     downloadRoot,
		loadingIndicator: loadingIndicator,
	}
}

// Open lança uma sessão nova. O modo headless vem do chamador: a extração
// agendada roda sem interface, o teste de credenciais roda com o navegador
// visível.
func (f *Factory) Open(ctx context.Context, sessionID string, headless bool) (scraper.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Open(Options{
		SessionID:        sessionID,
		Headless:         headless,
		ScreenshotRoot:   f.screenshotRoot,
		DownloadRoot:     f.downloadRoot,
		LoadingIndicator: f.loadingIndicator,
	})
}
