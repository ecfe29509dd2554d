package alerts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// EmailSender puerto de salida de correo para el digest de bajo stock.
type EmailSender interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// LowStockChecker revisa periódicamente los artículos en o bajo su umbral
// mínimo y envía un digest por correo a los destinatarios configurados.
// Solo lee inventario; nunca lo modifica.
type LowStockChecker struct {
	itemRepo   repository.ItemRepository
	formatRepo repository.EmailFormatRepository
	sender     EmailSender
	recipients []string
	interval   time.Duration
	log        *logger.Logger
}

// NewLowStockChecker construye el verificador.
func NewLowStockChecker(
	itemRepo repository.ItemRepository,
	formatRepo repository.EmailFormatRepository,
	sender EmailSender,
	recipients []string,
	interval time.Duration,
	log *logger.Logger,
) *LowStockChecker {
	return &LowStockChecker{
		itemRepo:   itemRepo,
		formatRepo: formatRepo,
		sender:     sender,
		recipients: recipients,
		interval:   interval,
		log:        log,
	}
}

// Start ejecuta el chequeo cada intervalo hasta que el contexto se cancele.
// Pensado para correr como goroutine desde main.
func (c *LowStockChecker) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.log.Info().Dur("interval", c.interval).Msg("verificador de bajo stock iniciado")
	for {
		select {
		case <-ctx.Done():
			c.log.Info().Msg("verificador de bajo stock detenido")
			return
		case <-ticker.C:
			if err := c.RunOnce(ctx); err != nil {
				c.log.Error().Err(err).Msg("chequeo de bajo stock falló")
			}
		}
	}
}

// RunOnce realiza un chequeo: si hay artículos bajo umbral, renderiza la
// plantilla low_stock y envía un único correo digest. Sin artículos bajo
// umbral no se envía nada.
func (c *LowStockChecker) RunOnce(ctx context.Context) error {
	if len(c.recipients) == 0 {
		return nil
	}
	items, err := c.itemRepo.ListLowStock()
	if err != nil {
		return fmt.Errorf("listando artículos bajo umbral: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	format, err := c.formatRepo.GetDefaultByKind(entity.EmailFormatLowStock)
	if err != nil {
		return err
	}
	if format == nil {
		// Sin plantilla configurada el digest usa un formato fijo.
		format = &entity.EmailFormat{
			Subject: "Alerta de bajo stock: {{count}} artículos",
			Body:    "Artículos en o bajo su umbral mínimo:\n\n{{items}}",
		}
	}

	subject, body := format.Render(map[string]string{
		"count": fmt.Sprintf("%d", len(items)),
		"date":  time.Now().Format("2006-01-02"),
		"items": renderLowStockLines(items),
	})
	if err := c.sender.Send(ctx, c.recipients, subject, body); err != nil {
		return fmt.Errorf("enviando digest de bajo stock: %w", err)
	}
	c.log.Info().Int("items", len(items)).Msg("digest de bajo stock enviado")
	return nil
}

// renderLowStockLines produce el bloque {{items}}: una línea por artículo
// con stock actual y umbral.
func renderLowStockLines(items []*entity.InventoryItem) string {
	var b strings.Builder
	for _, i := range items {
		fmt.Fprintf(&b, "- %s (%s): %d en stock, umbral %d\n", i.Name, i.Barcode, i.CurrentStock, i.MinThreshold)
	}
	return b.String()
}
