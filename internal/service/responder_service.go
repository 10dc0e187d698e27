package service

import (
	"fmt"

	"damena-assistant/internal/models"

	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencyFormat maps a dataset currency code to a locale and ISO unit.
type currencyFormat struct {
	locale language.Tag
	unit   currency.Unit
}

const defaultCurrencyCode = "m1"

var currencyTable = map[string]currencyFormat{
	"m1": {language.MustParse("es-CR"), currency.MustParseISO("CRC")},
	"m2": {language.MustParse("es-CR"), currency.USD},
}

// ResponderService renders the local fallback answer for a context.
// Pure formatting, one template per context kind.
type ResponderService struct {
	logger *zap.Logger
}

func NewResponderService(logger *zap.Logger) *ResponderService {
	return &ResponderService{logger: logger}
}

// Render produces the local answer for the given context and question.
// A nil context yields the generic deflection message.
func (s *ResponderService) Render(ctx models.Context, question string) string {
	if ctx == nil {
		return "Esta información no está explícitamente en el sistema del Banco Damena, " +
			"pero puedo darte una orientación general sobre temas bancarios."
	}

	switch c := ctx.(type) {
	case *models.BalanceContext:
		if c.Cuenta == nil {
			return "No encontré una cuenta asociada para mostrar tu saldo."
		}
		return fmt.Sprintf(
			"Según el sistema del Banco Damena, tu cuenta %q (IBAN %s) tiene un saldo de %s.",
			c.Cuenta.Alias, c.Cuenta.IBAN, formatAmount(c.Cuenta.Moneda, c.Cuenta.Saldo),
		)

	case *models.UserInfoContext:
		return fmt.Sprintf(
			"He encontrado información de %s %s.\n"+
				"Tiene %d cuenta(s) registrada(s) y %d tarjeta(s) asociada(s) en el sistema del Banco Damena.",
			c.Usuario.Nombre, c.Usuario.Apellido, len(c.Cuentas), len(c.Tarjetas),
		)

	case *models.AccountDetailContext:
		return fmt.Sprintf(
			"Detalles de la cuenta %q:\nIBAN: %s\nSaldo: %v (%s)\nEstado: %s",
			c.Cuenta.Alias, c.Cuenta.IBAN, c.Cuenta.Saldo, c.Cuenta.Moneda, c.Cuenta.Estado,
		)

	case *models.CardDetailContext:
		return fmt.Sprintf(
			"Detalles de la tarjeta %s:\nTipo: %s\nMoneda: %s\nFecha de expiración: %s",
			c.Tarjeta.NumeroEnmascarado, c.Tarjeta.Tipo, c.Tarjeta.Moneda, c.Tarjeta.FechaExpiracion,
		)

	case *models.TransfersContext:
		if len(c.Transferencias) == 0 {
			return "No se encontraron transferencias recientes en el sistema."
		}
		primera := c.Transferencias[0]
		return fmt.Sprintf(
			"He encontrado %d transferencia(s) registrada(s). "+
				"Por ejemplo, el %s se registró una transferencia de %v por %q.",
			len(c.Transferencias), primera.FechaTransferencia, primera.Monto, primera.Descripcion,
		)

	case *models.AccountTypeContext:
		return fmt.Sprintf("La cuenta de tipo %q es: %s.", c.TipoCuenta.Nombre, c.TipoCuenta.Descripcion)

	case *models.CurrencyContext:
		return fmt.Sprintf("La moneda %q tiene el código ISO %s.", c.Moneda.Nombre, c.Moneda.ISO)

	case *models.IDTypeContext:
		return fmt.Sprintf("El tipo de identificación %q se describe como: %s.", c.TipoID.Nombre, c.TipoID.Descripcion)

	case *models.RoleContext:
		return fmt.Sprintf("El rol %q se describe como: %s.", c.Rol.Nombre, c.Rol.Descripcion)

	case *models.SecurityContext:
		return c.Mensaje

	case *models.CardBlockContext:
		return c.Mensaje

	default:
		// Safety net for future context kinds, not an error.
		return "He encontrado información relacionada en el sistema del Banco Damena, " +
			"pero voy a complementar la respuesta con detalles adicionales."
	}
}

// formatAmount renders an amount in the currency keyed by the dataset code.
// Unknown codes fall back to the default (colones) entry.
func formatAmount(code string, v float64) string {
	f, ok := currencyTable[code]
	if !ok {
		f = currencyTable[defaultCurrencyCode]
	}
	p := message.NewPrinter(f.locale)
	return p.Sprintf("%v", currency.NarrowSymbol(f.unit.Amount(v)))
}
