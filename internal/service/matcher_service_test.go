package service

import (
	"testing"

	"damena-assistant/internal/models"
	"damena-assistant/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==========================
// Test Helper Functions
// ==========================

func testDataset() *models.Dataset {
	return &models.Dataset{
		Usuarios: []models.User{
			{ID: "u1", Nombre: "Ana", Apellido: "Rojas", TipoIdentificacionID: "ti1"},
			{ID: "u2", Nombre: "Carlos", Apellido: "Jiménez", TipoIdentificacionID: "ti1"},
		},
		Cuentas: []models.Account{
			{ID: "c1", UsuarioID: "u1", Alias: "Cuenta Principal", IBAN: "CR21015202001026284066", Saldo: 1525000.5, Moneda: "m1", Estado: "activa"},
			{ID: "c2", UsuarioID: "u1", Alias: "Ahorro Dólares", IBAN: "CR05015202001026284067", Saldo: 2450.75, Moneda: "m2", Estado: "activa"},
			{ID: "c3", UsuarioID: "u2", Alias: "Cuenta Nómina", IBAN: "CR87015202001026284068", Saldo: 860000, Moneda: "m1", Estado: "activa"},
		},
		Tarjetas: []models.Card{
			{ID: "t1", UsuarioID: "u1", NumeroEnmascarado: "**** **** **** 4321", Tipo: "débito", Moneda: "m1", FechaExpiracion: "2027-08"},
			{ID: "t2", UsuarioID: "u2", NumeroEnmascarado: "**** **** **** 5544", Tipo: "débito", Moneda: "m1", FechaExpiracion: "2028-02"},
		},
		Transferencias: []models.Transfer{
			{ID: "tr1", FechaTransferencia: "2025-07-14", Monto: 45000, Descripcion: "Pago de alquiler"},
			{ID: "tr2", FechaTransferencia: "2025-07-20", Monto: 12500, Descripcion: "Supermercado"},
		},
		TiposCuenta: []models.AccountType{
			{ID: "tc1", Nombre: "ahorros", Descripcion: "Cuenta de ahorro con intereses mensuales"},
		},
		Monedas: []models.Currency{
			{ID: "m1", ISO: "CRC", Nombre: "colón costarricense"},
			{ID: "m2", ISO: "USD", Nombre: "dólar estadounidense"},
		},
		TiposIdentificacion: []models.IdentificationType{
			{ID: "ti1", Nombre: "cédula nacional", Descripcion: "Documento de identidad costarricense"},
		},
		Roles: []models.Role{
			{ID: "r1", Nombre: "gestor", Descripcion: "Funcionario que administra carteras de clientes"},
		},
	}
}

func testKB() *repository.KnowledgeRepository {
	return repository.NewKnowledgeRepositoryFromDataset(testDataset(), zap.NewNop())
}

func testMatcher() *MatcherService {
	return NewMatcherService(testKB(), "u1", zap.NewNop())
}

// ==========================
// Rule Tests
// ==========================

func TestMatcher_UserByName(t *testing.T) {
	matcher := testMatcher()

	tests := []struct {
		name     string
		question string
		wantUser string
	}{
		{"first name only", "qué cuentas tiene Ana", "u1"},
		{"full name", "información de carlos jiménez", "u2"},
		{"name embedded in another word still matches", "necesito una manzana", "u1"},
		{"case insensitive", "ANA tiene tarjetas?", "u1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := matcher.Match(tt.question)
			require.NotNil(t, ctx)
			info, ok := ctx.(*models.UserInfoContext)
			require.True(t, ok, "expected usuario_info, got %T", ctx)
			assert.Equal(t, tt.wantUser, info.Usuario.ID)

			for _, c := range info.Cuentas {
				assert.Equal(t, tt.wantUser, c.UsuarioID)
			}
			for _, tj := range info.Tarjetas {
				assert.Equal(t, tt.wantUser, tj.UsuarioID)
			}
		})
	}
}

func TestMatcher_UserInfo_CollectsAllOwnedRecords(t *testing.T) {
	ctx := testMatcher().Match("cuentas de ana")

	info, ok := ctx.(*models.UserInfoContext)
	require.True(t, ok)
	assert.Len(t, info.Cuentas, 2)
	assert.Len(t, info.Tarjetas, 1)
	assert.Equal(t, "c1", info.Cuentas[0].ID)
	assert.Equal(t, "c2", info.Cuentas[1].ID)
}

func TestMatcher_Balance(t *testing.T) {
	tests := []struct {
		name     string
		question string
	}{
		{"plain saldo", "cual es mi saldo"},
		{"accented cuánto tengo", "¿cuánto tengo?"},
		{"unaccented cuanto tengo", "cuanto tengo en el banco"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testMatcher().Match(tt.question)
			require.NotNil(t, ctx)
			saldo, ok := ctx.(*models.BalanceContext)
			require.True(t, ok, "expected saldo, got %T", ctx)
			require.NotNil(t, saldo.Cuenta)
			assert.Equal(t, "c1", saldo.Cuenta.ID, "first account of the reference user wins")
		})
	}
}

func TestMatcher_Balance_ReferenceUserWithoutAccounts(t *testing.T) {
	matcher := NewMatcherService(testKB(), "u404", zap.NewNop())

	ctx := matcher.Match("ver saldo")
	require.NotNil(t, ctx)
	saldo, ok := ctx.(*models.BalanceContext)
	require.True(t, ok)
	assert.Nil(t, saldo.Cuenta)
}

func TestMatcher_AccountByIBAN(t *testing.T) {
	ctx := testMatcher().Match("detalles de CR87015202001026284068 por favor")

	require.NotNil(t, ctx)
	detalle, ok := ctx.(*models.AccountDetailContext)
	require.True(t, ok, "expected cuenta_detalle, got %T", ctx)
	assert.Equal(t, "c3", detalle.Cuenta.ID)
}

func TestMatcher_CardByLastFour(t *testing.T) {
	t.Run("trailing digits match a card", func(t *testing.T) {
		ctx := testMatcher().Match("mi tarjeta 4321")
		require.NotNil(t, ctx)
		detalle, ok := ctx.(*models.CardDetailContext)
		require.True(t, ok, "expected tarjeta_detalle, got %T", ctx)
		assert.Equal(t, "t1", detalle.Tarjeta.ID)
	})

	t.Run("digits must be trailing", func(t *testing.T) {
		ctx := testMatcher().Match("la tarjeta 4321 está vencida")
		_, ok := ctx.(*models.CardDetailContext)
		assert.False(t, ok, "non-trailing digits must not trigger the card rule")
	})

	t.Run("trailing digits without a card fall through", func(t *testing.T) {
		ctx := testMatcher().Match("qwerty 0000")
		assert.Nil(t, ctx)
	})
}

func TestMatcher_Transfers(t *testing.T) {
	kb := testKB()
	matcher := NewMatcherService(kb, "u1", zap.NewNop())

	for _, q := range []string{
		"historial de transferencias",
		"ver movimientos recientes",
		"hice un pago ayer",
	} {
		ctx := matcher.Match(q)
		require.NotNil(t, ctx, "question %q", q)
		trs, ok := ctx.(*models.TransfersContext)
		require.True(t, ok, "question %q: expected transferencias, got %T", q, ctx)
		assert.Len(t, trs.Transferencias, len(kb.Transfers()), "full collection is returned")
	}
}

func TestMatcher_ReferenceTables(t *testing.T) {
	matcher := testMatcher()

	tests := []struct {
		name     string
		question string
		wantKind models.ContextKind
	}{
		{"account type by name", "qué es una cuenta de ahorros", models.KindAccountType},
		{"currency by ISO code", "qué significa usd", models.KindCurrency},
		{"currency by name", "valor del colón costarricense hoy", models.KindCurrency},
		{"identification type by name", "sirve la cédula nacional?", models.KindIDType},
		{"role by name", "qué hace un gestor", models.KindRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := matcher.Match(tt.question)
			require.NotNil(t, ctx)
			assert.Equal(t, tt.wantKind, ctx.Kind())
		})
	}
}

func TestMatcher_SecurityAndCardBlock(t *testing.T) {
	matcher := testMatcher()

	t.Run("pin and cvv are refused", func(t *testing.T) {
		for _, q := range []string{"olvidé mi pin", "dame el cvv"} {
			ctx := matcher.Match(q)
			require.NotNil(t, ctx, "question %q", q)
			sec, ok := ctx.(*models.SecurityContext)
			require.True(t, ok, "question %q: expected seguridad, got %T", q, ctx)
			assert.Equal(t, SecurityMessage, sec.Mensaje)
		}
	})

	t.Run("card block intents", func(t *testing.T) {
		for _, q := range []string{"quiero bloquear tarjeta", "sufrí un robo", "perdí la tarjeta ayer"} {
			ctx := matcher.Match(q)
			require.NotNil(t, ctx, "question %q", q)
			blk, ok := ctx.(*models.CardBlockContext)
			require.True(t, ok, "question %q: expected bloqueo_tarjeta, got %T", q, ctx)
			assert.Equal(t, CardBlockMessage, blk.Mensaje)
		}
	})
}

func TestMatcher_NoMatch(t *testing.T) {
	assert.Nil(t, testMatcher().Match("xyz123 random"))
	assert.Nil(t, testMatcher().Match(""))
	assert.Nil(t, testMatcher().Match("   "))
}

// ==========================
// Ordering and Purity
// ==========================

func TestMatcher_RuleOrder(t *testing.T) {
	matcher := testMatcher()

	t.Run("user name beats balance keyword", func(t *testing.T) {
		ctx := matcher.Match("saldo de ana")
		assert.Equal(t, models.KindUserInfo, ctx.Kind())
	})

	t.Run("balance beats transfer keyword", func(t *testing.T) {
		ctx := matcher.Match("saldo y movimientos")
		assert.Equal(t, models.KindBalance, ctx.Kind())
	})

	t.Run("transfer keyword beats security keyword", func(t *testing.T) {
		ctx := matcher.Match("historial del pin")
		assert.Equal(t, models.KindTransfers, ctx.Kind())
	})

	t.Run("dataset order decides among users", func(t *testing.T) {
		ctx := matcher.Match("ana y carlos comparten cuenta?")
		info := ctx.(*models.UserInfoContext)
		assert.Equal(t, "u1", info.Usuario.ID, "first user in dataset order wins")
	})
}

func TestMatcher_Idempotent(t *testing.T) {
	matcher := testMatcher()

	for _, q := range []string{
		"qué cuentas tiene Ana",
		"cual es mi saldo",
		"historial de transferencias",
		"xyz123 random",
	} {
		first := matcher.Match(q)
		second := matcher.Match(q)
		assert.Equal(t, first, second, "question %q", q)
	}
}
