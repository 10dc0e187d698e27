package models

// ContextKind discriminates the Context union on the wire (the "tipo" field).
type ContextKind string

const (
	KindUserInfo      ContextKind = "usuario_info"
	KindBalance       ContextKind = "saldo"
	KindAccountDetail ContextKind = "cuenta_detalle"
	KindCardDetail    ContextKind = "tarjeta_detalle"
	KindTransfers     ContextKind = "transferencias"
	KindAccountType   ContextKind = "tipo_cuenta"
	KindCurrency      ContextKind = "moneda"
	KindIDType        ContextKind = "tipo_identificacion"
	KindRole          ContextKind = "rol"
	KindSecurity      ContextKind = "seguridad"
	KindCardBlock     ContextKind = "bloqueo_tarjeta"
)

// Context is the structured result of classifying a question against the
// knowledge base. A nil Context means no local match was found. Each
// variant carries the matched record(s); constructors stamp the Tipo field
// so marshalled values always carry their discriminator.
type Context interface {
	Kind() ContextKind
}

type UserInfoContext struct {
	Tipo     ContextKind `json:"tipo"`
	Usuario  User        `json:"usuario"`
	Cuentas  []Account   `json:"cuentas"`
	Tarjetas []Card      `json:"tarjetas"`
}

func NewUserInfoContext(u User, cuentas []Account, tarjetas []Card) *UserInfoContext {
	return &UserInfoContext{Tipo: KindUserInfo, Usuario: u, Cuentas: cuentas, Tarjetas: tarjetas}
}

func (c *UserInfoContext) Kind() ContextKind { return KindUserInfo }

// BalanceContext may carry a nil account when the reference user owns none.
type BalanceContext struct {
	Tipo   ContextKind `json:"tipo"`
	Cuenta *Account    `json:"cuenta"`
}

func NewBalanceContext(cuenta *Account) *BalanceContext {
	return &BalanceContext{Tipo: KindBalance, Cuenta: cuenta}
}

func (c *BalanceContext) Kind() ContextKind { return KindBalance }

type AccountDetailContext struct {
	Tipo   ContextKind `json:"tipo"`
	Cuenta Account     `json:"cuenta"`
}

func NewAccountDetailContext(cuenta Account) *AccountDetailContext {
	return &AccountDetailContext{Tipo: KindAccountDetail, Cuenta: cuenta}
}

func (c *AccountDetailContext) Kind() ContextKind { return KindAccountDetail }

type CardDetailContext struct {
	Tipo    ContextKind `json:"tipo"`
	Tarjeta Card        `json:"tarjeta"`
}

func NewCardDetailContext(tarjeta Card) *CardDetailContext {
	return &CardDetailContext{Tipo: KindCardDetail, Tarjeta: tarjeta}
}

func (c *CardDetailContext) Kind() ContextKind { return KindCardDetail }

type TransfersContext struct {
	Tipo           ContextKind `json:"tipo"`
	Transferencias []Transfer  `json:"transferencias"`
}

func NewTransfersContext(transferencias []Transfer) *TransfersContext {
	return &TransfersContext{Tipo: KindTransfers, Transferencias: transferencias}
}

func (c *TransfersContext) Kind() ContextKind { return KindTransfers }

type AccountTypeContext struct {
	Tipo       ContextKind `json:"tipo"`
	TipoCuenta AccountType `json:"tipoCuenta"`
}

func NewAccountTypeContext(tc AccountType) *AccountTypeContext {
	return &AccountTypeContext{Tipo: KindAccountType, TipoCuenta: tc}
}

func (c *AccountTypeContext) Kind() ContextKind { return KindAccountType }

type CurrencyContext struct {
	Tipo   ContextKind `json:"tipo"`
	Moneda Currency    `json:"moneda"`
}

func NewCurrencyContext(m Currency) *CurrencyContext {
	return &CurrencyContext{Tipo: KindCurrency, Moneda: m}
}

func (c *CurrencyContext) Kind() ContextKind { return KindCurrency }

type IDTypeContext struct {
	Tipo   ContextKind        `json:"tipo"`
	TipoID IdentificationType `json:"tipoId"`
}

func NewIDTypeContext(ti IdentificationType) *IDTypeContext {
	return &IDTypeContext{Tipo: KindIDType, TipoID: ti}
}

func (c *IDTypeContext) Kind() ContextKind { return KindIDType }

type RoleContext struct {
	Tipo ContextKind `json:"tipo"`
	Rol  Role        `json:"rol"`
}

func NewRoleContext(r Role) *RoleContext {
	return &RoleContext{Tipo: KindRole, Rol: r}
}

func (c *RoleContext) Kind() ContextKind { return KindRole }

// SecurityContext carries the fixed disclosure-refusal text.
type SecurityContext struct {
	Tipo    ContextKind `json:"tipo"`
	Mensaje string      `json:"mensaje"`
}

func NewSecurityContext(mensaje string) *SecurityContext {
	return &SecurityContext{Tipo: KindSecurity, Mensaje: mensaje}
}

func (c *SecurityContext) Kind() ContextKind { return KindSecurity }

// CardBlockContext carries the fixed card-blocking instructions.
type CardBlockContext struct {
	Tipo    ContextKind `json:"tipo"`
	Mensaje string      `json:"mensaje"`
}

func NewCardBlockContext(mensaje string) *CardBlockContext {
	return &CardBlockContext{Tipo: KindCardBlock, Mensaje: mensaje}
}

func (c *CardBlockContext) Kind() ContextKind { return KindCardBlock }
