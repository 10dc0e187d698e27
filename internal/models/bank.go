package models

// Record types mirroring the banco.json dataset. Field names follow the
// JSON document keys; the dataset is read-only for the process lifetime.

type User struct {
	ID                   string `json:"id"`
	Nombre               string `json:"nombre"`
	Apellido             string `json:"apellido"`
	TipoIdentificacionID string `json:"tipo_identificacion_id"`
}

type Account struct {
	ID        string  `json:"id"`
	UsuarioID string  `json:"usuario_id"`
	Alias     string  `json:"alias"`
	IBAN      string  `json:"iban"`
	Saldo     float64 `json:"saldo"`
	Moneda    string  `json:"moneda"`
	Estado    string  `json:"estado"`
}

type Card struct {
	ID                string `json:"id"`
	UsuarioID         string `json:"usuario_id"`
	NumeroEnmascarado string `json:"numero_enmascarado"`
	Tipo              string `json:"tipo"`
	Moneda            string `json:"moneda"`
	FechaExpiracion   string `json:"fecha_expiracion"`
}

type Transfer struct {
	ID                 string  `json:"id"`
	FechaTransferencia string  `json:"fecha_transferencia"`
	Monto              float64 `json:"monto"`
	Descripcion        string  `json:"descripcion"`
}

type AccountType struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type Currency struct {
	ID     string `json:"id"`
	ISO    string `json:"iso"`
	Nombre string `json:"nombre"`
}

type IdentificationType struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type Role struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// Dataset is the full knowledge base document. Record order in each list
// is significant: matching walks the lists in dataset order.
type Dataset struct {
	Usuarios            []User               `json:"usuario"`
	Cuentas             []Account            `json:"cuenta"`
	Tarjetas            []Card               `json:"tarjeta"`
	Transferencias      []Transfer           `json:"transferencia"`
	TiposCuenta         []AccountType        `json:"tipo_cuenta"`
	Monedas             []Currency           `json:"moneda"`
	TiposIdentificacion []IdentificationType `json:"tipo_identificacion"`
	Roles               []Role               `json:"rol"`
}
