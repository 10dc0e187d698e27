package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"damena-assistant/internal/models"
	"damena-assistant/pkg/config"
	"damena-assistant/pkg/logger"

	"go.uber.org/zap"
)

// Writes the demo knowledge base to the configured data path. The service
// itself never mutates this file; regenerate it here when the demo data
// needs to change.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	data := demoDataset()

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		appLogger.Fatal("Failed to encode dataset", zap.Error(err))
	}

	if dir := filepath.Dir(cfg.Knowledge.DataPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			appLogger.Fatal("Failed to create data directory", zap.Error(err))
		}
	}

	if err := os.WriteFile(cfg.Knowledge.DataPath, raw, 0o644); err != nil {
		appLogger.Fatal("Failed to write dataset", zap.Error(err))
	}

	appLogger.Info("Knowledge base seeded",
		zap.String("path", cfg.Knowledge.DataPath),
		zap.Int("usuarios", len(data.Usuarios)),
		zap.Int("cuentas", len(data.Cuentas)),
	)
}

func demoDataset() *models.Dataset {
	return &models.Dataset{
		Usuarios: []models.User{
			{ID: "u1", Nombre: "Ana", Apellido: "Rojas", TipoIdentificacionID: "ti1"},
			{ID: "u2", Nombre: "Carlos", Apellido: "Jiménez", TipoIdentificacionID: "ti1"},
			{ID: "u3", Nombre: "Lucía", Apellido: "Fernández", TipoIdentificacionID: "ti2"},
		},
		Cuentas: []models.Account{
			{ID: "c1", UsuarioID: "u1", Alias: "Cuenta Principal", IBAN: "CR21015202001026284066", Saldo: 1525000.5, Moneda: "m1", Estado: "activa"},
			{ID: "c2", UsuarioID: "u1", Alias: "Ahorro Dólares", IBAN: "CR05015202001026284067", Saldo: 2450.75, Moneda: "m2", Estado: "activa"},
			{ID: "c3", UsuarioID: "u2", Alias: "Cuenta Nómina", IBAN: "CR87015202001026284068", Saldo: 860000, Moneda: "m1", Estado: "activa"},
			{ID: "c4", UsuarioID: "u3", Alias: "Cuenta Corriente", IBAN: "CR44015202001026284069", Saldo: 125.3, Moneda: "m2", Estado: "bloqueada"},
		},
		Tarjetas: []models.Card{
			{ID: "t1", UsuarioID: "u1", NumeroEnmascarado: "**** **** **** 4321", Tipo: "débito", Moneda: "m1", FechaExpiracion: "2027-08"},
			{ID: "t2", UsuarioID: "u1", NumeroEnmascarado: "**** **** **** 9087", Tipo: "crédito", Moneda: "m2", FechaExpiracion: "2026-11"},
			{ID: "t3", UsuarioID: "u2", NumeroEnmascarado: "**** **** **** 5544", Tipo: "débito", Moneda: "m1", FechaExpiracion: "2028-02"},
		},
		Transferencias: []models.Transfer{
			{ID: "tr1", FechaTransferencia: "2025-07-14", Monto: 45000, Descripcion: "Pago de alquiler"},
			{ID: "tr2", FechaTransferencia: "2025-07-20", Monto: 12500, Descripcion: "Supermercado"},
			{ID: "tr3", FechaTransferencia: "2025-08-02", Monto: 98000, Descripcion: "Matrícula universitaria"},
		},
		TiposCuenta: []models.AccountType{
			{ID: "tc1", Nombre: "ahorros", Descripcion: "Cuenta de ahorro con intereses mensuales"},
			{ID: "tc2", Nombre: "corriente", Descripcion: "Cuenta corriente con chequera y sobregiro"},
		},
		Monedas: []models.Currency{
			{ID: "m1", ISO: "CRC", Nombre: "colón costarricense"},
			{ID: "m2", ISO: "USD", Nombre: "dólar estadounidense"},
		},
		TiposIdentificacion: []models.IdentificationType{
			{ID: "ti1", Nombre: "cédula nacional", Descripcion: "Documento de identidad costarricense"},
			{ID: "ti2", Nombre: "pasaporte", Descripcion: "Documento de viaje internacional"},
		},
		Roles: []models.Role{
			{ID: "r1", Nombre: "cliente", Descripcion: "Usuario final de los productos del banco"},
			{ID: "r2", Nombre: "gestor", Descripcion: "Funcionario que administra carteras de clientes"},
		},
	}
}
