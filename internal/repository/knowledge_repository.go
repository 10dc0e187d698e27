package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"damena-assistant/internal/models"

	"go.uber.org/zap"
)

// KnowledgeRepository holds the banking dataset loaded once at startup.
// The dataset is never mutated after construction, so accessors hand out
// the backing slices directly.
type KnowledgeRepository struct {
	data   *models.Dataset
	logger *zap.Logger
}

// NewKnowledgeRepository loads the knowledge base JSON document from disk.
func NewKnowledgeRepository(dataPath string, logger *zap.Logger) (*KnowledgeRepository, error) {
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	var data models.Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base: %w", err)
	}

	logger.Info("Knowledge base loaded",
		zap.String("path", dataPath),
		zap.Int("usuarios", len(data.Usuarios)),
		zap.Int("cuentas", len(data.Cuentas)),
		zap.Int("tarjetas", len(data.Tarjetas)),
		zap.Int("transferencias", len(data.Transferencias)),
	)

	return NewKnowledgeRepositoryFromDataset(&data, logger), nil
}

// NewKnowledgeRepositoryFromDataset wraps an already-built dataset.
func NewKnowledgeRepositoryFromDataset(data *models.Dataset, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		data:   data,
		logger: logger,
	}
}

func (r *KnowledgeRepository) Users() []models.User {
	return r.data.Usuarios
}

func (r *KnowledgeRepository) Accounts() []models.Account {
	return r.data.Cuentas
}

func (r *KnowledgeRepository) Cards() []models.Card {
	return r.data.Tarjetas
}

func (r *KnowledgeRepository) Transfers() []models.Transfer {
	return r.data.Transferencias
}

func (r *KnowledgeRepository) AccountTypes() []models.AccountType {
	return r.data.TiposCuenta
}

func (r *KnowledgeRepository) Currencies() []models.Currency {
	return r.data.Monedas
}

func (r *KnowledgeRepository) IdentificationTypes() []models.IdentificationType {
	return r.data.TiposIdentificacion
}

func (r *KnowledgeRepository) Roles() []models.Role {
	return r.data.Roles
}

// AccountsByUser returns the accounts owned by the given user, in dataset order.
func (r *KnowledgeRepository) AccountsByUser(userID string) []models.Account {
	var out []models.Account
	for _, c := range r.data.Cuentas {
		if c.UsuarioID == userID {
			out = append(out, c)
		}
	}
	return out
}

// CardsByUser returns the cards owned by the given user, in dataset order.
func (r *KnowledgeRepository) CardsByUser(userID string) []models.Card {
	var out []models.Card
	for _, t := range r.data.Tarjetas {
		if t.UsuarioID == userID {
			out = append(out, t)
		}
	}
	return out
}

// FirstAccountOfUser returns the first account owned by the user, or nil.
func (r *KnowledgeRepository) FirstAccountOfUser(userID string) *models.Account {
	for _, c := range r.data.Cuentas {
		if c.UsuarioID == userID {
			cuenta := c
			return &cuenta
		}
	}
	return nil
}
