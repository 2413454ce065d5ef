// Package admin implements the price-management session: an authenticated
// operator edits a working draft of the catalog and commits it wholesale.
package admin

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/catalog"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/errors"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/logging"
)

// adminCredential gates the price-management session.
//
// SECURITY: this is a fixed literal compared in-process, exactly as shipped.
// Anyone holding the binary holds the credential, so it grants no real
// confidentiality. Production deployments must move this check behind a
// server-side secret that is never distributed with the client.
const adminCredential = "Huawei@123"

// ErrNotAuthenticated is returned when a draft operation is attempted
// outside an authenticated session.
var ErrNotAuthenticated = errors.New(errors.TypeAuth, "session is not authenticated")

// Store persists the committed catalog across sessions.
type Store interface {
	// Load returns the persisted catalog, or the defaults when no usable
	// snapshot exists.
	Load() catalog.Catalog

	// Save atomically replaces the persisted snapshot.
	Save(catalog.Catalog) error
}

// Session is the admin state machine. It starts unauthenticated; a
// successful Authenticate opens a working draft seeded from the committed
// catalog, and Logout discards the draft unconditionally.
type Session struct {
	id            string
	store         Store
	authenticated bool
	draft         map[types.SKUID]decimal.Decimal
}

// NewSession creates an unauthenticated session backed by the given store.
func NewSession(store Store) *Session {
	return &Session{
		id:    uuid.NewString(),
		store: store,
	}
}

// Authenticate checks the credential and reports only success or failure.
// On success the session transitions to authenticated and seeds the working
// draft from the committed catalog. Failures leave the session unchanged;
// there is no lockout or backoff.
func (s *Session) Authenticate(credential string) bool {
	if credential != adminCredential {
		logging.Warn("admin authentication failed", zap.String("session", s.id))
		return false
	}
	s.authenticated = true
	s.draft = s.store.Load().Prices()
	logging.Info("admin authenticated", zap.String("session", s.id))
	return true
}

// Authenticated reports the session state.
func (s *Session) Authenticated() bool {
	return s.authenticated
}

// Edit updates one price in the working draft. Negative prices clamp to 0.
// The committed catalog is untouched until Commit.
func (s *Session) Edit(id types.SKUID, price decimal.Decimal) error {
	if !s.authenticated {
		return ErrNotAuthenticated
	}
	if !types.IsSKU(id) {
		return errors.NotFound("SKU", string(id))
	}
	if price.IsNegative() {
		price = decimal.Zero
	}
	s.draft[id] = price
	return nil
}

// Draft returns the working draft as a catalog.
func (s *Session) Draft() (catalog.Catalog, error) {
	if !s.authenticated {
		return catalog.Catalog{}, ErrNotAuthenticated
	}
	return catalog.New(s.draft)
}

// ResetDraft replaces the working draft with the built-in defaults. Nothing
// is persisted until Commit.
func (s *Session) ResetDraft() error {
	if !s.authenticated {
		return ErrNotAuthenticated
	}
	s.draft = catalog.Defaults().Prices()
	return nil
}

// Commit persists the working draft wholesale and returns the committed
// catalog. Callers must re-project any open order afterwards.
func (s *Session) Commit() (catalog.Catalog, error) {
	committed, err := s.Draft()
	if err != nil {
		return catalog.Catalog{}, err
	}
	if err := s.store.Save(committed); err != nil {
		return catalog.Catalog{}, errors.Wrap(errors.TypePersistence, "committing price catalog", err)
	}
	logging.Info("price catalog committed", zap.String("session", s.id))
	return committed, nil
}

// Logout returns the session to the unauthenticated state, discarding any
// uncommitted edits.
func (s *Session) Logout() {
	if s.authenticated {
		logging.Info("admin logged out", zap.String("session", s.id))
	}
	s.authenticated = false
	s.draft = nil
}

// ParsePrice coerces raw price input: non-numeric input and negative values
// both become 0, never an error.
func ParsePrice(raw string) decimal.Decimal {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero
	}
	return price
}
