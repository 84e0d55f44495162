package entity

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// StampType names a loyalty currency. The zero value means "no stamps".
type StampType string

const (
	StampNone   StampType = ""
	StampCoffee StampType = "coffee"
	StampBottle StampType = "bottle"
)

// StampTypes lists every loyalty currency an account carries a counter for.
var StampTypes = []StampType{StampCoffee, StampBottle}

// IsSet reports whether s names a currency.
func (s StampType) IsSet() bool {
	return s != StampNone
}

// IsValid checks if the StampType is none or a known currency.
func (s StampType) IsValid() bool {
	switch s {
	case StampNone, StampCoffee, StampBottle:
		return true
	default:
		return false
	}
}

// Stamps maps a loyalty currency to a unit count. Missing keys count as zero.
type Stamps map[StampType]int64

// Get returns the counter for t.
func (s Stamps) Get(t StampType) int64 {
	return s[t]
}

// Clone returns an independent copy.
func (s Stamps) Clone() Stamps {
	out := make(Stamps, len(StampTypes))
	maps.Copy(out, s)

	return out
}

// Plus returns s + delta without modifying either operand.
func (s Stamps) Plus(delta Stamps) Stamps {
	out := s.Clone()
	for t, v := range delta {
		out[t] += v
	}

	return out
}

// Account is the holder of a balance, stamp counters and credentials.
// Balance and Stamps change only through the transaction engine.
type Account struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  Role

	Balance       int64 // minor currency units (cents)
	Stamps        Stamps
	MinimumCredit int64 // debits may not push Balance below this floor

	UseDigitalStamps     bool // stamps are booked and redeemable on this account
	AllowNfcRegistration bool // the account may register its own card

	AuthMethods []AuthMethod

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetAuthMethod stores m, replacing any method of the same kind.
func (a *Account) SetAuthMethod(m AuthMethod) {
	for i, existing := range a.AuthMethods {
		if existing.Kind() == m.Kind() {
			a.AuthMethods[i] = m

			return
		}
	}
	a.AuthMethods = append(a.AuthMethods, m)
}

// RemoveAuthMethod drops the method of the given kind. It reports whether one existed.
func (a *Account) RemoveAuthMethod(kind AuthMethodKind) bool {
	for i, existing := range a.AuthMethods {
		if existing.Kind() == kind {
			a.AuthMethods = append(a.AuthMethods[:i], a.AuthMethods[i+1:]...)

			return true
		}
	}

	return false
}

// AuthMethod returns the method of the given kind, if any.
func (a *Account) AuthMethod(kind AuthMethodKind) (AuthMethod, bool) {
	for _, existing := range a.AuthMethods {
		if existing.Kind() == kind {
			return existing, true
		}
	}

	return nil, false
}

// PasswordAuth returns the password method, if any.
func (a *Account) PasswordAuth() (*PasswordAuth, bool) {
	m, ok := a.AuthMethod(AuthMethodPassword)
	if !ok {
		return nil, false
	}
	p, ok := m.(*PasswordAuth)

	return p, ok
}

// NfcAuth returns the card method, if any.
func (a *Account) NfcAuth() (*NfcAuth, bool) {
	m, ok := a.AuthMethod(AuthMethodNfc)
	if !ok {
		return nil, false
	}
	n, ok := m.(*NfcAuth)

	return n, ok
}

// BarcodeAuth returns the public tab method, if any.
func (a *Account) BarcodeAuth() (*BarcodeAuth, bool) {
	m, ok := a.AuthMethod(AuthMethodBarcode)
	if !ok {
		return nil, false
	}
	b, ok := m.(*BarcodeAuth)

	return b, ok
}

// HasMethodOtherThan reports whether the account can authenticate without kind.
func (a *Account) HasMethodOtherThan(kind AuthMethodKind) bool {
	for _, existing := range a.AuthMethods {
		if existing.Kind() != kind {
			return true
		}
	}

	return false
}

// ValidateAuthMethods enforces at most one method per kind and well-formed identifiers.
func (a *Account) ValidateAuthMethods() error {
	seen := make(map[AuthMethodKind]struct{}, len(a.AuthMethods))
	for _, m := range a.AuthMethods {
		if _, dup := seen[m.Kind()]; dup {
			return ErrDuplicateAuthMethodKind
		}
		seen[m.Kind()] = struct{}{}

		if err := m.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// StampsOrEmpty returns the stamp map, allocating it when nil.
func (a *Account) StampsOrEmpty() Stamps {
	if a.Stamps == nil {
		a.Stamps = make(Stamps, len(StampTypes))
	}

	return a.Stamps
}
