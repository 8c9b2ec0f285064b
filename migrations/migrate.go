// Package migrations upgrades data documents written by older releases to
// the current on-disk format.
package migrations

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-memory-calendar/internal/utils"
	"github.com/MKhiriev/go-memory-calendar/models"
)

type accountsDocument struct {
	Users []models.User `json:"users"`
}

// Migrate rewrites any plaintext passwords in the accounts document under
// dataDir with their SHA-256 hex digests. Early releases stored passwords
// verbatim; this upgrades such documents in place.
//
// The migration is idempotent: already-hashed passwords are left untouched
// and the document is only rewritten when at least one account changed.
// A missing or unreadable accounts document is not an error, the store
// will create a fresh one on first registration.
func Migrate(dataDir string) error {
	path := filepath.Join(dataDir, "accounts.json")

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var doc accountsDocument
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil
	}

	changed := false
	for i, user := range doc.Users {
		if utils.IsSHA256Hex(user.Password) {
			continue
		}
		doc.Users[i].Password = utils.HashPassword(user.Password)
		changed = true
	}

	if !changed {
		return nil
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("migration error encoding accounts document: %w", err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("migration error writing accounts document: %w", err)
	}

	return nil
}
