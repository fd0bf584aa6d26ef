package storage

import "github.com/annaaimenedger987-crypto/massageBot/models"

// Store persists the scheduler's single state document. The ledger calls
// Save synchronously from every mutating operation; a Save failure means the
// mutation did not commit.
type Store interface {
	Load() (models.Document, error)
	Save(doc models.Document) error
}
