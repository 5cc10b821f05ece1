package entrants

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

// Store keeps packed entrant ledgers in badger, one value per raffle. Appends
// are read-modify-write inside a single badger transaction, so two racing
// purchases serialize: either both fit or the loser observes the committed
// total and fails the capacity check.
type Store struct {
	db *badger.DB
}

func NewStore(dir string) (*Store, error) {
	options := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open entrants store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func ledgerKey(id string) []byte {
	return []byte("entrants/" + id)
}

// Create allocates an empty ledger sized for max records.
func (s *Store) Create(id string, max uint32) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(ledgerKey(id)); err == nil {
			return fmt.Errorf("entrants ledger %s already exists", id)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		data := make([]byte, HeaderSize)
		encodeHeader(data, Entrants{Total: 0, Max: max})
		return txn.Set(ledgerKey(id), data)
	})
}

// Get reads the ledger header. Returns raffle.ErrAccountNotInitialized once
// the ledger has been closed.
func (s *Store) Get(id string) (Entrants, error) {
	var header Entrants
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(ledgerKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return raffle.ErrAccountNotInitialized
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			header, err = decodeHeader(value)
			return err
		})
	})
	return header, err
}

// Entrant returns the identity holding one ticket index.
func (s *Store) Entrant(id string, index uint32) (identity.Identity, error) {
	var entrant identity.Identity
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(ledgerKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return raffle.ErrAccountNotInitialized
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			entrant, err = EntrantAt(value, index)
			return err
		})
	})
	return entrant, err
}

// CountFor counts the tickets already held by one entrant.
func (s *Store) CountFor(id string, entrant identity.Identity) (uint32, error) {
	var count uint32
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(ledgerKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return raffle.ErrAccountNotInitialized
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			count, err = CountFor(value, entrant)
			return err
		})
	})
	return count, err
}

// Append adds count copies of the entrant identity and returns the updated
// header. Fails with raffle.ErrSoldOut when the ledger cannot fit them all;
// a failed append writes nothing.
func (s *Store) Append(id string, entrant identity.Identity, count uint32) (Entrants, error) {
	var header Entrants
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(ledgerKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return raffle.ErrAccountNotInitialized
		}
		if err != nil {
			return err
		}
		data, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		header, err = decodeHeader(data)
		if err != nil {
			return err
		}
		if header.Max-header.Total < count {
			return raffle.ErrSoldOut
		}
		grown := make([]byte, len(data)+int(count)*identity.Size)
		copy(grown, data)
		for i := uint32(0); i < count; i++ {
			offset := HeaderSize + int(header.Total+i)*identity.Size
			copy(grown[offset:offset+identity.Size], entrant[:])
		}
		header.Total += count
		encodeHeader(grown, header)
		return txn.Set(ledgerKey(id), grown)
	})
	if err != nil {
		return Entrants{}, err
	}
	logger.Debug("entrants appended",
		zap.String("ledger", id),
		zap.String("entrant", entrant.String()),
		zap.Uint32("count", count),
		zap.Uint32("total", header.Total),
		zap.Uint32("max", header.Max))
	return header, nil
}

// Snapshot returns the full packed ledger image for archival.
func (s *Store) Snapshot(id string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(ledgerKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return raffle.ErrAccountNotInitialized
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	return data, err
}

// Delete closes the ledger, reclaiming its storage. Reads afterwards fail
// with raffle.ErrAccountNotInitialized.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(ledgerKey(id))
	})
}

// Exists reports whether the ledger is still open.
func (s *Store) Exists(id string) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(ledgerKey(id))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
