// Package fallback serves every entity operation from a local bbolt file
// when the remote API is administratively disabled. It implements the same
// service interfaces as the remote layer, so controllers cannot tell the two
// apart. The client is the sole authority in this mode: ids are generated
// locally as monotonic millisecond timestamps.
package fallback

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	bucketProducts   = []byte("products")
	bucketCategories = []byte("categories")
	bucketCustomers  = []byte("customers")
	bucketOrders     = []byte("orders")
	bucketUsers      = []byte("users")
)

// Store is the shared bbolt handle behind the per-entity fallback services.
type Store struct {
	db *bolt.DB

	mu     sync.Mutex
	lastID int64
}

// Open creates or opens the local database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketProducts, bucketCategories, bucketCustomers, bucketOrders, bucketUsers} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// nextID issues a millisecond-timestamp id, forced strictly monotonic so two
// creations in the same millisecond stay ordered and unique.
func (s *Store) nextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) putJSON(bucket []byte, id string, record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(id), raw)
	})
}

func (s *Store) getJSON(bucket []byte, id string, out any) error {
	return s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucket).Get([]byte(id))
		if raw == nil {
			return ErrRecordNotFound
		}
		return json.Unmarshal(raw, out)
	})
}

func (s *Store) deleteRecord(bucket []byte, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b.Get([]byte(id)) == nil {
			return ErrRecordNotFound
		}
		return b.Delete([]byte(id))
	})
}

// forEach walks a bucket in key order (timestamp ids sort chronologically)
// and unmarshals every record through fn.
func (s *Store) forEach(bucket []byte, fn func(raw []byte) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(_, raw []byte) error {
			return fn(raw)
		})
	})
}
