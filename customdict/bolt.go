package customdict

import (
	"context"

	"github.com/boltdb/bolt"
)

var bucket = []byte(Key)

// BoltStore keeps lines as keys of a bolt bucket.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates the database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Add(_ context.Context, line string) error {
	line, err := Validate(line)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(line), []byte{})
	})
}

func (s *BoltStore) Remove(_ context.Context, line string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(trim(line)))
	})
}

// All returns the lines in key order, which is sorted order.
func (s *BoltStore) All(_ context.Context) ([]string, error) {
	var lines []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(k, _ []byte) error {
			lines = append(lines, string(k))
			return nil
		})
	})
	return lines, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
