package kv

import (
	"bytes"
	"context"
	"time"

	"reminder-scheduler/internal/pkg/errs"

	"go.etcd.io/bbolt"
)

var bucketName = []byte("kv")

type BoltStore struct {
	db *bbolt.DB
}

func OpenBolt(path string, timeout time.Duration) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, errs.Wrapf(err, "open bolt store %s", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errs.Wrap(err, "create kv bucket")
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if err := key.Validate(); err != nil {
		return nil, false, err
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketName).Get(key.Encode()); v != nil {
			// bolt memory is only valid inside the transaction
			value = bytes.Clone(v)
		}
		return nil
	})
	if err != nil {
		return nil, false, errs.Wrap(err, "bolt get")
	}
	return value, value != nil, nil
}

func (s *BoltStore) SetMany(ctx context.Context, entries []Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, e := range entries {
		if err := e.Key.Validate(); err != nil {
			return err
		}
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		for _, e := range entries {
			if err := b.Put(e.Key.Encode(), e.Value); err != nil {
				return err
			}
		}
		return nil
	})
	return errs.Wrap(err, "bolt set")
}

func (s *BoltStore) DeleteMany(ctx context.Context, keys []Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateAll(keys); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		for _, k := range keys {
			if err := b.Delete(k.Encode()); err != nil {
				return err
			}
		}
		return nil
	})
	return errs.Wrap(err, "bolt delete")
}

func (s *BoltStore) ScanPrefix(ctx context.Context, prefix Key) ([]Entry, error) {
	start := prefix.Encode()
	return s.scan(ctx, prefix, start, prefixEnd(start))
}

func (s *BoltStore) ScanRange(ctx context.Context, prefix, upper Key) ([]Entry, error) {
	return s.scan(ctx, prefix, prefix.Encode(), prefixEnd(upper.Encode()))
}

// scan collects [start, end) into memory; a nil end means unbounded.
func (s *BoltStore) scan(ctx context.Context, prefix Key, start, end []byte) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := prefix.Validate(); err != nil {
		return nil, err
	}

	var entries []Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketName).Cursor()
		for k, v := c.Seek(start); k != nil; k, v = c.Next() {
			if end != nil && bytes.Compare(k, end) >= 0 {
				break
			}
			if !bytes.HasPrefix(k, start) {
				break
			}
			key, err := DecodeKey(k)
			if err != nil {
				return err
			}
			entries = append(entries, Entry{Key: key, Value: bytes.Clone(v)})
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "bolt scan")
	}
	return entries, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
