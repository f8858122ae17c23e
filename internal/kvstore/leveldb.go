package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDB keeps entries in a local LevelDB directory.
type LevelDB struct {
	conn *leveldb.DB
	path string
}

// OpenLevelDB opens (or creates) a LevelDB instance at the given path.
func OpenLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &LevelDB{conn: db, path: path}, nil
}

func (l *LevelDB) Name() string { return "leveldb" }

// Get retrieves the value for a key.
func (l *LevelDB) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := l.conn.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leveldb get %s: %w", key, err)
	}
	return v, nil
}

// Set inserts or replaces a key.
func (l *LevelDB) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.conn.Put([]byte(key), value, nil); err != nil {
		return fmt.Errorf("leveldb put %s: %w", key, err)
	}
	return nil
}

// Ping fails once the database is closed.
func (l *LevelDB) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	snap, err := l.conn.GetSnapshot()
	if err != nil {
		return fmt.Errorf("leveldb %s: %w", l.path, err)
	}
	snap.Release()
	return nil
}

// Close safely closes the LevelDB connection.
func (l *LevelDB) Close() error {
	return l.conn.Close()
}
