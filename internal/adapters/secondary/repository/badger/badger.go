// Package badger stores messages and follows in an embedded BadgerDB,
// so the CLI works without any server.
package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Open opens (or creates) the store at path. An empty path keeps everything in memory.
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLoggingLevel(badger.ERROR)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open %q: %w", path, err)
	}
	return db, nil
}

// User names are length-prefixed inside keys, so no name can read as the
// prefix of another one whatever bytes it contains.
func userSegment(user string) string {
	return fmt.Sprintf("%d:%s:", len(user), user)
}

func messageKey(id string) []byte {
	return []byte("msg:" + id)
}

func authorPrefix(author string) []byte {
	return []byte("author:" + userSegment(author))
}

func authorKey(author, id string) []byte {
	return append(authorPrefix(author), id...)
}

func followPrefix(user string) []byte {
	return []byte("follow:" + userSegment(user))
}

func followKey(user, followee string) []byte {
	return append(followPrefix(user), followee...)
}
