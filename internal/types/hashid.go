package types

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const HashIdSize = 32

// HashId is the content identifier of an item: sha3-256 over its packed form.
type HashId [HashIdSize]byte

func NewHashId(packed []byte) HashId {
	return HashId(sha3.Sum256(packed))
}

func HashIdFromBytes(b []byte) (HashId, error) {
	var id HashId
	if len(b) != HashIdSize {
		return id, fmt.Errorf("hash id must be %d bytes, got %d", HashIdSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

func (id HashId) Bytes() []byte {
	return id[:]
}

func (id HashId) IsZero() bool {
	return bytes.Equal(id[:], make([]byte, HashIdSize))
}

func (id HashId) String() string {
	return base64.RawURLEncoding.EncodeToString(id[:8])
}
