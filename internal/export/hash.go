package export

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/crypto/argon2"
)

// HashType represents the different hashing algorithms available.
type HashType string

const (
	// HashTypeArgon2id uses the Argon2id algorithm for hashing.
	HashTypeArgon2id HashType = "argon2id"
	// HashTypeSHA256 uses the SHA256 algorithm for hashing.
	HashTypeSHA256 HashType = "sha256"
)

// HashAddress converts a single wallet address to a hash using the specified
// algorithm with the provided salt. Addresses are lowercased first so the
// same wallet always produces the same hash regardless of checksum casing.
func HashAddress(address, salt string, hashType HashType, iterations, memory uint32) string {
	addrBytes := []byte(strings.ToLower(address))

	var hash []byte

	switch hashType {
	case HashTypeArgon2id:
		hash = argon2.IDKey(addrBytes, []byte(salt), iterations, memory*1024, 1, 32)
	case HashTypeSHA256:
		// Iterative SHA256 hashing with salt
		hash = []byte(salt)

		h := sha256.New()
		for range iterations {
			h.Reset()
			h.Write(addrBytes)
			h.Write(hash)
			hash = h.Sum(nil)
		}
	}

	return hex.EncodeToString(hash)
}

// hashAddresses concurrently hashes multiple wallet addresses, preserving
// input order in the result.
func hashAddresses(addresses []string, salt string, hashType HashType, concurrency int, iterations, memory uint32) []string {
	if len(addresses) == 0 {
		return nil
	}

	if concurrency < 1 {
		concurrency = 1
	}

	hashes := make([]string, len(addresses))

	p := pool.New().WithMaxGoroutines(concurrency)
	for i, address := range addresses {
		p.Go(func() {
			hashes[i] = HashAddress(address, salt, hashType, iterations, memory)
		})
	}

	p.Wait()

	return hashes
}
