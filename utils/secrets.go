// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const opaqueTokenBytes = 32

// GenerateOpaqueToken returns 256 random bits, base64url encoded and prefixed.
func GenerateOpaqueToken(prefix string) (string, error) {
	b := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not read random bytes: %w", err)
	}
	return prefix + base64.RawURLEncoding.EncodeToString(b), nil
}

// TokenHasher derives lookup hashes of opaque tokens with keyed BLAKE2b-256.
// Raw tokens are never stored.
type TokenHasher struct {
	key []byte
}

func NewTokenHasher(pepper string) (TokenHasher, error) {
	if pepper == "" {
		return TokenHasher{}, fmt.Errorf("token pepper must not be empty")
	}
	key := []byte(pepper)
	// blake2b keys are limited to 64 bytes
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	return TokenHasher{key: key}, nil
}

func (h TokenHasher) Hash(token string) string {
	mac, err := blake2b.New256(h.key)
	if err != nil {
		// only possible with an oversized key, which NewTokenHasher prevents
		panic(err)
	}
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func (h TokenHasher) Matches(token, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Hash(token)), []byte(hash)) == 1
}
