package main

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
	"unicode/utf16"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/sha3"
)

//go:generate go run github.com/dmarkham/enumer -output algorithm_enumer.go -type Algorithm -transform lower algorithm.go

type Algorithm byte

const (
	MD5 Algorithm = iota
	MD4
	NTLM
	SHA1
	SHA256
	SHA512
	SHA3_256
	BLAKE2b_256
)

var ErrDigestLength = errors.New("digest has wrong length")

// Hasher computes digests for one goroutine, it must not be shared
type Hasher interface {
	// Sum appends the digest of plaintext to dst
	Sum(dst, plaintext []byte) []byte
	Size() int
}

func (a Algorithm) New() Hasher {
	switch a {
	case MD4:
		return &plainHasher{h: md4.New()}
	case NTLM:
		return &ntlmHasher{h: md4.New()}
	case SHA1:
		return &plainHasher{h: sha1.New()}
	case SHA256:
		return &plainHasher{h: sha256.New()}
	case SHA512:
		return &plainHasher{h: sha512.New()}
	case SHA3_256:
		return &plainHasher{h: sha3.New256()}
	case BLAKE2b_256:
		h, _ := blake2b.New256(nil) // only fails for oversized keys
		return &plainHasher{h: h}
	default:
		return &plainHasher{h: md5.New()}
	}
}

// Digest is a one shot hash of plaintext
func (a Algorithm) Digest(plaintext []byte) []byte {
	return a.New().Sum(nil, plaintext)
}

// ParseDigest decodes a hex encoded digest and checks that it fits the algorithm
func ParseDigest(a Algorithm, hexdigest string) ([]byte, error) {
	digest, err := hex.DecodeString(strings.TrimSpace(hexdigest))
	if err != nil {
		return nil, fmt.Errorf("decoding %v digest: %w", a, err)
	}
	if size := a.New().Size(); len(digest) != size {
		return nil, fmt.Errorf("%w: %v digests are %d bytes, got %d", ErrDigestLength, a, size, len(digest))
	}
	return digest, nil
}

type plainHasher struct {
	h hash.Hash
}

func (p *plainHasher) Sum(dst, plaintext []byte) []byte {
	p.h.Reset()
	p.h.Write(plaintext)
	return p.h.Sum(dst)
}

func (p *plainHasher) Size() int {
	return p.h.Size()
}

// ntlmHasher is MD4 over the UTF-16LE encoding of the plaintext, as Windows stores it
type ntlmHasher struct {
	h   hash.Hash
	buf []byte
}

func (n *ntlmHasher) Sum(dst, plaintext []byte) []byte {
	n.buf = n.buf[:0]
	for _, unit := range utf16.Encode([]rune(string(plaintext))) {
		n.buf = binary.LittleEndian.AppendUint16(n.buf, unit)
	}
	n.h.Reset()
	n.h.Write(n.buf)
	return n.h.Sum(dst)
}

func (n *ntlmHasher) Size() int {
	return n.h.Size()
}
