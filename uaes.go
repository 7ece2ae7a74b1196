// Package uaes implements the AES (Rijndael) block cipher from scratch,
// with ECB and CBC modes of operation, for embedding where no cipher
// library is available.
package uaes

import "errors"

// BlockSize is the AES block size in bytes. The block is 128 bits for every
// key strength.
const BlockSize = 16

var (
	// ErrInvalidStrength is returned when the strength selector is not one
	// of AES128, AES192 or AES256.
	ErrInvalidStrength = errors.New("uaes: invalid key strength")

	// ErrMissingKey is returned when the key is nil or empty.
	ErrMissingKey = errors.New("uaes: missing key")

	// ErrKeySize is returned when the key length does not match the
	// selected strength.
	ErrKeySize = errors.New("uaes: key length does not match strength")

	// ErrEmptyMessage is returned when the message buffer is nil or empty.
	ErrEmptyMessage = errors.New("uaes: empty message buffer")

	// ErrMessageTooLarge is returned when the message exceeds the engine's
	// configured ceiling, or a single-block entry point receives more than
	// one block.
	ErrMessageTooLarge = errors.New("uaes: message exceeds maximum size")

	// ErrUnalignedMessage is returned when the message length is not a
	// multiple of the block size and the buffer's capacity cannot absorb
	// the rounding.
	ErrUnalignedMessage = errors.New("uaes: message not block aligned and capacity too small to pad")

	// ErrMissingIV is returned when CBC is invoked without an IV.
	ErrMissingIV = errors.New("uaes: missing initialization vector")

	// ErrIVSize is returned when the IV is not exactly one block.
	ErrIVSize = errors.New("uaes: initialization vector must be one block")
)

// Strength selects one of the three AES key sizes. The set is closed: any
// other value is rejected before cryptographic work begins.
type Strength int

const (
	AES128 Strength = 128
	AES192 Strength = 192
	AES256 Strength = 256
)

func (s Strength) valid() bool {
	switch s {
	case AES128, AES192, AES256:
		return true
	}
	return false
}

// KeyLen returns the raw key length in bytes for the strength.
func (s Strength) KeyLen() int {
	return int(s) / 8
}

// keyWords is Nk, the key length in 32-bit words.
func (s Strength) keyWords() int {
	return int(s) / 32
}

// rounds is Nr. The block length Nb is fixed at 4 words, so the round count
// depends on the key strength alone.
func (s Strength) rounds() int {
	switch s {
	case AES192:
		return 12
	case AES256:
		return 14
	default:
		return 10
	}
}

// scheduleWords is the round-key word count consumed by the round pipeline,
// Nb*(Nr+1).
func (s Strength) scheduleWords() int {
	return 4 * (s.rounds() + 1)
}

func (s Strength) String() string {
	switch s {
	case AES128:
		return "AES-128"
	case AES192:
		return "AES-192"
	case AES256:
		return "AES-256"
	}
	return "AES-?"
}

// tag is the one-byte strength identifier used in the sealed-blob header.
// The values match the selector enumeration of existing callers.
func (s Strength) tag() byte {
	switch s {
	case AES192:
		return 1
	case AES256:
		return 2
	default:
		return 0
	}
}

func strengthFromTag(t byte) (Strength, bool) {
	switch t {
	case 0:
		return AES128, true
	case 1:
		return AES192, true
	case 2:
		return AES256, true
	}
	return 0, false
}

// PaddedLen returns n rounded up to the next multiple of the block size.
// Callers with unaligned messages can use it to size (and pre-zero) their
// buffers, and to reslice them to the ciphertext length after encryption.
func PaddedLen(n int) int {
	return (n + BlockSize - 1) &^ (BlockSize - 1)
}

// EncryptECB encrypts buf in place with the default engine. See
// (*Engine).EncryptECB.
func EncryptECB(buf, key []byte, strength Strength) error {
	return defaultEngine.EncryptECB(buf, key, strength)
}

// DecryptECB decrypts buf in place with the default engine. See
// (*Engine).DecryptECB.
func DecryptECB(buf, key []byte, strength Strength) error {
	return defaultEngine.DecryptECB(buf, key, strength)
}

// EncryptCBC encrypts buf in place with the default engine. See
// (*Engine).EncryptCBC.
func EncryptCBC(buf, key, iv []byte, strength Strength) error {
	return defaultEngine.EncryptCBC(buf, key, iv, strength)
}

// DecryptCBC decrypts buf in place with the default engine. See
// (*Engine).DecryptCBC.
func DecryptCBC(buf, key, iv []byte, strength Strength) error {
	return defaultEngine.DecryptCBC(buf, key, iv, strength)
}

// Seal encrypts plaintext into a self-describing blob with the default
// engine. See (*Engine).Seal.
func Seal(dst, plaintext, key []byte, strength Strength) ([]byte, error) {
	return defaultEngine.Seal(dst, plaintext, key, strength)
}

// Open decrypts a blob produced by Seal with the default engine. See
// (*Engine).Open.
func Open(dst, sealed, key []byte) ([]byte, error) {
	return defaultEngine.Open(dst, sealed, key)
}

// Single-block entry points. Each validates that block holds between 1 and
// 16 bytes (rounded up to one block within its capacity), runs the key
// schedule and a single transform, and leaves the block untouched on any
// rejected call. They exist so a caller needing exactly one block can skip
// mode selection entirely.

func EncryptBlock128(block, key []byte) error {
	return defaultEngine.EncryptBlock(block, key, AES128)
}

func EncryptBlock192(block, key []byte) error {
	return defaultEngine.EncryptBlock(block, key, AES192)
}

func EncryptBlock256(block, key []byte) error {
	return defaultEngine.EncryptBlock(block, key, AES256)
}

func DecryptBlock128(block, key []byte) error {
	return defaultEngine.DecryptBlock(block, key, AES128)
}

func DecryptBlock192(block, key []byte) error {
	return defaultEngine.DecryptBlock(block, key, AES192)
}

func DecryptBlock256(block, key []byte) error {
	return defaultEngine.DecryptBlock(block, key, AES256)
}
