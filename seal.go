package uaes

import "errors"

// Self-describing sealed blob: a two-byte header followed by the ECB
// ciphertext of the zero-padded payload. Byte 0 carries the strength tag
// (0, 1, 2 for AES-128/192/256), byte 1 the block-aligned payload length.
// This is the one wire layout preserved for interoperability with existing
// callers.

// headerSize is the length of the sealed-blob header in bytes.
const headerSize = 2

var (
	// ErrTruncatedSeal is returned when a sealed blob is shorter than its
	// header, or than the payload the header describes.
	ErrTruncatedSeal = errors.New("uaes: sealed blob truncated")

	// ErrHeaderLength is returned when a sealed-blob header carries a zero
	// or unaligned payload length.
	ErrHeaderLength = errors.New("uaes: sealed blob header carries an invalid length")
)

// Seal encrypts plaintext into a self-describing blob and appends it to
// dst, returning the extended slice. The payload is zero-padded to the next
// block boundary before encryption; the header records the padded length,
// so the blob carries everything Open needs besides the key.
func (e *Engine) Seal(dst, plaintext, key []byte, strength Strength) ([]byte, error) {
	if err := checkKey(key, strength); err != nil {
		return nil, err
	}
	if len(plaintext) == 0 {
		return nil, ErrEmptyMessage
	}
	if e.maxMessage > 0 && len(plaintext) > e.maxMessage {
		return nil, ErrMessageTooLarge
	}
	padded := PaddedLen(len(plaintext))
	if padded > 0xff {
		// The header length field is a single byte.
		return nil, ErrMessageTooLarge
	}

	ret, out := sliceForAppend(dst, headerSize+padded)
	out[0] = strength.tag()
	out[1] = byte(padded)

	payload := out[headerSize:]
	copy(payload, plaintext)
	clear(payload[len(plaintext):])

	var sched [maxScheduleWords]uint32
	expandKey(key, strength, &sched)
	nr := strength.rounds()
	ks := sched[:strength.scheduleWords()]
	for i := 0; i < padded; i += BlockSize {
		encryptBlock(ks, payload[i:i+BlockSize], nr, e.trace)
	}
	return ret, nil
}

// Open decrypts a blob produced by Seal and appends the payload to dst,
// returning the extended slice. The payload keeps its block alignment: the
// header records only the padded length, so trailing zero padding is
// returned as-is and stripping it is the caller's concern. The sealed blob
// itself is not modified. Trailing bytes beyond the described payload are
// ignored.
func (e *Engine) Open(dst, sealed, key []byte) ([]byte, error) {
	if len(sealed) < headerSize {
		return nil, ErrTruncatedSeal
	}
	strength, ok := strengthFromTag(sealed[0])
	if !ok {
		return nil, ErrInvalidStrength
	}
	n := int(sealed[1])
	if n == 0 || n%BlockSize != 0 {
		return nil, ErrHeaderLength
	}
	if len(sealed) < headerSize+n {
		return nil, ErrTruncatedSeal
	}
	if err := checkKey(key, strength); err != nil {
		return nil, err
	}

	ret, payload := sliceForAppend(dst, n)
	copy(payload, sealed[headerSize:headerSize+n])

	var sched [maxScheduleWords]uint32
	expandKey(key, strength, &sched)
	nr := strength.rounds()
	ks := sched[:strength.scheduleWords()]
	for i := 0; i < n; i += BlockSize {
		decryptBlock(ks, payload[i:i+BlockSize], nr, e.trace)
	}
	return ret, nil
}

// sliceForAppend extends the input slice to accommodate n more bytes.
// Returns the extended slice and the n-byte slice to write to.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
