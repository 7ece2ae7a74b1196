package uaes

import "crypto/subtle"

// Mode layer: ECB and CBC over a caller-owned buffer, transformed in place
// block by block. Every precondition is checked before any cryptographic
// work, so a rejected call never leaves a partially transformed buffer.

// EncryptECB encrypts buf in place, each block independently. The message
// must be non-empty and within the engine's ceiling; an unaligned length is
// rounded up to the next block boundary within the buffer's capacity (the
// engine does not zero the padding region, the caller prepares it).
func (e *Engine) EncryptECB(buf, key []byte, strength Strength) error {
	msg, err := e.checkMessage(buf, key, strength)
	if err != nil {
		return err
	}

	var sched [maxScheduleWords]uint32
	expandKey(key, strength, &sched)
	nr := strength.rounds()
	ks := sched[:strength.scheduleWords()]

	for i := 0; i < len(msg); i += BlockSize {
		encryptBlock(ks, msg[i:i+BlockSize], nr, e.trace)
	}
	return nil
}

// DecryptECB decrypts buf in place, each block independently. Same contract
// as EncryptECB.
func (e *Engine) DecryptECB(buf, key []byte, strength Strength) error {
	msg, err := e.checkMessage(buf, key, strength)
	if err != nil {
		return err
	}

	var sched [maxScheduleWords]uint32
	expandKey(key, strength, &sched)
	nr := strength.rounds()
	ks := sched[:strength.scheduleWords()]

	for i := 0; i < len(msg); i += BlockSize {
		decryptBlock(ks, msg[i:i+BlockSize], nr, e.trace)
	}
	return nil
}

// EncryptCBC encrypts buf in place with cipher block chaining: block 0 is
// XORed with the IV before the forward transform, every later block with
// the ciphertext of its predecessor. The IV must be exactly one block and
// is never written. Chaining is inherently sequential; do not split one
// message across goroutines.
func (e *Engine) EncryptCBC(buf, key, iv []byte, strength Strength) error {
	msg, err := e.checkMessage(buf, key, strength)
	if err != nil {
		return err
	}
	if err := checkIV(iv); err != nil {
		return err
	}

	var sched [maxScheduleWords]uint32
	expandKey(key, strength, &sched)
	nr := strength.rounds()
	ks := sched[:strength.scheduleWords()]

	chain := iv
	for i := 0; i < len(msg); i += BlockSize {
		block := msg[i : i+BlockSize]
		subtle.XORBytes(block, block, chain)
		encryptBlock(ks, block, nr, e.trace)
		chain = block
	}
	return nil
}

// DecryptCBC decrypts buf in place. The buffer doubles as the chaining
// source, so each ciphertext block is snapshotted before it is transformed:
// the inverse transform overwrites it, and the following block needs the
// original bytes for its XOR.
func (e *Engine) DecryptCBC(buf, key, iv []byte, strength Strength) error {
	msg, err := e.checkMessage(buf, key, strength)
	if err != nil {
		return err
	}
	if err := checkIV(iv); err != nil {
		return err
	}

	var sched [maxScheduleWords]uint32
	expandKey(key, strength, &sched)
	nr := strength.rounds()
	ks := sched[:strength.scheduleWords()]

	var prev, cur [BlockSize]byte
	copy(prev[:], iv)
	for i := 0; i < len(msg); i += BlockSize {
		block := msg[i : i+BlockSize]
		copy(cur[:], block)
		decryptBlock(ks, block, nr, e.trace)
		subtle.XORBytes(block, block, prev[:])
		prev = cur
	}
	return nil
}

// EncryptBlock runs the key schedule and a single forward transform over
// one block. The buffer must hold between 1 and 16 bytes, rounded up to one
// block within its capacity.
func (e *Engine) EncryptBlock(block, key []byte, strength Strength) error {
	b, err := checkBlock(block, key, strength)
	if err != nil {
		return err
	}

	var sched [maxScheduleWords]uint32
	expandKey(key, strength, &sched)
	encryptBlock(sched[:strength.scheduleWords()], b, strength.rounds(), e.trace)
	return nil
}

// DecryptBlock is the inverse of EncryptBlock.
func (e *Engine) DecryptBlock(block, key []byte, strength Strength) error {
	b, err := checkBlock(block, key, strength)
	if err != nil {
		return err
	}

	var sched [maxScheduleWords]uint32
	expandKey(key, strength, &sched)
	decryptBlock(sched[:strength.scheduleWords()], b, strength.rounds(), e.trace)
	return nil
}

// checkMessage validates the mode-layer preconditions and returns the
// block-aligned view of buf.
func (e *Engine) checkMessage(buf, key []byte, strength Strength) ([]byte, error) {
	if err := checkKey(key, strength); err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, ErrEmptyMessage
	}
	if e.maxMessage > 0 && len(buf) > e.maxMessage {
		return nil, ErrMessageTooLarge
	}
	return alignBlocks(buf)
}

// checkBlock validates the single-block preconditions and returns the
// one-block view of block.
func checkBlock(block, key []byte, strength Strength) ([]byte, error) {
	if err := checkKey(key, strength); err != nil {
		return nil, err
	}
	if len(block) == 0 {
		return nil, ErrEmptyMessage
	}
	if len(block) > BlockSize {
		return nil, ErrMessageTooLarge
	}
	return alignBlocks(block)
}

func checkKey(key []byte, strength Strength) error {
	if !strength.valid() {
		return ErrInvalidStrength
	}
	if len(key) == 0 {
		return ErrMissingKey
	}
	if len(key) != strength.KeyLen() {
		return ErrKeySize
	}
	return nil
}

func checkIV(iv []byte) error {
	if len(iv) == 0 {
		return ErrMissingIV
	}
	if len(iv) != BlockSize {
		return ErrIVSize
	}
	return nil
}

// alignBlocks rounds the message view up to the next block boundary by
// reslicing within the buffer's capacity. The bytes between len(buf) and
// the boundary are whatever the caller left there; zero-filling the tail
// is the caller's job when preparing the buffer.
func alignBlocks(buf []byte) ([]byte, error) {
	n := PaddedLen(len(buf))
	if n > cap(buf) {
		return nil, ErrUnalignedMessage
	}
	return buf[:n], nil
}
