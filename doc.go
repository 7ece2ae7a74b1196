/*
Package uaes is a from-scratch implementation of the AES (Rijndael) block
cipher for environments where no cipher library is available. It supports
the three standard key strengths (AES-128, AES-192, AES-256) and two modes
of operation (ECB and CBC), and transforms caller-owned buffers in place.

The package favors statelessness over speed: the key schedule is recomputed
on every call and no cipher state survives an invocation, so concurrent
calls on independent buffers are safe by construction. Substitution tables
are derived from the GF(2^8) field arithmetic at init rather than
transcribed.

Buffers and padding:

Messages are processed in fixed 16-byte blocks. A message whose length is
not a multiple of 16 is rounded up to the next block boundary within the
buffer's capacity; the engine never writes the padding region itself, so
the caller should allocate with PaddedLen and zero the tail:

	msg := make([]byte, uaes.PaddedLen(len(data)))
	copy(msg, data)

	key := []byte("0123456789abcdef") // 16 bytes for AES-128
	if err := uaes.EncryptECB(msg, key, uaes.AES128); err != nil {
		panic(err)
	}

CBC additionally takes a 16-byte initialization vector, which is read but
never written:

	iv := make([]byte, uaes.BlockSize)
	// Fill iv with random bytes...

	err := uaes.EncryptCBC(msg, key, iv, uaes.AES256)

Decryption mirrors encryption with the same key (and IV, for CBC):

	err = uaes.DecryptCBC(msg, key, iv, uaes.AES256)

Single blocks:

A caller needing exactly one block can skip mode selection with the
fixed-strength entry points EncryptBlock128/192/256 and their inverses,
which accept 1 to 16 bytes.

Self-describing blobs:

Seal and Open wrap a message in a two-byte header (strength tag and padded
length) followed by the ECB ciphertext, producing a blob that decrypts
knowing only the key:

	blob, err := uaes.Seal(nil, plaintext, key, uaes.AES128)
	...
	payload, err := uaes.Open(nil, blob, key)

Limits and configuration:

The package-level functions enforce a four-block (64-byte) message ceiling,
inherited from the fixed scratch buffers of the embedded targets this
design comes from. An Engine lifts or changes it, and can install a
diagnostic sink that observes the cipher state at round boundaries:

	e := uaes.New(uaes.WithMaxMessageSize(0)) // no ceiling
	err := e.EncryptCBC(msg, key, iv, uaes.AES256)

ECB reveals when two plaintext blocks are equal and CBC with a reused IV
reveals shared prefixes; neither mode authenticates. Use this package for
interoperability with existing uAES deployments, not for new protocol
design.
*/
package uaes
