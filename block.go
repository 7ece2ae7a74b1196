package uaes

// Single-block round pipeline. The 16-byte state is a 4x4 byte matrix in
// column-major order (byte 4c+r holds column c, row r) and is transformed
// in place; neither direction allocates.

// encryptBlock runs the forward cipher over one block: the round-0
// whitening XOR, Nr-1 full rounds, and a final round that skips MixColumns.
// sched must hold 4*(nr+1) words.
func encryptBlock(sched []uint32, block []byte, nr int, trace TraceFunc) {
	addRoundKey(block, sched[0:4])
	for round := 1; round < nr; round++ {
		trace.emit(round, TraceRoundStart, block)
		subBytes(block)
		trace.emit(round, TraceSubBytes, block)
		shiftRows(block)
		trace.emit(round, TraceShiftRows, block)
		mixColumns(block)
		trace.emit(round, TraceMixColumns, block)
		addRoundKey(block, sched[4*round:4*round+4])
	}
	subBytes(block)
	trace.emit(nr, TraceSubBytes, block)
	shiftRows(block)
	trace.emit(nr, TraceShiftRows, block)
	addRoundKey(block, sched[4*nr:4*nr+4])
	trace.emit(nr, TraceRoundEnd, block)
}

// decryptBlock runs the inverse cipher, traversing the rounds from nr down
// to 0. The round key is XORed before InvMixColumns, the transpose of the
// forward pipeline's mix-then-XOR: MixColumns and AddRoundKey do not
// commute.
func decryptBlock(sched []uint32, block []byte, nr int, trace TraceFunc) {
	addRoundKey(block, sched[4*nr:4*nr+4])
	for round := nr - 1; round > 0; round-- {
		trace.emit(round, TraceRoundStart, block)
		invShiftRows(block)
		trace.emit(round, TraceInvShiftRows, block)
		invSubBytes(block)
		trace.emit(round, TraceInvSubBytes, block)
		addRoundKey(block, sched[4*round:4*round+4])
		trace.emit(round, TraceAddRoundKey, block)
		invMixColumns(block)
	}
	invShiftRows(block)
	trace.emit(0, TraceInvShiftRows, block)
	invSubBytes(block)
	trace.emit(0, TraceInvSubBytes, block)
	addRoundKey(block, sched[0:4])
	trace.emit(0, TraceRoundEnd, block)
}

// addRoundKey XORs four schedule words into the state, one word per column,
// most significant byte first.
func addRoundKey(state []byte, rk []uint32) {
	for c := 0; c < 4; c++ {
		w := rk[c]
		state[4*c+0] ^= byte(w >> 24)
		state[4*c+1] ^= byte(w >> 16)
		state[4*c+2] ^= byte(w >> 8)
		state[4*c+3] ^= byte(w)
	}
}

func subBytes(state []byte) {
	for i := range state {
		state[i] = sBox[state[i]]
	}
}

func invSubBytes(state []byte) {
	for i := range state {
		state[i] = invSBox[state[i]]
	}
}

// shiftRows rotates row r of the state left by r positions.
func shiftRows(state []byte) {
	t := state[1]
	state[1], state[5], state[9], state[13] = state[5], state[9], state[13], t

	state[2], state[10] = state[10], state[2]
	state[6], state[14] = state[14], state[6]

	t = state[15]
	state[15], state[11], state[7], state[3] = state[11], state[7], state[3], t
}

// invShiftRows rotates row r of the state right by r positions.
func invShiftRows(state []byte) {
	t := state[13]
	state[13], state[9], state[5], state[1] = state[9], state[5], state[1], t

	state[2], state[10] = state[10], state[2]
	state[6], state[14] = state[14], state[6]

	t = state[3]
	state[3], state[7], state[11], state[15] = state[7], state[11], state[15], t
}

// mixColumns multiplies each state column by the fixed MixColumns matrix
// over GF(2^8).
func mixColumns(state []byte) {
	for c := 0; c < 16; c += 4 {
		s0, s1, s2, s3 := state[c], state[c+1], state[c+2], state[c+3]
		state[c+0] = gfMul(2, s0) ^ gfMul(3, s1) ^ s2 ^ s3
		state[c+1] = s0 ^ gfMul(2, s1) ^ gfMul(3, s2) ^ s3
		state[c+2] = s0 ^ s1 ^ gfMul(2, s2) ^ gfMul(3, s3)
		state[c+3] = gfMul(3, s0) ^ s1 ^ s2 ^ gfMul(2, s3)
	}
}

// invMixColumns multiplies each state column by the inverse matrix.
func invMixColumns(state []byte) {
	for c := 0; c < 16; c += 4 {
		s0, s1, s2, s3 := state[c], state[c+1], state[c+2], state[c+3]
		state[c+0] = gfMul(14, s0) ^ gfMul(11, s1) ^ gfMul(13, s2) ^ gfMul(9, s3)
		state[c+1] = gfMul(9, s0) ^ gfMul(14, s1) ^ gfMul(11, s2) ^ gfMul(13, s3)
		state[c+2] = gfMul(13, s0) ^ gfMul(9, s1) ^ gfMul(14, s2) ^ gfMul(11, s3)
		state[c+3] = gfMul(11, s0) ^ gfMul(13, s1) ^ gfMul(9, s2) ^ gfMul(14, s3)
	}
}
