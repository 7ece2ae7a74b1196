package uaes

// Key expansion as defined by FIPS-197 §5.2: the raw key becomes Nb*(Nr+1)
// 32-bit round-key words, consumed four at a time per round.

// maxScheduleWords is the schedule length for AES-256, the largest strength;
// smaller strengths use a prefix of the same array.
const maxScheduleWords = 60

// expandKey fills sched with the round-key words for the given strength.
// The first Nk words are the key itself, big-endian; each later word i is
// sched[i-Nk] XOR a transform of sched[i-1]: RotWord+SubWord+Rcon when
// i mod Nk == 0, SubWord alone when Nk is 8 and i mod Nk == 4, the plain
// word otherwise. The round constant doubles in GF(2^8) starting at 1.
//
// The schedule is call-scoped: every operation recomputes it and never
// caches it, which keeps the engine stateless across calls. Key length and
// strength validity are checked upstream; this routine has no error path.
func expandKey(key []byte, s Strength, sched *[maxScheduleWords]uint32) {
	nk := s.keyWords()
	n := s.scheduleWords()

	for i := 0; i < nk; i++ {
		sched[i] = uint32(key[4*i])<<24 | uint32(key[4*i+1])<<16 |
			uint32(key[4*i+2])<<8 | uint32(key[4*i+3])
	}

	rcon := byte(1)
	for i := nk; i < n; i++ {
		w := sched[i-1]
		switch {
		case i%nk == 0:
			w = subWord(rotWord(w)) ^ uint32(rcon)<<24
			rcon = xtime(rcon)
		case nk == 8 && i%nk == 4:
			w = subWord(w)
		}
		sched[i] = sched[i-nk] ^ w
	}
}

// rotWord rotates the word's bytes left by one position.
func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

// subWord applies the S-box to each byte of the word.
func subWord(w uint32) uint32 {
	return uint32(sBox[w>>24])<<24 | uint32(sBox[w>>16&0xff])<<16 |
		uint32(sBox[w>>8&0xff])<<8 | uint32(sBox[w&0xff])
}
