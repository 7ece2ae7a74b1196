package uaes

// Arithmetic over GF(2^8) modulo the AES irreducible polynomial
// x^8 + x^4 + x^3 + x + 1, and the substitution tables built on it.

// polyAES is the reduction term applied when multiplication by x overflows
// the byte.
const polyAES = 0x1b

// xtime multiplies a field element by x.
func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ polyAES
	}
	return b << 1
}

// gfMul multiplies two field elements by shift-and-add. The cipher only ever
// multiplies by the MixColumns coefficients {2, 3} and their inverse-matrix
// counterparts {9, 11, 13, 14}, but the general form is no larger than
// special-casing them.
func gfMul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

// gfInv returns the multiplicative inverse of a field element, with the
// AES convention that 0 maps to 0.
func gfInv(a byte) byte {
	if a == 0 {
		return 0
	}
	for b := 1; b < 256; b++ {
		if gfMul(a, byte(b)) == 1 {
			return byte(b)
		}
	}
	return 0 // unreachable: every nonzero element has an inverse
}

// The S-box is the field inverse followed by the fixed affine transform.
// Deriving both tables from the arithmetic at init keeps the pair a mutual
// bijection by construction instead of by transcription.
var (
	sBox    [256]byte
	invSBox [256]byte
)

func init() {
	for i := range sBox {
		sBox[i] = affine(gfInv(byte(i)))
	}
	for i := range sBox {
		invSBox[sBox[i]] = byte(i)
	}
}

// affine applies the S-box affine transform
// b ^ rotl(b,1) ^ rotl(b,2) ^ rotl(b,3) ^ rotl(b,4) ^ 0x63.
func affine(b byte) byte {
	return b ^ rotl(b, 1) ^ rotl(b, 2) ^ rotl(b, 3) ^ rotl(b, 4) ^ 0x63
}

func rotl(b byte, n uint) byte {
	return b<<n | b>>(8-n)
}
