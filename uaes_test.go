package uaes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBoundaryRejection drives every precondition class through the mode
// layer and checks that the right sentinel comes back and the buffer stays
// untouched.
func TestBoundaryRejection(t *testing.T) {
	key := mustDecodeHex("2b7e151628aed2a6abf7158809cf4f3c")
	iv := make([]byte, BlockSize)
	msg := make([]byte, 2*BlockSize)
	for i := range msg {
		msg[i] = byte(i)
	}

	cases := []struct {
		name string
		call func(buf []byte) error
		want error
	}{
		{"nil key ECB", func(buf []byte) error {
			return EncryptECB(buf, nil, AES128)
		}, ErrMissingKey},
		{"nil key CBC", func(buf []byte) error {
			return DecryptCBC(buf, nil, iv, AES128)
		}, ErrMissingKey},
		{"wrong key length", func(buf []byte) error {
			return EncryptECB(buf, key, AES256)
		}, ErrKeySize},
		{"invalid strength", func(buf []byte) error {
			return EncryptECB(buf, key, Strength(129))
		}, ErrInvalidStrength},
		{"zero strength", func(buf []byte) error {
			return DecryptECB(buf, key, 0)
		}, ErrInvalidStrength},
		{"nil buffer", func([]byte) error {
			return EncryptECB(nil, key, AES128)
		}, ErrEmptyMessage},
		{"oversized message", func([]byte) error {
			return EncryptECB(make([]byte, DefaultMaxMessageSize+BlockSize), key, AES128)
		}, ErrMessageTooLarge},
		{"missing IV", func(buf []byte) error {
			return EncryptCBC(buf, key, nil, AES128)
		}, ErrMissingIV},
		{"short IV", func(buf []byte) error {
			return EncryptCBC(buf, key, iv[:8], AES128)
		}, ErrIVSize},
		{"empty single block", func([]byte) error {
			return EncryptBlock128(nil, key)
		}, ErrEmptyMessage},
		{"oversized single block", func([]byte) error {
			return EncryptBlock128(make([]byte, BlockSize+1), key)
		}, ErrMessageTooLarge},
		{"single block wrong key", func(buf []byte) error {
			return DecryptBlock256(buf[:BlockSize], key)
		}, ErrKeySize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := append([]byte(nil), msg...)
			err := c.call(buf)
			require.ErrorIs(t, err, c.want)
			assert.Equal(t, msg, buf, "rejected call must not touch the buffer")
		})
	}
}

func TestStrengthParameters(t *testing.T) {
	cases := []struct {
		strength Strength
		keyLen   int
		words    int
		rounds   int
	}{
		{AES128, 16, 4, 10},
		{AES192, 24, 6, 12},
		{AES256, 32, 8, 14},
	}
	for _, c := range cases {
		assert.Equal(t, c.keyLen, c.strength.KeyLen())
		assert.Equal(t, c.words, c.strength.keyWords())
		assert.Equal(t, c.rounds, c.strength.rounds())
	}

	assert.Equal(t, "AES-192", AES192.String())
	assert.False(t, Strength(64).valid())
}

func TestPaddedLen(t *testing.T) {
	cases := map[int]int{0: 0, 1: 16, 15: 16, 16: 16, 17: 32, 48: 48, 49: 64}
	for n, want := range cases {
		assert.Equal(t, want, PaddedLen(n), "PaddedLen(%d)", n)
	}
}

// TestEngineMaxMessageSize checks that the ceiling is a tunable capacity:
// raised, it admits longer messages; zero removes it.
func TestEngineMaxMessageSize(t *testing.T) {
	key := mustDecodeHex("2b7e151628aed2a6abf7158809cf4f3c")
	long := make([]byte, 8*BlockSize)

	err := EncryptECB(long, key, AES128)
	require.ErrorIs(t, err, ErrMessageTooLarge, "default engine keeps the four-block ceiling")

	e := New(WithMaxMessageSize(len(long)))
	require.NoError(t, e.EncryptECB(long, key, AES128))
	require.NoError(t, e.DecryptECB(long, key, AES128))

	unlimited := New(WithMaxMessageSize(0))
	huge := make([]byte, 64*BlockSize)
	require.NoError(t, unlimited.EncryptCBC(huge, key, make([]byte, BlockSize), AES128))
}

// TestTraceObserver checks that an installed sink sees the forward round
// boundaries in order and that a rejected call emits nothing.
func TestTraceObserver(t *testing.T) {
	key := mustDecodeHex("2b7e151628aed2a6abf7158809cf4f3c")

	type event struct {
		round int
		step  string
	}
	var events []event
	e := New(WithTrace(func(round int, step string, state []byte) {
		assert.Len(t, state, BlockSize)
		events = append(events, event{round, step})
	}))

	block := make([]byte, BlockSize)
	require.NoError(t, e.EncryptBlock(block, key, AES128))

	// Nine full rounds of four boundaries each, then three for the final
	// round.
	require.Len(t, events, 9*4+3)
	assert.Equal(t, event{1, TraceRoundStart}, events[0])
	assert.Equal(t, event{1, TraceMixColumns}, events[3])
	assert.Equal(t, event{10, TraceRoundEnd}, events[len(events)-1])

	events = nil
	require.Error(t, e.EncryptBlock(block, nil, AES128))
	assert.Empty(t, events, "rejected call must not trace")
}

// TestConcurrentUse runs independent encryptions of the same plaintext on
// one engine across goroutines; every call owns its schedule and buffer, so
// all results must agree.
func TestConcurrentUse(t *testing.T) {
	key := mustDecodeHex("603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	iv := mustDecodeHex("000102030405060708090a0b0c0d0e0f")

	want := append([]byte(nil), sp80038aPlaintext...)
	require.NoError(t, EncryptCBC(want, key, iv, AES256))

	const workers = 8
	results := make(chan []byte, workers)
	for i := 0; i < workers; i++ {
		go func() {
			buf := append([]byte(nil), sp80038aPlaintext...)
			if err := EncryptCBC(buf, key, iv, AES256); err != nil {
				results <- nil
				return
			}
			results <- buf
		}()
	}
	for i := 0; i < workers; i++ {
		got := <-results
		require.NotNil(t, got)
		assert.Equal(t, want, got)
	}
}
