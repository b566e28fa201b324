package encoding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pack12/endian"
)

// === Packed12Encoder Tests ===

func TestPacked12Encoder_NewEncoder(t *testing.T) {
	encoder := NewPacked12Encoder()

	require.NotNil(t, encoder)
	require.Equal(t, 0, encoder.Len())
	require.Equal(t, 0, encoder.Size())
	require.Empty(t, encoder.Bytes())
}

func TestPacked12Encoder_Write_SinglePair(t *testing.T) {
	encoder := NewPacked12Encoder()
	defer encoder.Finish()

	encoder.Write(0x123)
	encoder.Write(0x456)

	require.Equal(t, 2, encoder.Len())
	require.Equal(t, GroupSize, encoder.Size())
	require.Equal(t, []byte{0x12, 0x34, 0x56}, encoder.Bytes())
}

func TestPacked12Encoder_Write_OddCount(t *testing.T) {
	encoder := NewPacked12Encoder()
	defer encoder.Finish()

	encoder.Write(0xABC)

	// One sample encodes as a 16-bit group with a zero low nibble.
	require.Equal(t, 1, encoder.Len())
	require.Equal(t, 2, encoder.Size())
	require.Equal(t, []byte{0xAB, 0xC0}, encoder.Bytes())
}

func TestPacked12Encoder_Write_TrailingGroupReplaced(t *testing.T) {
	encoder := NewPacked12Encoder()
	defer encoder.Finish()

	encoder.Write(0x123)
	encoder.Write(0x456)
	encoder.Write(0x789)
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78, 0x90}, encoder.Bytes())

	// The provisional 16-bit tail becomes a full 3-byte group.
	encoder.Write(0xABC)
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC}, encoder.Bytes())
	require.Equal(t, 4, encoder.Len())
}

func TestPacked12Encoder_Write_MasksTo12Bits(t *testing.T) {
	encoder := NewPacked12Encoder()
	defer encoder.Finish()

	encoder.Write(0xFFFF)
	encoder.Write(0x1000)

	require.Equal(t, []byte{0xFF, 0xF0, 0x00}, encoder.Bytes())
}

func TestPacked12Encoder_WriteSlice(t *testing.T) {
	encoder := NewPacked12Encoder()
	defer encoder.Finish()

	encoder.WriteSlice([]uint16{0x123, 0x456, 0x789})

	require.Equal(t, 3, encoder.Len())
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78, 0x90}, encoder.Bytes())
}

func TestPacked12Encoder_WriteSlice_Empty(t *testing.T) {
	encoder := NewPacked12Encoder()
	defer encoder.Finish()

	encoder.WriteSlice(nil)

	require.Equal(t, 0, encoder.Len())
	require.Equal(t, 0, encoder.Size())
}

func TestPacked12Encoder_Reset(t *testing.T) {
	encoder := NewPacked12Encoder()
	defer encoder.Finish()

	encoder.WriteSlice([]uint16{1, 2, 3})
	encoder.Reset()

	require.Equal(t, 0, encoder.Len())
	require.Equal(t, 0, encoder.Size())
	require.Empty(t, encoder.Bytes())

	encoder.Write(0x321)
	require.Equal(t, []byte{0x32, 0x10}, encoder.Bytes())
}

func TestPacked12Encoder_Finish_PanicsAfter(t *testing.T) {
	encoder := NewPacked12Encoder()
	encoder.Write(1)
	encoder.Finish()

	require.Panics(t, func() { encoder.Write(2) })
	require.Panics(t, func() { encoder.Bytes() })
	require.Panics(t, func() { encoder.Size() })
}

// === Packed12Decoder Tests ===

func TestPacked12Decoder_All_HandComputed(t *testing.T) {
	decoder := NewPacked12Decoder()

	// 0x12 0x34 0x56 splits into 0x123 (bits 12..23) and 0x456 (bits 0..11).
	var decoded []uint16
	for v := range decoder.All([]byte{0x12, 0x34, 0x56}) {
		decoded = append(decoded, v)
	}

	require.Equal(t, []uint16{0x123, 0x456}, decoded)
}

func TestPacked12Decoder_All_HostOrderIndependent(t *testing.T) {
	decoder := NewPacked12Decoder()

	// Group assembly is arithmetic, so the big-endian wire layout decodes to
	// the same values regardless of the host byte order.
	var decoded []uint16
	for v := range decoder.All([]byte{0x12, 0x34, 0x56}) {
		decoded = append(decoded, v)
	}

	require.Equal(t, []uint16{0x123, 0x456}, decoded,
		"decode must not vary with host order %v", endian.CheckEndianness())
}

func TestPacked12Decoder_All_TwoByteTail(t *testing.T) {
	decoder := NewPacked12Decoder()

	var decoded []uint16
	for v := range decoder.All([]byte{0x12, 0x34, 0x56, 0xAB, 0xC0}) {
		decoded = append(decoded, v)
	}

	require.Equal(t, []uint16{0x123, 0x456, 0xABC}, decoded)
}

func TestPacked12Decoder_All_OneByteTailDiscarded(t *testing.T) {
	decoder := NewPacked12Decoder()

	var decoded []uint16
	for v := range decoder.All([]byte{0x12, 0x34, 0x56, 0xFF}) {
		decoded = append(decoded, v)
	}

	require.Equal(t, []uint16{0x123, 0x456}, decoded)
}

func TestPacked12Decoder_All_Empty(t *testing.T) {
	decoder := NewPacked12Decoder()

	count := 0
	for range decoder.All(nil) {
		count++
	}

	require.Equal(t, 0, count)
}

func TestPacked12Decoder_All_EarlyStop(t *testing.T) {
	decoder := NewPacked12Decoder()

	var decoded []uint16
	for v := range decoder.All([]byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC}) {
		decoded = append(decoded, v)
		if len(decoded) == 3 {
			break
		}
	}

	require.Equal(t, []uint16{0x123, 0x456, 0x789}, decoded)
}

func TestPacked12Decoder_At(t *testing.T) {
	decoder := NewPacked12Decoder()
	data := []byte{0x12, 0x34, 0x56, 0xAB, 0xC0}

	tests := []struct {
		index int
		want  uint16
		ok    bool
	}{
		{0, 0x123, true},
		{1, 0x456, true},
		{2, 0xABC, true}, // trailing 16-bit group
		{3, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := decoder.At(data, tt.index)
		require.Equal(t, tt.ok, ok, "index %d", tt.index)
		require.Equal(t, tt.want, got, "index %d", tt.index)
	}
}

func TestCountSamples(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		want    int
	}{
		{"empty", 0, 0},
		{"one dangling byte", 1, 0},
		{"one tail group", 2, 1},
		{"one full group", 3, 2},
		{"group plus dangling byte", 4, 2},
		{"group plus tail", 5, 3},
		{"two full groups", 6, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CountSamples(make([]byte, tt.byteLen)))
		})
	}
}

// === Round-trip Tests ===

func TestPacked12_RoundTrip(t *testing.T) {
	decoder := NewPacked12Decoder()

	for _, n := range []int{0, 1, 2, 3, 31, 32, 33, 64, 70, 1001} {
		encoder := NewPacked12Encoder()

		values := make([]uint16, n)
		rng := rand.New(rand.NewSource(int64(n)))
		for i := range values {
			values[i] = uint16(rng.Intn(MaxSample + 1))
		}
		encoder.WriteSlice(values)

		decoded := make([]uint16, 0, n)
		for v := range decoder.All(encoder.Bytes()) {
			decoded = append(decoded, v)
		}

		require.Len(t, decoded, n)
		if n > 0 {
			require.Equal(t, values, decoded)
		}

		require.Equal(t, n, CountSamples(encoder.Bytes()))
		encoder.Finish()
	}
}

func TestPacked12_RoundTrip_At(t *testing.T) {
	encoder := NewPacked12Encoder()
	defer encoder.Finish()
	decoder := NewPacked12Decoder()

	values := []uint16{0, MaxSample, 1, 2048, 7, 0xABC, 0x123}
	encoder.WriteSlice(values)

	for i, want := range values {
		got, ok := decoder.At(encoder.Bytes(), i)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}
