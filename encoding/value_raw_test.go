package encoding

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatgeom/endian"
)

func TestValueRawEncoder(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			enc := NewValueRawEncoder(engine)
			defer enc.Finish()

			enc.Write(1.5)
			enc.WriteSlice([]float64{-2, math.Inf(1), 0})
			enc.WriteSlice(nil)

			require.Equal(t, 4, enc.Len())
			require.Equal(t, 4*ValueSize, enc.Size())
			require.Len(t, enc.Bytes(), 4*ValueSize)

			dec := NewValueRawDecoder(engine)
			got := slices.Collect(dec.All(enc.Bytes(), enc.Len()))
			require.Equal(t, []float64{1.5, -2, math.Inf(1), 0}, got)
		})
	}
}

func TestValueRawEncoder_ByteOrder(t *testing.T) {
	le := NewValueRawEncoder(endian.GetLittleEndianEngine())
	defer le.Finish()
	be := NewValueRawEncoder(endian.GetBigEndianEngine())
	defer be.Finish()

	le.Write(1)
	be.Write(1)

	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, le.Bytes())
	require.Equal(t, []byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, be.Bytes())
}

func TestValueRawEncoder_Finish(t *testing.T) {
	enc := NewValueRawEncoder(endian.GetLittleEndianEngine())
	enc.Write(1)
	enc.Finish()
	enc.Finish()

	require.Zero(t, enc.Len())
	require.Panics(t, func() { enc.Write(2) })
	require.Panics(t, func() { enc.WriteSlice([]float64{2}) })
	require.Panics(t, func() { _ = enc.Bytes() })
	require.Panics(t, func() { _ = enc.Size() })
}

func TestValueRawDecoder(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	enc := NewValueRawEncoder(engine)
	defer enc.Finish()
	enc.WriteSlice([]float64{10, 20, 30})
	data := enc.Bytes()

	dec := NewValueRawDecoder(engine)

	t.Run("at", func(t *testing.T) {
		v, ok := dec.At(data, 2, 3)
		require.True(t, ok)
		require.Equal(t, 30.0, v)

		_, ok = dec.At(data, 3, 3)
		require.False(t, ok)
		_, ok = dec.At(data, -1, 3)
		require.False(t, ok)
		_, ok = dec.At(data[:20], 2, 3)
		require.False(t, ok)
	})

	t.Run("truncated data yields fewer", func(t *testing.T) {
		got := slices.Collect(dec.All(data[:20], 3))
		require.Equal(t, []float64{10, 20}, got)
	})

	t.Run("early stop", func(t *testing.T) {
		var got []float64
		for v := range dec.All(data, 3) {
			got = append(got, v)
			break
		}
		require.Equal(t, []float64{10}, got)
	})

	t.Run("append all", func(t *testing.T) {
		got := dec.AppendAll([]float64{1}, data, 2)
		require.Equal(t, []float64{1, 10, 20}, got)
	})
}
