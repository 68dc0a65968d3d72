package compress

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatgeom/format"
)

// coordinatePayload mimics a blob coordinate column: a slowly moving path.
func coordinatePayload(n int) []byte {
	buf := make([]byte, 0, n*16)
	for i := range n {
		x := 121.5 + float64(i)*0.0001
		y := 25.03 + math.Sin(float64(i)/50)*0.01
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(x))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(y))
	}

	return buf
}

func allCodecs() map[string]Codec {
	return map[string]Codec{
		"none": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"single byte": {0x42},
		"text":        []byte("POLYGON((0 0,5 0,5 5,0 5,0 0))"),
		"repetitive":  bytes.Repeat([]byte{1, 2, 3, 4}, 4096),
		"coordinates": coordinatePayload(2000),
	}

	for codecName, codec := range allCodecs() {
		for inputName, input := range inputs {
			t.Run(codecName+"/"+inputName, func(t *testing.T) {
				packed, err := codec.Compress(input)
				require.NoError(t, err)

				unpacked, err := codec.Decompress(packed)
				require.NoError(t, err)
				require.Equal(t, input, unpacked)
			})
		}
	}
}

func TestCodecs_Empty(t *testing.T) {
	for name, codec := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			packed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, packed)

			unpacked, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, unpacked)
		})
	}
}

func TestCodecs_CompressCoordinates(t *testing.T) {
	input := bytes.Repeat(coordinatePayload(100), 20)

	for _, name := range []string{"zstd", "s2", "lz4"} {
		t.Run(name, func(t *testing.T) {
			packed, err := allCodecs()[name].Compress(input)
			require.NoError(t, err)
			require.Less(t, Ratio(len(input), len(packed)), 0.5)
		})
	}
}

func TestCodecs_DecompressLimit(t *testing.T) {
	input := coordinatePayload(500)

	for name, codec := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			packed, err := codec.Compress(input)
			require.NoError(t, err)

			unpacked, err := codec.DecompressLimit(packed, len(input))
			require.NoError(t, err)
			require.Equal(t, input, unpacked)

			_, err = codec.DecompressLimit(packed, len(input)-1)
			require.ErrorIs(t, err, ErrOutputLimit)

			unpacked, err = codec.DecompressLimit(nil, 0)
			require.NoError(t, err)
			require.Empty(t, unpacked)
		})
	}
}

func TestCodecs_DecompressLimit_CapsDeclaredSize(t *testing.T) {
	// 1 MiB of zeros packs into a few bytes
	input := make([]byte, 1<<20)

	for _, name := range []string{"zstd", "s2", "lz4"} {
		t.Run(name, func(t *testing.T) {
			codec := allCodecs()[name]
			packed, err := codec.Compress(input)
			require.NoError(t, err)
			require.Less(t, len(packed), 8*1024)

			_, err = codec.DecompressLimit(packed, 4096)
			require.ErrorIs(t, err, ErrOutputLimit)
		})
	}
}

func TestCheckLimit(t *testing.T) {
	require.NoError(t, checkLimit(10, 10))
	require.ErrorIs(t, checkLimit(11, 10), ErrOutputLimit)
	require.ErrorIs(t, checkLimit(MaxDecodedSize+1, MaxDecodedSize+2), ErrOutputLimit)
}

func TestCodecs_CorruptInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22, 0x33}

	for _, name := range []string{"zstd", "s2"} {
		t.Run(name, func(t *testing.T) {
			_, err := allCodecs()[name].Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	input := []byte{1, 2, 3}
	out, err := NewNoOpCompressor().Compress(input)
	require.NoError(t, err)
	require.Same(t, &input[0], &out[0])
}

func TestGetCodec(t *testing.T) {
	tests := []struct {
		typ     format.CompressionType
		want    Codec
		wantErr bool
	}{
		{format.CompressionNone, NewNoOpCompressor(), false},
		{format.CompressionZstd, NewZstdCompressor(), false},
		{format.CompressionS2, NewS2Compressor(), false},
		{format.CompressionLZ4, NewLZ4Compressor(), false},
		{format.CompressionType(0), nil, true},
		{format.CompressionType(0xff), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			codec, err := GetCodec(tt.typ)
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "unsupported compression type")
				return
			}
			require.NoError(t, err)
			require.IsType(t, tt.want, codec)
		})
	}
}

func TestRatio(t *testing.T) {
	require.Zero(t, Ratio(0, 10))
	require.InDelta(t, 0.25, Ratio(400, 100), 1e-12)
}

func BenchmarkCodecs_Compress(b *testing.B) {
	input := coordinatePayload(4096)

	for name, codec := range allCodecs() {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Compress(input)
			}
		})
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	input := coordinatePayload(4096)

	for name, codec := range allCodecs() {
		packed, err := codec.Compress(input)
		require.NoError(b, err)

		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Decompress(packed)
			}
		})
	}
}
