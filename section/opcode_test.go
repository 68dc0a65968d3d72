package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpcode_Classification(t *testing.T) {
	tests := []struct {
		op         Opcode
		begin, end bool
		operand    bool
	}{
		{OpCoords, false, false, true},
		{OpPointBegin, true, false, false},
		{OpPointEnd, false, true, false},
		{OpMultiPointBegin, true, false, true},
		{OpMultiPointEnd, false, true, false},
		{OpLineStringBegin, true, false, true},
		{OpLineStringBegin.Tag(true), true, false, true},
		{OpLineStringEnd.Tag(true), false, true, false},
		{OpMultiLineStringBegin, true, false, true},
		{OpPolygonBegin, true, false, true},
		{OpPolygonEnd, false, true, false},
		{OpMultiPolygonBegin, true, false, true},
		{OpGeometryCollectionBegin, true, false, true},
		{OpGeometryCollectionEnd, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			require.True(t, tt.op.Valid())
			require.Equal(t, tt.begin, tt.op.IsBegin())
			require.Equal(t, tt.end, tt.op.IsEnd())
			require.Equal(t, tt.operand, tt.op.HasOperand())
		})
	}
}

func TestOpcode_Tagged(t *testing.T) {
	op := OpPolygonBegin.Tag(true)
	require.True(t, op.IsTagged())
	require.Equal(t, OpPolygonBegin, op.Base())
	require.Equal(t, "PolygonBegin(tagged)", op.String())

	require.Equal(t, OpPolygonBegin, OpPolygonBegin.Tag(false))
}

func TestOpcode_Invalid(t *testing.T) {
	invalid := []Opcode{
		0,
		OpGeometryCollectionEnd + 1,
		OpCoords.Tag(true),
		OpMultiPointBegin.Tag(true),
		TaggedBit,
	}

	for _, op := range invalid {
		require.False(t, op.Valid(), "opcode 0x%02x", uint8(op))
		require.Equal(t, "Unknown", op.String())
	}

	require.False(t, Opcode(0).IsBegin())
	require.False(t, Opcode(0).IsEnd())
}
