package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	require.Equal(t, binary.BigEndian, Select(true))
	require.Equal(t, binary.LittleEndian, Select(false))
	require.True(t, IsBigEndian(Select(true)))
	require.False(t, IsBigEndian(Select(false)))
}

func TestEngines_FieldLayout(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want32 []byte
		want64 []byte
	}{
		{
			name:   "little",
			engine: GetLittleEndianEngine(),
			want32: []byte{0x04, 0x03, 0x02, 0x01},
			want64: []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
		},
		{
			name:   "big",
			engine: GetBigEndianEngine(),
			want32: []byte{0x01, 0x02, 0x03, 0x04},
			want64: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.engine.AppendUint32(nil, 0x01020304)
			require.Equal(t, tt.want32, buf)
			require.Equal(t, uint32(0x01020304), tt.engine.Uint32(buf))

			buf = tt.engine.AppendUint64(nil, 0x0102030405060708)
			require.Equal(t, tt.want64, buf)
			require.Equal(t, uint64(0x0102030405060708), tt.engine.Uint64(buf))
		})
	}
}
