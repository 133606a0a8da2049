package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nuew/base65536/errs"
	"github.com/nuew/base65536/format"
)

func TestNewFlag(t *testing.T) {
	f := NewFlag()

	require.True(t, f.IsValidMagicNumber())
	require.True(t, f.IsLittleEndian())
	require.False(t, f.HasChecksum())
	require.Equal(t, format.CompressionNone, f.GetCompression())
	require.NoError(t, f.Validate())
}

func TestFlag_Bits(t *testing.T) {
	f := NewFlag()

	f.SetChecksum(true)
	f.WithBigEndian()
	require.True(t, f.HasChecksum())
	require.True(t, f.IsBigEndian())
	require.Equal(t, uint16(MagicV1Opt|ChecksumMask|EndiannessMask), f.Options)
	require.Equal(t, uint16(MagicV1Opt), f.GetMagicNumber(), "flag bits must not leak into the magic number")

	f.SetChecksum(false)
	f.WithLittleEndian()
	require.Equal(t, uint16(MagicV1Opt), f.Options)
}

func TestFlag_Validate(t *testing.T) {
	tests := []struct {
		name string
		flag Flag
		want error
	}{
		{"valid", Flag{Options: MagicV1Opt, Compression: uint8(format.CompressionLZ4)}, nil},
		{"wrong magic", Flag{Options: 0xEB10, Compression: uint8(format.CompressionNone)}, errs.ErrInvalidHeaderFlags},
		{"reserved bit", Flag{Options: MagicV1Opt | 0x0004, Compression: uint8(format.CompressionNone)}, errs.ErrInvalidHeaderFlags},
		{"zero compression", Flag{Options: MagicV1Opt}, errs.ErrUnsupportedCompression},
		{"unknown compression", Flag{Options: MagicV1Opt, Compression: 0x7}, errs.ErrUnsupportedCompression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flag.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHeader_BytesLayout(t *testing.T) {
	h := Header{Flag: NewFlag(), DataSize: 0x01020304, Checksum: 0x1112131415161718}
	h.Flag.SetChecksum(true)
	h.Flag.SetCompression(format.CompressionS2)

	little := h.Bytes()
	require.Len(t, little, HeaderSize)
	require.Equal(t, []byte{
		0x51, 0xB6, 0x03, 0x00,
		0x04, 0x03, 0x02, 0x01,
		0x18, 0x17, 0x16, 0x15, 0x14, 0x13, 0x12, 0x11,
	}, little)

	h.Flag.WithBigEndian()
	big := h.Bytes()
	require.Equal(t, []byte{
		0x53, 0xB6, 0x03, 0x00,
		0x01, 0x02, 0x03, 0x04,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
	}, big, "options stay little-endian, the other fields flip")
}

func TestHeader_ParseRoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		want := Header{Flag: NewFlag(), DataSize: 123456, Checksum: 0xdeadbeefcafef00d}
		want.Flag.SetChecksum(true)
		want.Flag.SetCompression(format.CompressionZstd)
		if bigEndian {
			want.Flag.WithBigEndian()
		}

		var got Header
		require.NoError(t, got.Parse(want.Bytes()))
		require.Equal(t, want, got)
	}
}

func TestHeader_ParseErrors(t *testing.T) {
	valid := Header{Flag: NewFlag(), DataSize: 1}

	t.Run("short", func(t *testing.T) {
		var h Header
		require.ErrorIs(t, h.Parse(valid.Bytes()[:HeaderSize-1]), errs.ErrInvalidHeaderSize)
	})

	t.Run("long", func(t *testing.T) {
		var h Header
		require.ErrorIs(t, h.Parse(append(valid.Bytes(), 0)), errs.ErrInvalidHeaderSize)
	})

	t.Run("reserved byte", func(t *testing.T) {
		b := valid.Bytes()
		b[3] = 1
		var h Header
		require.ErrorIs(t, h.Parse(b), errs.ErrInvalidHeaderFlags)
	})

	t.Run("checksum without flag", func(t *testing.T) {
		b := valid.Bytes()
		b[8] = 1
		var h Header
		require.ErrorIs(t, h.Parse(b), errs.ErrInvalidHeaderFlags)
	})

	t.Run("bad magic", func(t *testing.T) {
		b := valid.Bytes()
		b[1] = 0x00
		var h Header
		require.ErrorIs(t, h.Parse(b), errs.ErrInvalidHeaderFlags)
	})
}
