package base65536

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nuew/base65536/errs"
)

func TestWrapPolicy(t *testing.T) {
	tests := []struct {
		name    string
		policy  WrapPolicy
		enabled bool
		columns int
		eol     string
		str     string
		valid   bool
	}{
		{"no wrap", NoWrap, false, 0, "", "NoWrap", true},
		{"zero value", WrapPolicy{}, false, 0, "", "NoWrap", true},
		{"wrap at", WrapAt(76), true, 76, "\n", "WrapAt(76)", true},
		{"wrap at with", WrapAtWith(140, "\r\n"), true, 140, "\r\n", `WrapAtWith(140, "\r\n")`, true},
		{"zero columns", WrapAt(0), true, 0, "\n", "WrapAt(0)", false},
		{"negative columns", WrapAtWith(-1, " "), true, -1, " ", `WrapAtWith(-1, " ")`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.enabled, tt.policy.Enabled())
			require.Equal(t, tt.columns, tt.policy.Columns())
			require.Equal(t, tt.eol, tt.policy.EOL())
			require.Equal(t, tt.str, tt.policy.String())

			err := tt.policy.Validate()
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidWrapColumns)
			}
		})
	}
}

func TestWrapPolicy_Separators(t *testing.T) {
	require.Equal(t, 0, NoWrap.separators(100))
	require.Equal(t, 0, WrapAt(3).separators(0))
	require.Equal(t, 0, WrapAt(3).separators(3))
	require.Equal(t, 1, WrapAt(3).separators(4))
	require.Equal(t, 1, WrapAt(3).separators(6))
	require.Equal(t, 2, WrapAt(3).separators(7))
	require.Equal(t, 9, WrapAt(1).separators(10))
}

func TestNewEncoding(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		enc, err := NewEncoding()
		require.NoError(t, err)
		require.Equal(t, NoWrap, enc.Wrap())
		require.False(t, enc.IgnoresGarbage())
	})

	t.Run("options", func(t *testing.T) {
		enc, err := NewEncoding(WithWrap(WrapAtWith(2, "|")), WithIgnoreGarbage(true))
		require.NoError(t, err)
		require.Equal(t, WrapAtWith(2, "|"), enc.Wrap())
		require.True(t, enc.IgnoresGarbage())

		text := enc.EncodeToString([]byte(helloWorld))
		require.Equal(t, "\u9a68\ua36c|\u556f\U00012077|\ua372\u1564", text)

		got, err := enc.DecodeString(text)
		require.NoError(t, err)
		require.Equal(t, helloWorld, string(got))
	})

	t.Run("invalid wrap", func(t *testing.T) {
		enc, err := NewEncoding(WithWrap(WrapAt(0)))
		require.ErrorIs(t, err, errs.ErrInvalidWrapColumns)
		require.Nil(t, enc)
	})

	t.Run("last option wins", func(t *testing.T) {
		enc := MustNewEncoding(WithWrap(WrapAt(5)), WithWrap(NoWrap), WithIgnoreGarbage(true), WithIgnoreGarbage(false))
		require.Equal(t, NoWrap, enc.Wrap())
		require.False(t, enc.IgnoresGarbage())
	})
}

func TestEncodedLen(t *testing.T) {
	enc := MustNewEncoding(WithWrap(WrapAtWith(2, "\r\n")))

	for _, data := range [][]byte{nil, {1}, {1, 2}, []byte(helloWorld), everyByte()} {
		text := enc.AppendEncode(nil, data)
		require.LessOrEqual(t, len(text), enc.EncodedLen(len(data)))
	}

	require.Equal(t, 0, StdEncoding.EncodedLen(0))
	require.Equal(t, 4, StdEncoding.EncodedLen(1))
	require.Equal(t, 4, StdEncoding.EncodedLen(2))
	require.Equal(t, 8, StdEncoding.EncodedLen(3))
	require.Equal(t, 3*4+2*2, enc.EncodedLen(6))
}

func TestCodePointCount(t *testing.T) {
	for n, want := range []int{0, 1, 1, 2, 2, 3} {
		require.Equal(t, want, CodePointCount(n))
	}
}

func TestEncoding_AppendEncodeReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	out := StdEncoding.AppendEncode(buf, []byte{1, 2, 3})
	require.Equal(t, oneTwoThree, string(out))
	require.Equal(t, &buf[:1][0], &out[0], "AppendEncode must write into spare capacity")
}
