package binid_test

import (
	"fmt"
	"testing"

	"bincatalog/pkg/binid"

	"github.com/stretchr/testify/require"
)

func TestNormalizeBin(t *testing.T) {
	require.Equal(t, "123456", binid.NormalizeBin(" 123-456 "))
	require.Equal(t, "", binid.NormalizeBin("abc"))
	require.Equal(t, "45678901", binid.NormalizeBin("4567 8901"))
}

func TestNormalizeBinExt(t *testing.T) {
	cases := []struct {
		name string
		bin  string
		ext  string
		out  string
		ok   bool
	}{
		{name: "6 digits pads to 3", bin: "123456", ext: "7", out: "007", ok: true},
		{name: "6 digits keeps 3", bin: "123456", ext: "789", out: "789", ok: true},
		{name: "6 digits rejects 4", bin: "123456", ext: "7890", ok: false},
		{name: "6 digits rejects empty", bin: "123456", ext: "", ok: false},
		{name: "6 digits rejects letters", bin: "123456", ext: "7a", ok: false},
		{name: "8 digits keeps first", bin: "12345678", ext: "93", out: "9", ok: true},
		{name: "8 digits rejects empty", bin: "12345678", ext: " ", ok: false},
		{name: "9 digits empty", bin: "123456789", ext: "", out: "", ok: true},
		{name: "9 digits rejects ext", bin: "123456789", ext: "1", ok: false},
		{name: "7 digits unsupported", bin: "1234567", ext: "1", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := binid.NormalizeBinExt(tc.bin, tc.ext)
			if !tc.ok {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

func TestComputeBinEfectivo(t *testing.T) {
	got, err := binid.ComputeBinEfectivo("123456", "789")
	require.NoError(t, err)
	require.Equal(t, "123456789", got)

	got, err = binid.ComputeBinEfectivo("12345678", "95")
	require.NoError(t, err)
	require.Equal(t, "123456789", got)

	got, err = binid.ComputeBinEfectivo("123456789", "")
	require.NoError(t, err)
	require.Equal(t, "123456789", got)

	_, err = binid.ComputeBinEfectivo("1234567", "12")
	require.ErrorIs(t, err, binid.ErrUnsupportedLength)

	_, err = binid.ComputeBinEfectivo("123456", "")
	require.Error(t, err)

	// a short raw extension is never padded by the derivation itself
	_, err = binid.ComputeBinEfectivo("123456", "7")
	require.ErrorIs(t, err, binid.ErrInvalidExt)
}

// Every normalized (bin, ext) pair of a supported length derives a 9-digit
// effective BIN equal to the concatenation truncated to 9.
func TestComputeBinEfectivo_Property(t *testing.T) {
	bins := []string{"400000", "555544", "12345678", "99999999", "123456789", "000000001"}
	exts := []string{"", "0", "7", "42", "999", "5123"}

	for _, bin := range bins {
		for _, raw := range exts {
			ext, err := binid.NormalizeBinExt(bin, raw)
			if err != nil {
				continue
			}

			t.Run(fmt.Sprintf("%s_%s", bin, raw), func(t *testing.T) {
				got, err := binid.ComputeBinEfectivo(bin, ext)
				require.NoError(t, err)
				require.Len(t, got, binid.EffectiveLength)
				require.True(t, binid.IsNumeric(got))

				want := bin + ext
				if len(want) > binid.EffectiveLength {
					want = want[:binid.EffectiveLength]
				}
				require.Equal(t, want, got)
			})
		}
	}
}
