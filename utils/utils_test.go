package utils_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"
	"time"

	"oneclickticket/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormTimeIn(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)

	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2026-03-14T13:00:00Z", want: time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)},
		{in: "2026-03-14T13:00:00.5+02:00", want: time.Date(2026, 3, 14, 11, 0, 0, 5e8, time.UTC)},
		{in: "2026-03-14T13:00", want: time.Date(2026, 3, 14, 13, 0, 0, 0, loc)},
		{in: " 2026-03-14 13:00:30 ", want: time.Date(2026, 3, 14, 13, 0, 30, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := utils.ParseFormTimeIn(tt.in, loc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	for _, in := range []string{"", "tomorrow", "14/03/2026 13:00"} {
		_, err := utils.ParseFormTimeIn(in, loc)
		assert.Error(t, err, in)
	}
}

func TestCustomDate(t *testing.T) {
	d, err := utils.ParseDate("2022-12-09")
	require.NoError(t, err)
	assert.Equal(t, "2022-12-09", d.String())

	d, err = utils.ParseDate("2022-12-09T23:30")
	require.NoError(t, err)
	assert.Equal(t, "2022-12-09", d.String())

	_, err = utils.ParseDate("09/12/2022")
	assert.Error(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2022-12-09"`, string(raw))

	var zero utils.CustomDate
	raw, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(raw))

	var scanned utils.CustomDate
	require.NoError(t, scanned.Scan(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2020-01-01", scanned.String())
	require.NoError(t, scanned.Scan([]byte("2021-06-01")))
	assert.Equal(t, "2021-06-01", scanned.String())
	assert.Error(t, scanned.Scan(42))

	v, err := scanned.Value()
	require.NoError(t, err)
	assert.Equal(t, "2021-06-01", v)
}

func TestQRCodePNG(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{size: 200, want: 200},
		{size: 0, want: utils.DefaultQRSize},
		{size: 5000, want: utils.DefaultQRSize},
	}

	for _, tt := range tests {
		raw, err := utils.QRCodePNG("BKG-123", tt.size)
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, tt.want, img.Bounds().Dx())
	}
}
