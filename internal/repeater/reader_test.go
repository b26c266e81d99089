package repeater

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const registryHeader = "district,type,status,mode,band,call,city,output,tx_shift,access,network,lat,lng\n"

func TestRead(t *testing.T) {
	t.Run("utf-8", func(t *testing.T) {
		assert := require.New(t)

		in := registryHeader +
			"3,Repeater,QRV,FM,2,SK3ØA,Uppland /X,145.600,-0.600,67.0,,60.1,17.5\n" +
			"7,Repeater,QRV,DMR,70,SK7AB,Lund,434.600,-2.000,CC: 1,BM 2402,55.7,13.2\n"

		records, err := Read(strings.NewReader(in), "utf-8")
		assert.NoError(err)
		assert.Equal([]Record{
			{
				Line:     2,
				District: "3",
				Type:     "Repeater",
				Status:   "QRV",
				Mode:     "FM",
				Band:     "2",
				Call:     "SK3ØA",
				City:     "Uppland /X",
				Output:   "145.600",
				TxShift:  "-0.600",
				Access:   "67.0",
				Lat:      "60.1",
				Lng:      "17.5",
			},
			{
				Line:     3,
				District: "7",
				Type:     "Repeater",
				Status:   "QRV",
				Mode:     "DMR",
				Band:     "70",
				Call:     "SK7AB",
				City:     "Lund",
				Output:   "434.600",
				TxShift:  "-2.000",
				Access:   "CC: 1",
				Network:  "BM 2402",
				Lat:      "55.7",
				Lng:      "13.2",
			},
		}, records)
	})

	t.Run("byte order mark", func(t *testing.T) {
		assert := require.New(t)

		in := "\xef\xbb\xbf" + registryHeader + "3,Repeater,QRV,FM,2,SK3A,Gävle,145.600,,,,,\n"
		records, err := Read(strings.NewReader(in), "latin1")
		assert.NoError(err)
		assert.Len(records, 1)
		assert.Equal("3", records[0].District)
		assert.Equal("Gävle", records[0].City)
	})

	t.Run("windows-1252", func(t *testing.T) {
		assert := require.New(t)

		in, err := charmap.Windows1252.NewEncoder().String(registryHeader + "6,Repeater,QRV,FM,2,SK6A,Borås,145.650,-0.600,,,,\n")
		assert.NoError(err)

		records, err := Read(bytes.NewBufferString(in), "windows-1252")
		assert.NoError(err)
		assert.Len(records, 1)
		assert.Equal("Borås", records[0].City)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		assert := require.New(t)
		_, err := Read(strings.NewReader(registryHeader), "ebcdic")
		assert.Equal(ErrUnknownEncoding, errors.Cause(err))
	})

	t.Run("missing column", func(t *testing.T) {
		assert := require.New(t)
		_, err := Read(strings.NewReader("district,type,status\n"), "utf-8")
		assert.Equal(ErrMissingColumn, errors.Cause(err))
	})

	t.Run("short row", func(t *testing.T) {
		assert := require.New(t)
		_, err := Read(strings.NewReader(registryHeader+"3,Repeater\n"), "utf-8")
		assert.Equal(ErrShortRow, errors.Cause(err))
		assert.Contains(err.Error(), "line 2")
	})
}
