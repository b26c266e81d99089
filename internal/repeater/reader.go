package repeater

import (
	"encoding/csv"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// errors
var (
	ErrUnknownEncoding = errors.New("unknown input encoding")
	ErrMissingColumn   = errors.New("missing required column")
	ErrShortRow        = errors.New("row has fewer fields than the header")
)

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// Encodings returns the supported input encoding names.
func Encodings() []string {
	var out []string
	for k := range encodings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// NewDecoder wraps r so that it yields UTF-8 from the named encoding. A
// leading byte order mark always wins over the given encoding.
func NewDecoder(r io.Reader, name string) (io.Reader, error) {
	enc, ok := encodings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", name)
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// Read reads all records from the comma separated registry. The first row
// must be the header naming at least the RequiredColumns.
func Read(r io.Reader, enc string) ([]Record, error) {
	dr, err := NewDecoder(r, enc)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(dr)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header error")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	for _, col := range RequiredColumns {
		var found bool
		for _, h := range header {
			if h == col {
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Wrapf(ErrMissingColumn, "%q", col)
		}
	}

	var out []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read record error")
		}

		line, _ := cr.FieldPos(0)
		if len(row) < len(header) {
			return nil, errors.Wrapf(ErrShortRow, "line %d", line)
		}

		fields := make(map[string]string, len(header))
		for i, h := range header {
			fields[h] = row[i]
		}
		out = append(out, recordFromFields(line, fields))
	}

	return out, nil
}
