// Package cps implements the OpenGD77 CPS import file formats.
package cps

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rpt2ogd77/rpt2ogd77/internal/channel"
)

// Delimiter is the CPS field delimiter.
const Delimiter = ';'

// Channel columns.
const (
	ColChannelNumber = iota
	ColChannelName
	ColChannelType
	ColRxFrequency
	ColTxFrequency
	ColBandwidth
	ColColourCode
	ColTimeslot
	ColContact
	ColTGList
	ColDMRID
	ColTS1TATx
	ColTS2TATxID
	ColRXTone
	ColTXTone
	ColSquelch
	ColPower
	ColRxOnly
	ColZoneSkip
	ColAllSkip
	ColTOT
	ColVOX
	ColNoBeep
	ColNoEco
	ColAPRS
	ColLatitude
	ColLongitude
)

// ChannelHeader holds the Channels.csv column names.
var ChannelHeader = []string{
	"Channel Number",
	"Channel Name",
	"Channel Type",
	"Rx Frequency",
	"Tx Frequency",
	"Bandwidth (kHz)",
	"Colour Code",
	"Timeslot",
	"Contact",
	"TG List",
	"DMR ID",
	"TS1_TA_Tx",
	"TS2_TA_Tx ID",
	"RX Tone",
	"TX Tone",
	"Squelch",
	"Power",
	"Rx Only",
	"Zone Skip",
	"All Skip",
	"TOT",
	"VOX",
	"No Beep",
	"No Eco",
	"APRS",
	"Latitude",
	"Longitude",
}

// errors
var (
	ErrTooManyFields = errors.New("row has more fields than the channel format")
	ErrMissingColumn = errors.New("missing channel column")
	ErrInvalidField  = errors.New("field contains the delimiter or a line break")
)

// ChannelRow holds a single Channels.csv row, one field per ChannelHeader
// column.
type ChannelRow []string

// NewChannelRow returns an empty row.
func NewChannelRow() ChannelRow {
	return make(ChannelRow, len(ChannelHeader))
}

// Get returns the value of the given column.
func (r ChannelRow) Get(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Name returns the channel name.
func (r ChannelRow) Name() string {
	return r.Get(ColChannelName)
}

// Number returns the channel number.
func (r ChannelRow) Number() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(r.Get(ColChannelNumber)))
	if err != nil {
		return 0, errors.Wrap(err, "parse channel number error")
	}
	return n, nil
}

// FromChannel returns the row for the given channel.
func FromChannel(ch channel.Channel) ChannelRow {
	r := NewChannelRow()

	r[ColChannelNumber] = strconv.Itoa(ch.Number)
	r[ColChannelName] = ch.Name
	r[ColChannelType] = string(ch.Type())
	r[ColRxFrequency] = ch.RxFrequency.String()
	r[ColTxFrequency] = ch.TxFrequency.String()

	switch m := ch.Mode.(type) {
	case channel.Digital:
		if m.Access != nil {
			r[ColColourCode] = m.Access.ColourCode
			r[ColTimeslot] = strconv.Itoa(m.Access.Timeslot)
			r[ColTGList] = m.Access.TGList
			r[ColDMRID] = m.Access.DMRID
			r[ColTS1TATx] = m.Access.TS1TATx
			r[ColTS2TATxID] = m.Access.TS2TATx
		}
	case channel.Analogue:
		r[ColBandwidth] = m.Bandwidth
		r[ColRXTone] = m.RXTone
		r[ColTXTone] = m.TXTone
		r[ColSquelch] = m.Squelch
	}

	r[ColPower] = ch.Flags.Power
	r[ColRxOnly] = yesNo(ch.Flags.RxOnly)
	r[ColZoneSkip] = yesNo(ch.Flags.ZoneSkip)
	r[ColAllSkip] = yesNo(ch.Flags.AllSkip)
	r[ColTOT] = strconv.Itoa(ch.Flags.TOT)
	r[ColVOX] = onOff(ch.Flags.VOX)
	r[ColNoBeep] = yesNo(ch.Flags.NoBeep)
	r[ColNoEco] = yesNo(ch.Flags.NoEco)
	r[ColAPRS] = ch.Flags.APRS
	r[ColLatitude] = ch.Latitude
	r[ColLongitude] = ch.Longitude

	return r
}

// WriteChannels writes the header followed by the given rows. Fields are
// written as-is, joined by Delimiter; custom rows are passed through
// unchanged.
func WriteChannels(w io.Writer, rows []ChannelRow) error {
	if err := writeRecord(w, ChannelHeader); err != nil {
		return errors.Wrap(err, "write header error")
	}
	for _, r := range rows {
		if err := writeRecord(w, r); err != nil {
			return errors.Wrapf(err, "write channel %q error", r.Name())
		}
	}

	return nil
}

// ReadChannels reads a Channels.csv file including its header row. Columns
// are mapped by header name.
func ReadChannels(r io.Reader) ([]ChannelRow, error) {
	cr := newReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header error")
	}

	index := make([]int, len(ChannelHeader))
	for i, name := range ChannelHeader {
		index[i] = -1
		for j, h := range header {
			if strings.TrimSpace(h) == name {
				index[i] = j
				break
			}
		}
	}
	for _, col := range []int{ColChannelName, ColChannelType, ColRxFrequency} {
		if index[col] == -1 {
			return nil, errors.Wrapf(ErrMissingColumn, "%q", ChannelHeader[col])
		}
	}

	var out []ChannelRow
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read channel error")
		}

		row := NewChannelRow()
		for i, j := range index {
			if j != -1 && j < len(fields) {
				row[i] = fields[j]
			}
		}
		out = append(out, row)
	}

	return out, nil
}

// ReadExternal reads channel rows without header row, as maintained by hand
// for custom channels. Missing trailing fields are left empty.
func ReadExternal(r io.Reader) ([]ChannelRow, error) {
	cr := newReader(r)

	var out []ChannelRow
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read custom channel error")
		}
		line, _ := cr.FieldPos(0)

		for len(fields) > len(ChannelHeader) && fields[len(fields)-1] == "" {
			fields = fields[:len(fields)-1]
		}
		if len(fields) > len(ChannelHeader) {
			return nil, errors.Wrapf(ErrTooManyFields, "line %d", line)
		}

		row := NewChannelRow()
		copy(row, fields)
		out = append(out, row)
	}

	return out, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// writeRecord writes the fields joined by Delimiter and terminated by CRLF.
// Nothing is quoted, so a field must not contain the delimiter or a line
// break.
func writeRecord(w io.Writer, fields []string) error {
	for _, f := range fields {
		if strings.ContainsAny(f, string(Delimiter)+"\r\n") {
			return errors.Wrapf(ErrInvalidField, "%q", f)
		}
	}

	_, err := io.WriteString(w, strings.Join(fields, string(Delimiter))+"\r\n")
	return err
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
