// Package repeater reads the SSA repeater registry and selects the records
// that can be converted into channels.
package repeater

// Column names of the repeater registry.
const (
	ColumnDistrict = "district"
	ColumnType     = "type"
	ColumnStatus   = "status"
	ColumnMode     = "mode"
	ColumnBand     = "band"
	ColumnCall     = "call"
	ColumnCity     = "city"
	ColumnOutput   = "output"
	ColumnTxShift  = "tx_shift"
	ColumnAccess   = "access"
	ColumnNetwork  = "network"
	ColumnLat      = "lat"
	ColumnLng      = "lng"
)

// RequiredColumns lists the columns that must be present in the registry
// header.
var RequiredColumns = []string{
	ColumnDistrict,
	ColumnType,
	ColumnStatus,
	ColumnMode,
	ColumnBand,
	ColumnCall,
	ColumnCity,
	ColumnOutput,
	ColumnTxShift,
	ColumnAccess,
	ColumnNetwork,
	ColumnLat,
	ColumnLng,
}

// Record holds a single repeater station from the registry.
type Record struct {
	// Line is the line number within the source (header is line 1).
	Line int

	District string
	Type     string
	Status   string
	Mode     string
	Band     string
	Call     string
	City     string
	Output   string
	TxShift  string
	Access   string
	Network  string
	Lat      string
	Lng      string
}

func recordFromFields(line int, fields map[string]string) Record {
	return Record{
		Line:     line,
		District: fields[ColumnDistrict],
		Type:     fields[ColumnType],
		Status:   fields[ColumnStatus],
		Mode:     fields[ColumnMode],
		Band:     fields[ColumnBand],
		Call:     fields[ColumnCall],
		City:     fields[ColumnCity],
		Output:   fields[ColumnOutput],
		TxShift:  fields[ColumnTxShift],
		Access:   fields[ColumnAccess],
		Network:  fields[ColumnNetwork],
		Lat:      fields[ColumnLat],
		Lng:      fields[ColumnLng],
	}
}
