package export

// Report is a column-oriented view of computed data, ready for any exporter
type Report struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}
