package graph

// Direction is the traffic direction encoded as the prefix of a data-source
// name, e.g. "in" for "in-eth0".
type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

// Record is a single data source handed over by the monitoring host: one
// series (DS) inside one RRD file, named "<direction>-<interface>".
type Record struct {
	Name    string `json:"name"`
	RRDFile string `json:"rrdfile"`
	DS      string `json:"ds"`
}
