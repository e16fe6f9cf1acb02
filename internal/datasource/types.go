package datasource

import "encoding/json"

// TimeRange carries the dashboard's fractional-seconds UTC timestamps.
type TimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Range   TimeRange `json:"range"`
	Targets []Target  `json:"targets"`
}

// Target is one requested series, serialized as
// "<account> - <query kind>" or a bare account name.
type Target struct {
	Target string `json:"target"`
}

// TimeSeries is one element of the /query response.
type TimeSeries struct {
	Target     string      `json:"target"`
	Datapoints []Datapoint `json:"datapoints"`
}

// Datapoint is a (value, epoch-ms) pair. The protocol represents it as
// a two-element JSON array, value first.
type Datapoint struct {
	Value       float64
	TimestampMs int64
}

func (d Datapoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{d.Value, float64(d.TimestampMs)})
}

func (d *Datapoint) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	d.Value = pair[0]
	d.TimestampMs = int64(pair[1])
	return nil
}

// AnnotationsRequest is the body of POST /annotations.
type AnnotationsRequest struct {
	Range TimeRange `json:"range"`
}

// Annotation is one element of the /annotations response.
type Annotation struct {
	Annotation string   `json:"annotation"`
	Time       int64    `json:"time"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags"`
	Text       string   `json:"text"`
}
