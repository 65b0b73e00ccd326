package keeper

// KeyInfo describes one stored key as returned by the key lookup operation.
type KeyInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	Unique bool   `json:"unique"`
}

// Enrolment acknowledges host enrolment.
type Enrolment struct {
	Accepted bool   `json:"accepted"`
	HostID   string `json:"host_id"`
}

// Pong is the liveness reply.
type Pong struct {
	Ok bool `json:"ok"`
}

// Job is one entry in the global job listing.
type Job struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// ReportAck acknowledges an ingested report record.
type ReportAck struct {
	Accepted bool  `json:"accepted"`
	Seq      int64 `json:"seq"`
}

// Event is one message received from the keeper event stream.
type Event struct {
	Channel string         `json:"channel"`
	Seq     int64          `json:"seq"`
	Payload map[string]any `json:"payload"`
}
