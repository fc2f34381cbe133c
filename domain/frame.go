package domain

// Frame is one state broadcast of the poker server.
// A frame carrying an Error is a rejection, sent right before the server
// closes the connection (e.g. a participant id joining twice).
type Frame struct {
	Participants map[string]Participant `json:"participants"`
	Opened       bool                   `json:"opened"`
	Error        string                 `json:"error,omitempty"`
}
