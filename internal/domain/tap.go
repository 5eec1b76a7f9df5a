package domain

// Tap is a single badge event at a station gate.
// Timestamp is in milliseconds since the Unix epoch.
type Tap struct {
	CustomerID int64
	Station    string
	Timestamp  int64
}
