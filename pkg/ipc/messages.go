// Package ipc implements a MessagePack request/response protocol so a
// long-running corrigo serve process can correct text for a client over
// stdin/stdout without the overhead of re-execing the spell/bigspell
// drivers per line. One request carries a whole chunk of text; the response
// carries every correction the bigram disambiguator found in it.
package ipc

// CorrectionRequest asks the server to correct a block of text.
type CorrectionRequest struct {
	ID    string `msgpack:"id"`
	Text  string `msgpack:"t"`
	Limit int    `msgpack:"l,omitempty"`
}

// Correction is one misspelling paired with its chosen replacement.
type Correction struct {
	Word       string `msgpack:"w"`
	Suggestion string `msgpack:"s"`
}

// CorrectionResponse answers a CorrectionRequest.
type CorrectionResponse struct {
	ID          string       `msgpack:"id"`
	Corrections []Correction `msgpack:"c"`
	Count       int          `msgpack:"n"`
	TimeTaken   int64        `msgpack:"t"`
}

// ErrorResponse reports that a request could not be processed.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// StatsRequest asks the server for its hot-cache counters.
type StatsRequest struct {
	ID string `msgpack:"id"`
}

// StatsResponse reports the server's hot-cache counters.
type StatsResponse struct {
	ID      string           `msgpack:"id"`
	Entries map[string]int64 `msgpack:"entries"`
}
