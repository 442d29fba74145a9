package model

type ChordResponse struct {
	Chord      string   `json:"chord"`
	Root       string   `json:"root,omitempty"`
	Quality    string   `json:"quality,omitempty"`
	Classified bool     `json:"classified"`
	Intervals  []string `json:"intervals"`
	Notes      []string `json:"notes"`
}

type SignatureResponse struct {
	Intervals []string `json:"intervals"`
}

type NotesResponse struct {
	Notes []string `json:"notes"`
}

type NoteEventRequestBody struct {
	Key      int  `json:"key"`
	Velocity *int `json:"velocity,omitempty"`
}

type ClassifyRequestBody struct {
	Notes []string `json:"notes"`
}

type ShapeResponse struct {
	Quality   string   `json:"quality"`
	Intervals []string `json:"intervals"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
