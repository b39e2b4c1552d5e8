package server

// Frame types exchanged with the thin client over /live.
const (
	// Client -> server.
	frameHello = "hello" // first frame: persisted localStorage entries
	frameEvent = "event" // user interaction on a [data-vid] element

	// Server -> client.
	frameRender     = "render"      // replace the app region's HTML
	frameStorageSet = "storage.set" // persist a key in localStorage
	frameStyleSet   = "style.set"   // set a document-level style variable
)

// clientFrame is a message from the thin client.
type clientFrame struct {
	Type    string            `json:"type"`
	Storage map[string]string `json:"storage,omitempty"`
	VID     string            `json:"vid,omitempty"`
	Event   string            `json:"event,omitempty"`
}

// serverFrame is a message to the thin client.
type serverFrame struct {
	Type  string `json:"type"`
	HTML  string `json:"html,omitempty"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	Name  string `json:"name,omitempty"`
}
