package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mazerunner/controller"
	"github.com/katalvlaran/mazerunner/grid"
)

// Frame is one rendered grid in JSON form.
type Frame struct {
	Type      string   `json:"type"`
	Seq       int      `json:"seq"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	Cells     []string `json:"cells"`
	Highlight *[2]int  `json:"highlight,omitempty"`
	Mode      string   `json:"mode,omitempty"`
	Algorithm string   `json:"algorithm,omitempty"`
	Speed     int      `json:"speed,omitempty"`
	Steps     int      `json:"steps,omitempty"`
}

// Message is a notification in JSON form.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Frame and message type tags.
const (
	TypeFrame   = "frame"
	TypeMessage = "message"
)

// JSON emits every frame and message to a sink, one value per call.
type JSON struct {
	send   func(v interface{}) error
	status func() controller.Status
	seq    int
	err    error
}

// NewJSON writes newline-delimited JSON to w.
func NewJSON(w io.Writer) *JSON {
	enc := json.NewEncoder(w)
	return &JSON{send: enc.Encode}
}

// NewJSONFunc hands every value to send, e.g. a websocket WriteJSON.
func NewJSONFunc(send func(v interface{}) error) *JSON {
	return &JSON{send: send}
}

// SetStatus attaches a status source whose fields are copied into each frame.
func (j *JSON) SetStatus(fn func() controller.Status) { j.status = fn }

// Err returns the first error hit by Notify.
func (j *JSON) Err() error { return j.err }

// NewFrame builds the JSON form of g.
func NewFrame(g *grid.Grid, highlight *grid.Coord) Frame {
	f := Frame{
		Type:  TypeFrame,
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Cells: strings.Split(g.String(), "\n"),
	}
	if highlight != nil {
		f.Highlight = &[2]int{highlight.Row, highlight.Col}
	}
	return f
}

// Render emits one Frame.
func (j *JSON) Render(g *grid.Grid, highlight *grid.Coord) error {
	f := NewFrame(g, highlight)
	j.seq++
	f.Seq = j.seq
	if j.status != nil {
		st := j.status()
		f.Mode = st.Mode.String()
		f.Algorithm = st.Algorithm.String()
		f.Speed = st.Speed
		f.Steps = st.Steps
	}
	if err := j.send(f); err != nil {
		return errors.Wrapf(err, "emit frame %d", f.Seq)
	}
	return nil
}

// Notify emits one Message. Send failures are kept for Err.
func (j *JSON) Notify(message string) {
	if err := j.send(Message{Type: TypeMessage, Text: message}); err != nil && j.err == nil {
		j.err = errors.Wrap(err, "emit message")
	}
}
