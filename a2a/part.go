package a2a

import "encoding/json"

// PartKind discriminates which of Part's three content slots is
// populated.
type PartKind string

const (
	PartKindText PartKind = "text"
	PartKindFile PartKind = "file"
	PartKindData PartKind = "data"
)

// FilePart carries a MIME-typed file, inline as base64 or by
// reference as a URI — exactly one of Bytes/URI is set.
type FilePart struct {
	MimeType string `json:"mimeType"`
	Bytes    string `json:"bytes,omitempty"`
	URI      string `json:"uri,omitempty"`
}

// IsInline reports whether the file is carried as inline base64.
func (f FilePart) IsInline() bool { return f.Bytes != "" }

// Part is a tagged variant over {Text, File, Data}; exactly one
// content slot is populated, reflected by Kind (spec §3 "Part").
type Part struct {
	Kind PartKind        `json:"kind"`
	Text string          `json:"text,omitempty"`
	File *FilePart       `json:"file,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Text builds a text-kind Part.
func Text(s string) Part {
	return Part{Kind: PartKindText, Text: s}
}

// FileInline builds a file-kind Part carrying inline base64 content.
func FileInline(mimeType, base64Data string) Part {
	return Part{Kind: PartKindFile, File: &FilePart{MimeType: mimeType, Bytes: base64Data}}
}

// FileURI builds a file-kind Part referencing content by URI.
func FileURI(mimeType, uri string) Part {
	return Part{Kind: PartKindFile, File: &FilePart{MimeType: mimeType, URI: uri}}
}

// Data builds a data-kind Part wrapping an arbitrary JSON-compatible
// value. v is marshaled immediately so later mutation of v by the
// caller never affects the Part (Ownership — spec §3).
func Data(v interface{}) (Part, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Part{}, err
	}
	return Part{Kind: PartKindData, Data: raw}, nil
}

// IsText, IsFile, IsData report which content slot is populated.
func (p Part) IsText() bool { return p.Kind == PartKindText }
func (p Part) IsFile() bool { return p.Kind == PartKindFile }
func (p Part) IsData() bool { return p.Kind == PartKindData }

// DataInto unmarshals a data-kind Part's payload into dst.
func (p Part) DataInto(dst interface{}) error {
	return json.Unmarshal(p.Data, dst)
}
