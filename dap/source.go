package dap

import "encoding/json"

// SourceIdentity is a Source's effective identity: either a filesystem path,
// or an adapter-issued reference handle the client must pass back verbatim
// to fetch content. The two wire keys (path, sourceReference) decode into
// this single field; a sourceReference of zero is treated as absent and
// falls back to path, matching the upstream protocol. When both are present
// on the wire, the reference wins.
type SourceIdentity interface{ isSourceIdentity() }

// SourceIdentityPath is a Source identified by filesystem path.
type SourceIdentityPath struct{ Path string }

// SourceIdentityReference is a Source identified by an adapter-issued
// reference handle (always greater than zero).
type SourceIdentityReference struct{ Reference uint32 }

func (SourceIdentityPath) isSourceIdentity()      {}
func (SourceIdentityReference) isSourceIdentity() {}

// Source identifies where code comes from.
type Source struct {
	Name             *string
	Reference        SourceIdentity
	PresentationHint *SourcePresentationHint
	Origin           *string
	Sources          []Source
	AdapterData      json.RawMessage
	Checksums        []Checksum
}

func decodeSource(obj object) (Source, error) {
	var src Source
	var err error
	if src.Name, err = getStringOptional(obj, "name"); err != nil {
		return Source{}, err
	}
	ref, err := getU32Optional(obj, "sourceReference")
	if err != nil {
		return Source{}, err
	}
	if ref != nil && *ref > 0 {
		src.Reference = SourceIdentityReference{Reference: *ref}
	} else if path, err := getStringOptional(obj, "path"); err != nil {
		return Source{}, err
	} else if path != nil {
		src.Reference = SourceIdentityPath{Path: *path}
	}
	if hint, ok := getOptional(obj, "presentationHint"); ok {
		var s string
		if err := json.Unmarshal(hint, &s); err != nil {
			return Source{}, NewError("presentationHint", MustBeString)
		}
		parsed, err := ParseSourcePresentationHint("presentationHint", s)
		if err != nil {
			return Source{}, err
		}
		src.PresentationHint = &parsed
	}
	if src.Origin, err = getStringOptional(obj, "origin"); err != nil {
		return Source{}, err
	}
	if src.Sources, err = getArrayOptional(obj, "sources", func(raw json.RawMessage) (Source, error) {
		nested, err := asObject("sources", raw)
		if err != nil {
			return Source{}, err
		}
		return decodeSource(nested)
	}); err != nil {
		return Source{}, err
	}
	if raw, ok := getOptional(obj, "adapterData"); ok {
		src.AdapterData = raw
	}
	if src.Checksums, err = getArrayOptional(obj, "checksums", func(raw json.RawMessage) (Checksum, error) {
		nested, err := asObject("checksums", raw)
		if err != nil {
			return Checksum{}, err
		}
		return decodeChecksum(nested)
	}); err != nil {
		return Source{}, err
	}
	return src, nil
}

func (s Source) encode() json.RawMessage {
	var path *string
	var ref *uint32
	switch id := s.Reference.(type) {
	case SourceIdentityPath:
		path = &id.Path
	case SourceIdentityReference:
		ref = &id.Reference
	}
	var hint *string
	if s.PresentationHint != nil {
		v := string(*s.PresentationHint)
		hint = &v
	}
	sources := make([]json.RawMessage, len(s.Sources))
	for i, nested := range s.Sources {
		sources[i] = nested.encode()
	}
	checksums := make([]json.RawMessage, len(s.Checksums))
	for i, c := range s.Checksums {
		checksums[i] = c.encode()
	}
	return finalizeObject(
		attrStringOptional("name", s.Name),
		attrStringOptional("path", path),
		attrU32Optional("sourceReference", ref),
		attrStringOptional("presentationHint", hint),
		attrStringOptional("origin", s.Origin),
		attrArrayOptional("sources", sources),
		attrRawOptional("adapterData", s.AdapterData),
		attrArrayOptional("checksums", checksums),
	)
}
