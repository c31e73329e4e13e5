package metadata

import (
	"net/http"
	"sort"
	"strings"
)

const headerContentType = "Content-Type"

// FromHeader extracts the CloudEvents attributes from HTTP headers in binary content
// mode: every Ce- prefixed header is added with a lowercased key and the Content-Type
// header is added as ce-datacontenttype. Content-Type takes precedence over a
// Ce-Datacontenttype header, which is ignored when both are present. All other headers
// are ignored.
func FromHeader(header http.Header) *Metadata {
	keys := make([]string, 0, len(header))
	for key := range header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	m := New()
	contentType := header.Values(headerContentType)
	for _, value := range contentType {
		m.Set(KeyDataContentType, value)
	}

	for _, key := range keys {
		lower := strings.ToLower(key)
		switch {
		case lower == "content-type":
			continue
		case lower == KeyDataContentType && len(contentType) > 0:
			continue
		case strings.HasPrefix(lower, AttributePrefix):
			for _, value := range header[key] {
				m.Set(lower, value)
			}
		}
	}
	return m
}

// WriteHeader adds the CloudEvents attributes in the metadata to the HTTP headers for
// binary content mode. The ce-datacontenttype attribute is written as Content-Type,
// replacing any previous value; keys without the ce- prefix are not written.
func (m *Metadata) WriteHeader(header http.Header) {
	for _, key := range m.keys {
		lower := strings.ToLower(key)
		switch {
		case lower == KeyDataContentType:
			if vals := m.values[key]; len(vals) > 0 {
				header.Set(headerContentType, vals[0])
			}
		case strings.HasPrefix(lower, AttributePrefix):
			for _, value := range m.values[key] {
				header.Add(key, value)
			}
		}
	}
}
