package usage

import (
	"bytes"
	"encoding/json"
)

// Entry is one export with the pages that use it.
type Entry struct {
	Name  string
	Pages []string
}

// Record maps export names to the pages referencing them.
// Names keep insertion order and pages keep scan order.
type Record struct {
	names []string
	pages map[string][]string
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{pages: make(map[string][]string)}
}

// Add registers an export with no usage yet.
// It returns false, leaving the record untouched, if name is already present.
func (r *Record) Add(name string) bool {
	if _, ok := r.pages[name]; ok {
		return false
	}
	r.names = append(r.names, name)
	r.pages[name] = []string{}
	return true
}

// AddUsage appends page to the usages of name, registering name if needed.
// A page already listed for name is ignored.
func (r *Record) AddUsage(name, page string) {
	r.Add(name)
	for _, p := range r.pages[name] {
		if p == page {
			return
		}
	}
	r.pages[name] = append(r.pages[name], page)
}

// Has reports whether name is a registered export.
func (r *Record) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Len returns the number of exports.
func (r *Record) Len() int {
	return len(r.names)
}

// Names returns the exports in insertion order.
func (r *Record) Names() []string {
	return append([]string(nil), r.names...)
}

// Pages returns the pages using name, in scan order.
func (r *Record) Pages(name string) []string {
	return append([]string{}, r.pages[name]...)
}

// Entries returns every export with its pages, in insertion order.
func (r *Record) Entries() []Entry {
	entries := make([]Entry, 0, len(r.names))
	for _, name := range r.names {
		entries = append(entries, Entry{Name: name, Pages: r.Pages(name)})
	}
	return entries
}

// Unused returns the exports no page references.
func (r *Record) Unused() []string {
	var unused []string
	for _, name := range r.names {
		if len(r.pages[name]) == 0 {
			unused = append(unused, name)
		}
	}
	return unused
}

// MarshalJSON encodes the record as an object whose keys keep insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.pages[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
