// MIT License
//
// Copyright (c) 2023 Lack
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package palette

import (
	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"
)

// Event is the pointer event that triggered a palette action. X and Y are
// canvas coordinates.
type Event struct {
	X      int64  `json:"x"`
	Y      int64  `json:"y"`
	Source string `json:"source,omitempty"`
}

type ActionFunc func(event *Event) error

// Action holds the handlers bound to a palette button.
type Action struct {
	DragStart ActionFunc
	Click     ActionFunc
}

// Entry describes one palette button.
type Entry struct {
	Group     string  `json:"group" yaml:"group"`
	ClassName string  `json:"className,omitempty" yaml:"className,omitempty"`
	Title     string  `json:"title,omitempty" yaml:"title,omitempty"`
	Separator bool    `json:"separator,omitempty" yaml:"separator,omitempty"`
	Action    *Action `json:"-" yaml:"-"`
}

// EntrySet maps entry keys to entries, keeping insertion order. The order
// only decides how buttons are laid out.
type EntrySet struct {
	keys    []string
	entries map[string]*Entry
}

func NewEntrySet() *EntrySet {
	return &EntrySet{keys: []string{}, entries: map[string]*Entry{}}
}

// Set adds the entry under key. An existing entry is replaced in place.
func (s *EntrySet) Set(key string, entry *Entry) {
	if s.entries == nil {
		s.entries = map[string]*Entry{}
	}
	if _, ok := s.entries[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.entries[key] = entry
}

func (s *EntrySet) Get(key string) (*Entry, bool) {
	if s == nil {
		return nil, false
	}
	entry, ok := s.entries[key]
	return entry, ok
}

func (s *EntrySet) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (s *EntrySet) Delete(key string) bool {
	if !s.Has(key) {
		return false
	}

	delete(s.entries, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

func (s *EntrySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns the entry keys in insertion order.
func (s *EntrySet) Keys() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Range calls fn for every entry in order until fn returns false.
func (s *EntrySet) Range(fn func(key string, entry *Entry) bool) {
	if s == nil {
		return
	}
	for _, key := range s.keys {
		if !fn(key, s.entries[key]) {
			return
		}
	}
}

// Filter returns a copy holding only the entries whose key passes keep.
func (s *EntrySet) Filter(keep func(key string) bool) *EntrySet {
	out := NewEntrySet()
	s.Range(func(key string, entry *Entry) bool {
		if keep(key) {
			out.Set(key, copyEntry(entry))
		}
		return true
	})
	return out
}

// Clone returns a copy of the set. Entries are copied, action handlers are
// shared.
func (s *EntrySet) Clone() *EntrySet {
	return s.Filter(func(string) bool { return true })
}

func copyEntry(entry *Entry) *Entry {
	if entry == nil {
		return nil
	}
	out := *entry
	if entry.Action != nil {
		action := *entry.Action
		out.Action = &action
	}
	return &out
}

func (s *EntrySet) MarshalJSON() ([]byte, error) {
	cfg := json.ConfigCompatibleWithStandardLibrary
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)

	stream.WriteObjectStart()
	first := true
	s.Range(func(key string, entry *Entry) bool {
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteObjectField(key)
		stream.WriteVal(entry)
		return true
	})
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func (s *EntrySet) MarshalYAML() (interface{}, error) {
	out := yaml.MapSlice{}
	s.Range(func(key string, entry *Entry) bool {
		out = append(out, yaml.MapItem{Key: key, Value: entry})
		return true
	})
	return out, nil
}
