// Package session holds the typed per-visitor state carried between requests.
package session

import "builder_estimates/internal/domain/cart"

// Data is the serialised form of a session.
type Data struct {
	Cart cart.Lines `json:"cart,omitempty"`
}

// Session is the mutable state of one visitor for the duration of a request. The
// HTTP layer loads it before the handler runs and saves it afterwards when
// Modified reports true.
type Session struct {
	id       string
	data     Data
	isNew    bool
	modified bool
}

// New starts an empty session that has never been persisted.
func New(id string) *Session {
	return &Session{id: id, isNew: true}
}

// Restore wraps data loaded from a session store.
func Restore(id string, data Data) *Session {
	return &Session{id: id, data: data}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) IsNew() bool {
	return s.isNew
}

func (s *Session) Modified() bool {
	return s.modified
}

func (s *Session) Data() Data {
	return s.data
}

func (s *Session) MarkModified() {
	s.modified = true
}

// Cart returns the visitor's cart, creating an empty one on first access.
func (s *Session) Cart() *cart.Cart {
	return cart.New(s)
}

func (s *Session) CartLines() (cart.Lines, bool) {
	return s.data.Cart, s.data.Cart != nil
}

func (s *Session) SetCartLines(lines cart.Lines) {
	s.data.Cart = lines
}

func (s *Session) DeleteCartLines() {
	s.data.Cart = nil
}
