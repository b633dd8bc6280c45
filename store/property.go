package store

import (
	"fmt"

	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/variable"
)

// GetProperty returns the value of the property called name in list. A missing
// property or one of another kind yields the default value of kind.
func (s *Store) GetProperty(list *proplist.List, name string, kind variable.Kind, strict bool) any {
	if !s.checkReady() {
		return variable.DefaultFor(kind)
	}
	if list == nil {
		s.warnIf(strict, fmt.Errorf("%w: nil list", ErrListNotResolved))
		return variable.DefaultFor(kind)
	}
	v := list.Find(name)
	if v == nil {
		s.warnIf(strict, fmt.Errorf("%w: %q in list %q", ErrPropertyNotFound, name, list.Name))
		return variable.DefaultFor(kind)
	}
	if v.Kind() != kind {
		s.warnIf(strict, fmt.Errorf("%w: %q in list %q is %s, not %s",
			variable.ErrTypeMismatch, name, list.Name, v.Kind(), kind))
		return variable.DefaultFor(kind)
	}
	return v.Get()
}

// HasProperty reports whether list holds a property called name.
func (s *Store) HasProperty(list *proplist.List, name string) bool {
	if !s.checkReady() {
		return false
	}
	return list.Has(name)
}

// SetProperty assigns value to an existing property. It never creates one.
func (s *Store) SetProperty(list *proplist.List, name string, value any, strict bool) bool {
	if !s.checkReady() {
		return false
	}
	if list == nil {
		s.warnIf(strict, fmt.Errorf("%w: nil list", ErrListNotResolved))
		return false
	}
	v := list.Find(name)
	if v == nil {
		s.warnIf(strict, fmt.Errorf("%w: %q in list %q", ErrPropertyNotFound, name, list.Name))
		return false
	}
	if err := v.Set(value); err != nil {
		s.warnIf(strict, fmt.Errorf("list %q: %w", list.Name, err))
		return false
	}
	return true
}

// AddProperty appends a new property whose kind is derived from value.
func (s *Store) AddProperty(list *proplist.List, name string, value any, strict bool) bool {
	if !s.checkReady() {
		return false
	}
	if list == nil {
		s.warnIf(strict, fmt.Errorf("%w: nil list", ErrListNotResolved))
		return false
	}
	if list.Has(name) {
		s.warnIf(strict, fmt.Errorf("%w: %q already exists in list %q", ErrDuplicateProperty, name, list.Name))
		return false
	}
	v, err := variable.FromValue(name, value)
	if err != nil {
		s.warnIf(strict, fmt.Errorf("list %q: add %q: %w", list.Name, name, err))
		return false
	}
	list.Append(v)
	return true
}

// RemoveProperty removes the first property called name. Removing from an
// empty list is a silent no-op.
func (s *Store) RemoveProperty(list *proplist.List, name string, strict bool) bool {
	if !s.checkReady() {
		return false
	}
	if list == nil {
		s.warnIf(strict, fmt.Errorf("%w: nil list", ErrListNotResolved))
		return false
	}
	if list.Len() == 0 {
		return false
	}
	if !list.Remove(name) {
		s.warnIf(strict, fmt.Errorf("%w: %q in list %q", ErrPropertyNotFound, name, list.Name))
		return false
	}
	return true
}

// ClearProperties empties list.
func (s *Store) ClearProperties(list *proplist.List) {
	if !s.checkReady() {
		return
	}
	list.Clear()
}
