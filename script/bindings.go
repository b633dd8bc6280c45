package script

import (
	"github.com/d5/tengo/v2"

	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/variable"
)

func (rt *Runtime) bindings() *tengo.ImmutableMap {
	s := rt.store
	values := map[string]tengo.Object{}

	values["ready"] = &tengo.UserFunction{Name: "ready", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(s.IsReady()), nil
	}}

	values["has_list"] = &tengo.UserFunction{Name: "has_list", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		return boolObject(s.ResolveByName(objectAsString(args[0]), false) != nil), nil
	}}

	values["has_tile"] = &tengo.UserFunction{Name: "has_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		return boolObject(s.TileHasProperties(rt.tile(args[0]))), nil
	}}

	values["get"] = &tengo.UserFunction{Name: "get", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		strict := strictArg(args, 2)
		list := s.ResolveByTile(rt.tile(args[0]), strict)
		if list == nil {
			return tengo.UndefinedValue, nil
		}
		return rt.get(list, objectAsString(args[1]), strict)
	}}

	values["get_list"] = &tengo.UserFunction{Name: "get_list", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		strict := strictArg(args, 2)
		list := s.ResolveByName(objectAsString(args[0]), strict)
		if list == nil {
			return tengo.UndefinedValue, nil
		}
		return rt.get(list, objectAsString(args[1]), strict)
	}}

	values["set"] = &tengo.UserFunction{Name: "set", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		ok := s.SetTileProperty(rt.tile(args[0]), objectAsString(args[1]), objectToAny(args[2]), strictArg(args, 3))
		return boolObject(ok), nil
	}}

	values["set_list"] = &tengo.UserFunction{Name: "set_list", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		ok := s.SetListProperty(objectAsString(args[0]), objectAsString(args[1]), objectToAny(args[2]), strictArg(args, 3))
		return boolObject(ok), nil
	}}

	values["add_list"] = &tengo.UserFunction{Name: "add_list", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		ok := s.AddListProperty(objectAsString(args[0]), objectAsString(args[1]), objectToAny(args[2]), strictArg(args, 3))
		return boolObject(ok), nil
	}}

	values["remove_list"] = &tengo.UserFunction{Name: "remove_list", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		ok := s.RemoveListProperty(objectAsString(args[0]), objectAsString(args[1]), strictArg(args, 2))
		return boolObject(ok), nil
	}}

	values["add_tile"] = &tengo.UserFunction{Name: "add_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		ok := s.AddAffectedTile(rt.tile(args[0]), objectAsString(args[1]), strictArg(args, 2))
		return boolObject(ok), nil
	}}

	values["remove_tile"] = &tengo.UserFunction{Name: "remove_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		ok := s.RemoveAffectedTile(rt.tile(args[0]), objectAsString(args[1]), strictArg(args, 2))
		return boolObject(ok), nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

// get reads a property at its own kind, so scripts never need to name one.
func (rt *Runtime) get(list *proplist.List, name string, strict bool) (tengo.Object, error) {
	kind := variable.KindInvalid
	if v := list.Find(name); v != nil {
		kind = v.Kind()
	}
	value := rt.store.GetProperty(list, name, kind, strict)
	if value == nil {
		return tengo.UndefinedValue, nil
	}
	return toObject(value)
}
