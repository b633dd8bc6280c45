package proplist

import (
	"fmt"
	"strings"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warn"
)

// Issue is one authoring problem found by Validate.
type Issue struct {
	List     string
	Property string
	Tile     string
	Code     string
	Message  string
	Severity Severity
}

func (i Issue) String() string {
	location := i.List
	if i.Property != "" {
		location = fmt.Sprintf("%s.%s", location, i.Property)
	}
	if i.Tile != "" {
		location = fmt.Sprintf("%s [%s]", location, i.Tile)
	}
	return fmt.Sprintf("%s: %s: %s (%s)", i.Severity, location, i.Message, i.Code)
}

// Validate reports authoring problems the runtime store tolerates but which
// usually mean an authoring mistake: duplicate names, unnamed entries, and
// tiles claimed by more than one list. Resolution of a shared tile always
// picks the first list in order, so the later claims never apply.
func Validate(lists []*List) []Issue {
	var issues []Issue

	listNames := map[string]string{}
	tileOwners := map[string]string{}

	for i, l := range lists {
		if l == nil {
			continue
		}
		name := strings.TrimSpace(l.Name)
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			issues = append(issues, Issue{
				List: name, Code: "unnamed_list", Severity: SeverityError,
				Message: "list has no name and cannot be resolved by name",
			})
		} else if prev, ok := listNames[strings.ToLower(name)]; ok {
			issues = append(issues, Issue{
				List: name, Code: "duplicate_list_name", Severity: SeverityWarn,
				Message: fmt.Sprintf("list name also used by %q; name lookups return the first", prev),
			})
		} else {
			listNames[strings.ToLower(name)] = name
		}

		seenProps := map[string]struct{}{}
		for j, v := range l.Properties {
			if v == nil {
				continue
			}
			if strings.TrimSpace(v.Name()) == "" {
				issues = append(issues, Issue{
					List: name, Property: fmt.Sprintf("#%d", j), Code: "unnamed_property", Severity: SeverityError,
					Message: "property has no name",
				})
				continue
			}
			if _, ok := seenProps[v.Name()]; ok {
				issues = append(issues, Issue{
					List: name, Property: v.Name(), Code: "duplicate_property", Severity: SeverityWarn,
					Message: "property name repeated; lookups return the first",
				})
				continue
			}
			seenProps[v.Name()] = struct{}{}
		}

		seenTiles := map[string]struct{}{}
		for _, t := range l.AffectedTiles {
			if t == nil {
				continue
			}
			tileName := t.TileName()
			if _, ok := seenTiles[tileName]; ok {
				issues = append(issues, Issue{
					List: name, Tile: tileName, Code: "duplicate_tile", Severity: SeverityWarn,
					Message: "tile listed more than once",
				})
				continue
			}
			seenTiles[tileName] = struct{}{}

			if owner, ok := tileOwners[tileName]; ok {
				issues = append(issues, Issue{
					List: name, Tile: tileName, Code: "shared_tile", Severity: SeverityWarn,
					Message: fmt.Sprintf("tile already claimed by %q; resolution returns that list", owner),
				})
				continue
			}
			tileOwners[tileName] = name
		}
	}

	return issues
}
