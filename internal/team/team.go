package team

import (
	"fmt"
	"slices"
	"strings"

	f "github.com/ferrite-os/maintainers/pkg/functional"
)

// UnknownTeamError reports a reference to a team id that is not registered.
type UnknownTeamError struct {
	ID string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("unknown team: %s", e.ID)
}

// Person is a team member contact. Two persons are the same only when both
// name and email match exactly; the same human listed with two addresses is
// two distinct entries.
type Person struct {
	Name  string
	Email string
}

// Team is a named group of people responsible for a set of file-path scopes.
type Team struct {
	ID          string
	Name        string
	Description string
	Scope       []Scope

	members []Person
}

// Members returns the team's member list in registration order.
func (t *Team) Members() []Person {
	return slices.Clone(t.members)
}

func (t *Team) matchesAny(files []string) bool {
	for _, scope := range t.Scope {
		for _, file := range files {
			if scope.Matches(file) {
				return true
			}
		}
	}
	return false
}

// Builder assembles a Registry in two phases: teams first, then members.
// Errors are recorded and surfaced by Build so data tables stay clean.
type Builder struct {
	teams map[string]*Team
	err   error
}

func NewBuilder() *Builder {
	return &Builder{teams: make(map[string]*Team)}
}

// DefineTeam registers t under its ID with an empty member list. The display
// name defaults to the ID when empty.
func (b *Builder) DefineTeam(t Team) {
	if b.err != nil {
		return
	}
	if b.teams == nil {
		b.err = fmt.Errorf("builder already sealed by Build")
		return
	}
	if t.ID == "" {
		b.err = fmt.Errorf("team with empty id")
		return
	}
	if _, found := b.teams[t.ID]; found {
		b.err = fmt.Errorf("duplicate team id: %s", t.ID)
		return
	}
	if t.Name == "" {
		t.Name = t.ID
	}
	t.members = nil
	b.teams[t.ID] = &t
}

// DefineMember appends person to each named team's member list.
func (b *Builder) DefineMember(person Person, teamIDs ...string) {
	if b.err != nil {
		return
	}
	if b.teams == nil {
		b.err = fmt.Errorf("builder already sealed by Build")
		return
	}
	for _, id := range teamIDs {
		t, found := b.teams[id]
		if !found {
			b.err = &UnknownTeamError{ID: id}
			return
		}
		t.members = append(t.members, person)
	}
}

// Build returns the read-only registry, or the first error recorded while
// defining teams and members. The builder is sealed afterwards: further
// Define calls error instead of mutating the returned snapshot.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.teams == nil {
		return nil, fmt.Errorf("builder already sealed by Build")
	}
	teams := b.teams
	b.teams = nil
	ids := make([]string, 0, len(teams))
	for id := range teams {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return &Registry{teams: teams, ids: ids}, nil
}

// Registry is the process-wide team mapping, read-only once built.
type Registry struct {
	teams map[string]*Team
	ids   []string
}

// Find returns the team registered under id.
func (r *Registry) Find(id string) (*Team, error) {
	t, found := r.teams[id]
	if !found {
		return nil, &UnknownTeamError{ID: id}
	}
	return t, nil
}

// Teams returns every registered team, sorted by id.
func (r *Registry) Teams() []*Team {
	return f.Map(r.ids, func(id string) *Team { return r.teams[id] })
}

// MatchingFiles returns the teams with at least one scope entry matching at
// least one of the given files, sorted by id.
func (r *Registry) MatchingFiles(files []string) []*Team {
	return f.Filtered(r.Teams(), func(t *Team) bool {
		return t.matchesAny(files)
	})
}

// Resolve flattens the member lists of the given teams into a single roster:
// duplicates removed on exact (name, email) equality, sorted ascending by
// display name. Name ties keep their first-seen relative order.
func Resolve(teams ...*Team) []Person {
	members := make([]Person, 0)
	for _, t := range teams {
		members = append(members, t.members...)
	}
	members = f.RemoveDuplicates(members)
	slices.SortStableFunc(members, func(a, b Person) int {
		return strings.Compare(a.Name, b.Name)
	})
	return members
}
