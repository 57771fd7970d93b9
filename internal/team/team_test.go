package team

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	b := NewBuilder()
	b.DefineTeam(Team{ID: "a-team", Scope: []Scope{Exact("foo.txt")}})
	b.DefineTeam(Team{ID: "b-team", Name: "Team B", Scope: []Scope{Pattern(`^bar/`)}})
	b.DefineTeam(Team{ID: "empty"})
	b.DefineMember(Person{Name: "Bob", Email: "b@x"}, "a-team")
	b.DefineMember(Person{Name: "Ann", Email: "a@y"}, "a-team", "b-team")
	b.DefineMember(Person{Name: "Ann", Email: "a@y"}, "a-team")
	registry, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return registry
}

func TestBuilderNameDefaultsToID(t *testing.T) {
	registry := testRegistry(t)
	a, err := registry.Find("a-team")
	if err != nil {
		t.Fatalf("Find(a-team) error: %v", err)
	}
	if a.Name != "a-team" {
		t.Errorf("expected name to default to id, got %q", a.Name)
	}
	b, _ := registry.Find("b-team")
	if b.Name != "Team B" {
		t.Errorf("expected explicit name to survive, got %q", b.Name)
	}
}

func TestBuilderDuplicateID(t *testing.T) {
	b := NewBuilder()
	b.DefineTeam(Team{ID: "core"})
	b.DefineTeam(Team{ID: "core"})
	if _, err := b.Build(); err == nil {
		t.Error("expected duplicate team id to fail Build")
	}
}

func TestBuilderUnknownTeamMember(t *testing.T) {
	b := NewBuilder()
	b.DefineTeam(Team{ID: "core"})
	b.DefineMember(Person{Name: "Ann", Email: "a@y"}, "core", "nonexistent")
	_, err := b.Build()
	var unknownErr *UnknownTeamError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownTeamError, got %v", err)
	}
	if unknownErr.ID != "nonexistent" {
		t.Errorf("expected error to name the missing team, got %q", unknownErr.ID)
	}
}

func TestBuilderSealedAfterBuild(t *testing.T) {
	b := NewBuilder()
	b.DefineTeam(Team{ID: "core"})
	registry, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	b.DefineMember(Person{Name: "Ann", Email: "a@y"}, "core")
	b.DefineTeam(Team{ID: "late"})

	core, findErr := registry.Find("core")
	if findErr != nil {
		t.Fatalf("Find(core) error: %v", findErr)
	}
	if len(core.Members()) != 0 {
		t.Error("DefineMember after Build must not mutate the built registry")
	}
	if _, findErr := registry.Find("late"); findErr == nil {
		t.Error("DefineTeam after Build must not mutate the built registry")
	}
	if _, err := b.Build(); err == nil {
		t.Error("expected an error from a sealed builder")
	}
}

func TestFindUnknown(t *testing.T) {
	registry := testRegistry(t)
	_, err := registry.Find("no-such-team")
	var unknownErr *UnknownTeamError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownTeamError, got %v", err)
	}
}

func TestTeamsSortedByID(t *testing.T) {
	registry := testRegistry(t)
	ids := make([]string, 0)
	for _, team := range registry.Teams() {
		ids = append(ids, team.ID)
	}
	if !slices.IsSorted(ids) {
		t.Errorf("Teams() not sorted by id: %v", ids)
	}
	if len(ids) != 3 {
		t.Errorf("expected 3 teams, got %d", len(ids))
	}
}

func TestMatchingFiles(t *testing.T) {
	registry := testRegistry(t)

	tt := []struct {
		name     string
		files    []string
		expected []string
	}{
		{"literal and regex", []string{"foo.txt", "bar/baz.txt"}, []string{"a-team", "b-team"}},
		{"literal only", []string{"foo.txt"}, []string{"a-team"}},
		{"regex only", []string{"bar/deep/nested.go"}, []string{"b-team"}},
		{"no match", []string{"unrelated.go"}, []string{}},
		{"regex is not a prefix of other dirs", []string{"foobar/baz.txt"}, []string{}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			matched := registry.MatchingFiles(tc.files)
			ids := make([]string, 0)
			for _, team := range matched {
				ids = append(ids, team.ID)
			}
			if !reflect.DeepEqual(ids, tc.expected) {
				t.Errorf("MatchingFiles(%v) = %v, want %v", tc.files, ids, tc.expected)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	registry := testRegistry(t)
	a, _ := registry.Find("a-team")
	b, _ := registry.Find("b-team")

	expected := []Person{
		{Name: "Ann", Email: "a@y"},
		{Name: "Bob", Email: "b@x"},
	}

	resolved := Resolve(a, b)
	if !reflect.DeepEqual(resolved, expected) {
		t.Errorf("Resolve(a, b) = %v, want %v", resolved, expected)
	}

	// output set is insensitive to team order
	reversed := Resolve(b, a)
	if !reflect.DeepEqual(reversed, expected) {
		t.Errorf("Resolve(b, a) = %v, want %v", reversed, expected)
	}
}

func TestResolveKeepsDistinctEmails(t *testing.T) {
	b := NewBuilder()
	b.DefineTeam(Team{ID: "core"})
	b.DefineMember(Person{Name: "Ann", Email: "a@y"}, "core")
	b.DefineMember(Person{Name: "Ann", Email: "ann@work"}, "core")
	registry, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	core, _ := registry.Find("core")
	resolved := Resolve(core)
	// same name, different email: both stay
	if len(resolved) != 2 {
		t.Errorf("expected both address entries to survive, got %v", resolved)
	}
}

func TestResolveEmptyTeam(t *testing.T) {
	registry := testRegistry(t)
	empty, _ := registry.Find("empty")
	if resolved := Resolve(empty); len(resolved) != 0 {
		t.Errorf("expected no members, got %v", resolved)
	}
}

func TestMembersReturnsCopy(t *testing.T) {
	registry := testRegistry(t)
	a, _ := registry.Find("a-team")
	members := a.Members()
	if len(members) == 0 {
		t.Fatal("expected members")
	}
	members[0] = Person{Name: "Mallory", Email: "m@z"}
	if a.Members()[0].Name == "Mallory" {
		t.Error("Members() must not expose the registry's backing slice")
	}
}
