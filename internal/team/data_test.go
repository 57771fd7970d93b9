package team

import (
	"strings"
	"testing"
)

func TestDefaultRegistryBuilds(t *testing.T) {
	registry, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if len(registry.Teams()) == 0 {
		t.Fatal("expected builtin teams")
	}
}

func TestDefaultRegistryHasMentors(t *testing.T) {
	registry, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	mentors, err := registry.Find("mentors")
	if err != nil {
		t.Fatalf("Find(mentors) error: %v", err)
	}
	if len(Resolve(mentors)) == 0 {
		t.Error("mentors team must have members for cc-mentors-header-cmd")
	}
}

func TestDefaultRegistryEmails(t *testing.T) {
	registry, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	for _, team := range registry.Teams() {
		for _, person := range team.Members() {
			if person.Name == "" || !strings.Contains(person.Email, "@") {
				t.Errorf("team %s has malformed member entry: %+v", team.ID, person)
			}
		}
	}
}

func TestDefaultRegistryScopes(t *testing.T) {
	registry, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	tt := []struct {
		file string
		team string
	}{
		{"pkgs/python/numpy.toml", "python"},
		{"pkgs/python-requests.toml", "python"},
		{"forge/import/pypi.go", "python"},
		{"pkgs/linux/config-6.12", "kernel"},
		{"po/fr.po", "localization"},
		{"doc/manual.adoc", "documentation"},
		{"forge/fetch/verify.go", "security"},
		{"pkgs/bootstrap.toml", "bootstrap"},
	}

	for _, tc := range tt {
		matched := registry.MatchingFiles([]string{tc.file})
		found := false
		for _, team := range matched {
			if team.ID == tc.team {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %s to fall under team %s, matched %d teams", tc.file, tc.team, len(matched))
		}
	}
}
