package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"

	"github.com/ferrite-os/maintainers/internal/team"
	f "github.com/ferrite-os/maintainers/pkg/functional"
)

const fallbackWidth = 80

// formatMember renders a member as `email <name>`. Names containing a comma
// are quoted so the line stays parseable as an address list.
func formatMember(p team.Person) string {
	name := p.Name
	if strings.Contains(name, ",") {
		name = `"` + name + `"`
	}
	return fmt.Sprintf("%s <%s>", p.Email, name)
}

// emails returns the deduplicated addresses of the resolved members, keeping
// the resolver's name-sorted order.
func emails(persons []team.Person) []string {
	return f.RemoveDuplicates(f.Map(persons, func(p team.Person) string { return p.Email }))
}

// writeCCFlag emits a `git send-email` header-injection flag for the given
// members, or nothing when there are none.
func writeCCFlag(w io.Writer, persons []team.Person) error {
	addresses := emails(persons)
	if len(addresses) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "--add-header=X-Debbugs-Cc: %s\n", strings.Join(addresses, ", "))
	return err
}

// writeCCHeader emits a raw X-Debbugs-Cc header line, or nothing when there
// are no members.
func writeCCHeader(w io.Writer, persons []team.Person) error {
	addresses := emails(persons)
	if len(addresses) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "X-Debbugs-Cc: %s\n", strings.Join(addresses, ", "))
	return err
}

func terminalWidth() uint {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return uint(width)
}

// wrapIndent word-wraps text to width and prefixes each line with indent.
func wrapIndent(text string, width uint, indent string) string {
	if width > uint(len(indent)) {
		width -= uint(len(indent))
	}
	lines := strings.Split(wordwrap.WrapString(text, width), "\n")
	return indent + strings.Join(lines, "\n"+indent)
}

func writeTeam(w io.Writer, t *team.Team, width uint) {
	_, _ = fmt.Fprintf(w, "id: %s\n", t.ID)
	_, _ = fmt.Fprintf(w, "name: %s\n", t.Name)
	if t.Description != "" {
		_, _ = fmt.Fprintln(w, "description:")
		_, _ = fmt.Fprintln(w, wrapIndent(t.Description, width, "  "))
	}
	if len(t.Scope) > 0 {
		_, _ = fmt.Fprintln(w, "scope:")
		for _, scope := range t.Scope {
			_, _ = fmt.Fprintf(w, "  %s\n", scope)
		}
	}
	members := team.Resolve(t)
	if len(members) > 0 {
		_, _ = fmt.Fprintln(w, "members:")
		for _, person := range members {
			_, _ = fmt.Fprintf(w, "  %s\n", formatMember(person))
		}
	}
}
