package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/boyter/gocodewalker"
	"github.com/urfave/cli/v2"

	"github.com/ferrite-os/maintainers/internal/config"
	"github.com/ferrite-os/maintainers/internal/git"
	"github.com/ferrite-os/maintainers/internal/manifest"
	"github.com/ferrite-os/maintainers/internal/team"
)

func main() {
	registry, err := team.Default()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	app := newApp(registry)
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(registry *team.Registry) *cli.App {
	var dir string
	dirFlag := &cli.StringFlag{
		Name:        "dir",
		Aliases:     []string{"C"},
		Value:       ".",
		Usage:       "Path to local Git repo",
		Destination: &dir,
	}

	return &cli.App{
		Name:    "maintainers",
		Usage:   "Map changed files to the teams that maintain them",
		Version: "v0.2.0",
		Commands: []*cli.Command{
			{
				Name:      "cc",
				Usage:     "Print a git send-email flag CCing the members of the named teams",
				UsageText: "maintainers cc <team> [team]...",
				Action: func(cCtx *cli.Context) error {
					names := cCtx.Args().Slice()
					if len(names) == 0 {
						return fmt.Errorf("at least one team name is required")
					}
					teams, err := findTeams(registry, names)
					if err != nil {
						return err
					}
					return writeCCFlag(cCtx.App.Writer, team.Resolve(teams...))
				},
			},
			{
				Name:      "cc-members",
				Usage:     "CC the teams whose scope matches the files a patch or revision range touches",
				UsageText: "maintainers cc-members [options] <patch-file> | <rev-start> <rev-end>",
				Flags:     []cli.Flag{dirFlag},
				Action: func(cCtx *cli.Context) error {
					files, err := changedFilesFromArgs(cCtx, dir)
					if err != nil {
						return err
					}
					return writeCCFlag(cCtx.App.Writer, matchedMembers(registry, files))
				},
			},
			{
				Name:      "cc-members-header-cmd",
				Usage:     "Print an X-Debbugs-Cc header for the teams a patch touches",
				UsageText: "maintainers cc-members-header-cmd [options] <patch-file>",
				Flags:     []cli.Flag{dirFlag},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return fmt.Errorf("a patch file is required")
					}
					files, err := changedFilesFromArgs(cCtx, dir)
					if err != nil {
						return err
					}
					return writeCCHeader(cCtx.App.Writer, matchedMembers(registry, files))
				},
			},
			{
				Name:      "cc-mentors-header-cmd",
				Usage:     "Print an X-Debbugs-Cc header for the mentors team",
				UsageText: "maintainers cc-mentors-header-cmd <patch-file>",
				Action: func(cCtx *cli.Context) error {
					// The patch argument is accepted for hook compatibility
					// but plays no part in the output.
					mentors, err := registry.Find("mentors")
					if err != nil {
						return err
					}
					return writeCCHeader(cCtx.App.Writer, team.Resolve(mentors))
				},
			},
			{
				Name:      "get-maintainer",
				Usage:     "List the members of every team a patch touches",
				UsageText: "maintainers get-maintainer [options] <patch-file>",
				Flags:     []cli.Flag{dirFlag},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return fmt.Errorf("a patch file is required")
					}
					files, err := changedFilesFromArgs(cCtx, dir)
					if err != nil {
						return err
					}
					for _, t := range registry.MatchingFiles(files) {
						for _, person := range team.Resolve(t) {
							_, _ = fmt.Fprintf(cCtx.App.Writer, "%s (%s)\n", formatMember(person), t.ID)
						}
					}
					return nil
				},
			},
			{
				Name:      "list-teams",
				Usage:     "Describe every team: id, name, description, scope and members",
				UsageText: "maintainers list-teams",
				Action: func(cCtx *cli.Context) error {
					width := terminalWidth()
					for i, t := range registry.Teams() {
						if i > 0 {
							_, _ = fmt.Fprintln(cCtx.App.Writer)
						}
						writeTeam(cCtx.App.Writer, t, width)
					}
					return nil
				},
			},
			{
				Name:      "list-members",
				Usage:     "List the members of the named teams, one per line",
				UsageText: "maintainers list-members <team> [team]...",
				Action: func(cCtx *cli.Context) error {
					names := cCtx.Args().Slice()
					if len(names) == 0 {
						return fmt.Errorf("at least one team name is required")
					}
					teams, err := findTeams(registry, names)
					if err != nil {
						return err
					}
					for _, person := range team.Resolve(teams...) {
						_, _ = fmt.Fprintln(cCtx.App.Writer, formatMember(person))
					}
					return nil
				},
			},
			{
				Name:      "unassigned",
				Usage:     "List repository files no team scope covers",
				UsageText: "maintainers unassigned [options] [target-dir]",
				Flags:     []cli.Flag{dirFlag},
				Action: func(cCtx *cli.Context) error {
					target := ""
					if cCtx.NArg() > 0 {
						target = cCtx.Args().First()
					}
					return unassignedFiles(cCtx.App.Writer, registry, dir, target)
				},
			},
			{
				Name:      "security-manifest",
				Usage:     "Compute the upgrade manifest for the security-sensitive modules",
				UsageText: "maintainers security-manifest [options]",
				Flags: []cli.Flag{
					dirFlag,
					&cli.BoolFlag{
						Name:  "write-gomod",
						Usage: "Print a go.mod with require directives rewritten to the target versions",
					},
				},
				Action: func(cCtx *cli.Context) error {
					conf := readConfig(cCtx, dir)
					if cCtx.Bool("write-gomod") {
						data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
						if err != nil {
							return err
						}
						upgraded, err := manifest.UpgradedModFile(data, conf.Security)
						if err != nil {
							return err
						}
						_, err = cCtx.App.Writer.Write(upgraded)
						return err
					}
					m, err := manifest.Build(dir, conf.Security)
					if err != nil {
						return err
					}
					return m.WriteTOML(cCtx.App.Writer)
				},
			},
		},
	}
}

func findTeams(registry *team.Registry, names []string) ([]*team.Team, error) {
	teams := make([]*team.Team, 0, len(names))
	for _, name := range names {
		t, err := registry.Find(name)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, nil
}

func readConfig(cCtx *cli.Context, dir string) *config.Config {
	conf, err := config.Read(dir)
	if err != nil {
		_, _ = fmt.Fprintf(cCtx.App.ErrWriter, "Warning: error reading maintainers.toml - using default config\n")
	}
	return conf
}

// changedFilesFromArgs accepts either a single patch file, whose revision
// range is derived from its commit id, or an explicit rev-start rev-end pair.
func changedFilesFromArgs(cCtx *cli.Context, dir string) ([]string, error) {
	var start, end string
	switch cCtx.NArg() {
	case 1:
		var err error
		start, end, err = git.RevisionRange(cCtx.Args().First())
		if err != nil {
			return nil, err
		}
	case 2:
		start, end = cCtx.Args().Get(0), cCtx.Args().Get(1)
	default:
		return nil, fmt.Errorf("expected a patch file or a revision range")
	}
	conf := readConfig(cCtx, dir)
	return git.ChangedFiles(git.DiffContext{
		Start:  start,
		End:    end,
		Dir:    dir,
		Ignore: conf.Ignore,
	})
}

func matchedMembers(registry *team.Registry, files []string) []team.Person {
	return team.Resolve(registry.MatchingFiles(files)...)
}

func stripRoot(root string, path string) string {
	if root == "." || root == "./" {
		return path
	}
	return strings.TrimPrefix(path, strings.TrimSuffix(root, "/")+"/")
}

func unassignedFiles(w io.Writer, registry *team.Registry, repo string, target string) error {
	if repoStat, err := os.Lstat(repo); err != nil || !repoStat.IsDir() {
		return fmt.Errorf("root is not a directory: %s", repo)
	}
	if gitStat, err := os.Stat(filepath.Join(repo, ".git")); err != nil || !gitStat.IsDir() {
		return fmt.Errorf("root is not a Git repository: %s", repo)
	}

	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(repo, fileListQueue)
	walker.IncludeHidden = true
	walker.ExcludeDirectory = []string{".git"}

	errChan := make(chan error)

	go func() {
		err := walker.Start()
		errChan <- err
		close(errChan)
	}()

	unassigned := make([]string, 0)
	for file := range fileListQueue {
		path := stripRoot(repo, file.Location)
		if target != "" && !strings.HasPrefix(path, target) {
			continue
		}
		if len(registry.MatchingFiles([]string{path})) == 0 {
			unassigned = append(unassigned, path)
		}
	}

	if err := <-errChan; err != nil {
		return fmt.Errorf("error walking repo: %s", err)
	}

	slices.Sort(unassigned)
	for _, path := range unassigned {
		_, _ = fmt.Fprintln(w, path)
	}
	return nil
}
