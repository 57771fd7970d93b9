package team

// Builtin registry for the Ferrite repository. Teams are defined first, then
// members are attached in a second pass; Default returns the sealed registry.
//
// Scope entries are either literal paths or regular expressions. The regular
// expressions anchor themselves; the matcher applies them as-is.

var (
	adaKovanen      = Person{Name: "Ada Kovanen", Email: "ada@kovanen.fi"}
	anneliesVogt    = Person{Name: "Annelies Vogt", Email: "a.vogt@posteo.net"}
	bartoszKrol     = Person{Name: "Bartosz Krol", Email: "bartosz@krol.dev"}
	camilleFaure    = Person{Name: "Camille Faure", Email: "camille@faure.example.org"}
	cedricNdiaye    = Person{Name: "Cedric Ndiaye", Email: "cedric.ndiaye@mailbox.org"}
	daraOSuilleabh  = Person{Name: "Dara O Suilleabhain", Email: "dara@osuilleabhain.ie"}
	elenaPetrova    = Person{Name: "Elena Petrova", Email: "elena@petrova.dev"}
	eliasBrandt     = Person{Name: "Elias Brandt", Email: "elias.brandt@tuta.io"}
	feliksJarvinen  = Person{Name: "Feliks Jarvinen", Email: "feliks@jarvinen.net"}
	gretaLindqvist  = Person{Name: "Greta Lindqvist", Email: "greta@lindqvist.se"}
	hannoReuter     = Person{Name: "Hanno Reuter", Email: "hanno@reuter.sh"}
	idrisBakari     = Person{Name: "Idris Bakari", Email: "idris.bakari@disroot.org"}
	ingridSolheim   = Person{Name: "Ingrid Solheim", Email: "ingrid@solheim.no"}
	jonasWexler     = Person{Name: "Jonas Wexler", Email: "jonas@wexler.codes"}
	jonasWexlerPriv = Person{Name: "Jonas Wexler", Email: "jwexler@fastmail.com"}
	juleVandenberg  = Person{Name: "Jule Vandenberg", Email: "jule@vandenberg.nl"}
	kasimirVirta    = Person{Name: "Kasimir Virta", Email: "kasimir@virta.dev"}
	leilaMansouri   = Person{Name: "Leila Mansouri", Email: "leila.mansouri@riseup.net"}
	lucaMoretti     = Person{Name: "Luca Moretti", Email: "luca@moretti.it"}
	maraScholz      = Person{Name: "Mara Scholz", Email: "mara@scholz.berlin"}
	matiasHerranz   = Person{Name: "Matias Herranz", Email: "matias@herranz.ar"}
	mireilleDubois  = Person{Name: "Mireille Dubois", Email: "mireille@dubois.fr"}
	nikolaStamenov  = Person{Name: "Nikola Stamenov", Email: "nikola@stamenov.bg"}
	oonaKallio      = Person{Name: "Oona Kallio", Email: "oona.kallio@iki.fi"}
	petraNovak      = Person{Name: "Petra Novak", Email: "petra@novak.cz"}
	quentinMarchal  = Person{Name: "Quentin Marchal", Email: "quentin@marchal.be"}
	ritaFonseca     = Person{Name: "Rita Fonseca", Email: "rita@fonseca.pt"}
	samuelOduya     = Person{Name: "Samuel Oduya", Email: "samuel.oduya@protonmail.com"}
	sorenDahl       = Person{Name: "Soren Dahl", Email: "soren@dahl.dk"}
	tessaVanDijk    = Person{Name: "van Dijk, Tessa", Email: "tessa@vandijk.nl"}
	viktorLindgren  = Person{Name: "Viktor Lindgren", Email: "viktor@lindgren.se"}
	wandaKaminska   = Person{Name: "Wanda Kaminska", Email: "wanda@kaminska.pl"}
	yusufDemir      = Person{Name: "Yusuf Demir", Email: "yusuf@demir.tr"}
)

// Default builds the registry shipped with the tool. It is rebuilt fresh for
// every process; nothing mutates it afterwards.
func Default() (*Registry, error) {
	b := NewBuilder()

	b.DefineTeam(Team{
		ID:          "audio",
		Description: "Sound servers, codecs and the audio stack.",
		Scope: []Scope{
			Exact("pkgs/audio/pipewire.toml"),
			Pattern(`^pkgs/audio/`),
			Pattern(`^pkgs/multimedia/(alsa|jack|ladspa)`),
		},
	})
	b.DefineTeam(Team{
		ID:          "bootstrap",
		Description: "Reduced-binary-seed bootstrap: the seed toolchain and every recipe it pulls in before the first full compiler build.",
		Scope: []Scope{
			Exact("pkgs/bootstrap.toml"),
			Pattern(`^forge/bootstrap/`),
			Pattern(`^pkgs/commencement/`),
		},
	})
	b.DefineTeam(Team{
		ID:          "ci",
		Name:        "continuous integration",
		Description: "Build farm configuration, pipeline definitions and the substitute publishing jobs.",
		Scope: []Scope{
			Exact(".forge-ci.yml"),
			Pattern(`^ci/`),
		},
	})
	b.DefineTeam(Team{
		ID:          "core",
		Description: "The forge build engine, recipe evaluator and store layer. Changes here affect every package in the distribution.",
		Scope: []Scope{
			Pattern(`^forge/(?:[^/]+\.go|store/|solver/|recipe/)`),
			Pattern(`^core/`),
			Exact("pkgs/base.toml"),
		},
	})
	b.DefineTeam(Team{
		ID:          "documentation",
		Description: "The manual, cookbook and in-tree developer documentation.",
		Scope: []Scope{
			Pattern(`^doc/`),
			Pattern(`\.adoc$`),
			Exact("CONTRIBUTING.md"),
		},
	})
	b.DefineTeam(Team{
		ID:          "embedded",
		Description: "Cross-compilation targets, board support and the embedded package set.",
		Scope: []Scope{
			Exact("pkgs/cross-base.toml"),
			Pattern(`^pkgs/embedded/`),
			Pattern(`^forge/cross/`),
		},
	})
	b.DefineTeam(Team{
		ID:          "emacs",
		Description: "Emacs and the Emacs package set.",
		Scope: []Scope{
			Pattern(`^pkgs/emacs/`),
			Pattern(`^pkgs/emacs-.*\.toml$`),
		},
	})
	b.DefineTeam(Team{
		ID:          "games",
		Description: "Games and game engines.",
		Scope: []Scope{
			Pattern(`^pkgs/games/`),
		},
	})
	b.DefineTeam(Team{
		ID:          "gnome",
		Description: "The GNOME desktop, GTK and the GLib platform libraries.",
		Scope: []Scope{
			Exact("pkgs/glib.toml"),
			Pattern(`^pkgs/gnome/`),
			Pattern(`^pkgs/gtk/`),
		},
	})
	b.DefineTeam(Team{
		ID:          "go",
		Description: "The Go toolchain and Go module packaging, including the module importer.",
		Scope: []Scope{
			Pattern(`^pkgs/golang/`),
			Pattern(`^pkgs/go-.*\.toml$`),
			Exact("forge/import/gomod.go"),
		},
	})
	b.DefineTeam(Team{
		ID:          "home",
		Description: "Ferrite Home: declarative user environments and their service definitions.",
		Scope: []Scope{
			Pattern(`^home/`),
		},
	})
	b.DefineTeam(Team{
		ID:          "installer",
		Description: "The graphical and scripted system installer, including installation image generation.",
		Scope: []Scope{
			Pattern(`^installer/`),
			Exact("forge/image/iso.go"),
		},
	})
	b.DefineTeam(Team{
		ID:          "java",
		Description: "The JDK bootstrap chain and the Java and Maven package sets.",
		Scope: []Scope{
			Pattern(`^pkgs/java/`),
			Pattern(`^pkgs/maven-.*\.toml$`),
		},
	})
	b.DefineTeam(Team{
		ID:          "kernel",
		Description: "Linux kernel recipes, configuration fragments and firmware packaging.",
		Scope: []Scope{
			Exact("pkgs/linux-firmware.toml"),
			Pattern(`^pkgs/linux/`),
			Pattern(`^forge/kconfig/`),
		},
	})
	b.DefineTeam(Team{
		ID:          "lisp",
		Description: "Common Lisp implementations and the Lisp library package set.",
		Scope: []Scope{
			Pattern(`^pkgs/lisp/`),
			Pattern(`^pkgs/sbcl-.*\.toml$`),
		},
	})
	b.DefineTeam(Team{
		ID:          "localization",
		Description: "Translations of the tools, the manual and the website.",
		Scope: []Scope{
			Pattern(`^po/`),
			Pattern(`\.po$`),
		},
	})
	b.DefineTeam(Team{
		ID:          "mentors",
		Description: "Volunteers willing to review and shepherd contributions from newcomers.",
	})
	b.DefineTeam(Team{
		ID:          "python",
		Description: "The CPython toolchain, the Python package set and the pypi importer.",
		Scope: []Scope{
			Exact("pkgs/python.toml"),
			Pattern(`^pkgs/python/`),
			Pattern(`^pkgs/python-.*\.toml$`),
			Exact("forge/import/pypi.go"),
		},
	})
	b.DefineTeam(Team{
		ID:          "qt",
		Description: "Qt, KDE frameworks and the Plasma desktop.",
		Scope: []Scope{
			Pattern(`^pkgs/qt/`),
			Pattern(`^pkgs/kde/`),
		},
	})
	b.DefineTeam(Team{
		ID:          "rust",
		Description: "The Rust bootstrap chain and crate packaging, including the crates.io importer.",
		Scope: []Scope{
			Exact("pkgs/rust.toml"),
			Pattern(`^pkgs/rust/`),
			Pattern(`^pkgs/crate-.*\.toml$`),
			Exact("forge/import/crates.go"),
		},
	})
	b.DefineTeam(Team{
		ID:          "science",
		Description: "Scientific computing: numerical libraries, solvers and bioinformatics packages.",
		Scope: []Scope{
			Pattern(`^pkgs/science/`),
			Pattern(`^pkgs/maths/`),
			Pattern(`^pkgs/bioinformatics/`),
		},
	})
	b.DefineTeam(Team{
		ID:          "security",
		Description: "TLS stacks, cryptographic libraries, the signing infrastructure and security advisories.",
		Scope: []Scope{
			Exact("etc/security-advisories.toml"),
			Pattern(`^pkgs/crypto/`),
			Pattern(`^pkgs/tls/`),
			Exact("forge/fetch/verify.go"),
		},
	})
	b.DefineTeam(Team{
		ID:          "services",
		Description: "System service definitions and the service orchestration layer.",
		Scope: []Scope{
			Pattern(`^services/`),
		},
	})
	b.DefineTeam(Team{
		ID:          "web",
		Name:        "website",
		Description: "The project website and the package browser.",
		Scope: []Scope{
			Pattern(`^web/`),
		},
	})

	b.DefineMember(adaKovanen, "core", "bootstrap", "mentors")
	b.DefineMember(anneliesVogt, "gnome", "audio")
	b.DefineMember(bartoszKrol, "kernel", "embedded")
	b.DefineMember(camilleFaure, "documentation", "localization", "mentors")
	b.DefineMember(cedricNdiaye, "python", "science")
	b.DefineMember(daraOSuilleabh, "games", "qt")
	b.DefineMember(elenaPetrova, "rust", "core")
	b.DefineMember(eliasBrandt, "security", "kernel")
	b.DefineMember(feliksJarvinen, "ci", "core")
	b.DefineMember(gretaLindqvist, "home", "services", "mentors")
	b.DefineMember(hannoReuter, "go", "ci")
	b.DefineMember(idrisBakari, "python", "documentation")
	b.DefineMember(ingridSolheim, "installer", "web")
	b.DefineMember(jonasWexler, "emacs", "lisp")
	// Jonas prefers his personal address for security reports.
	b.DefineMember(jonasWexlerPriv, "security")
	b.DefineMember(juleVandenberg, "gnome", "web")
	b.DefineMember(kasimirVirta, "bootstrap", "embedded")
	b.DefineMember(leilaMansouri, "science", "mentors")
	b.DefineMember(lucaMoretti, "audio", "games")
	b.DefineMember(maraScholz, "qt", "gnome", "mentors")
	b.DefineMember(matiasHerranz, "go", "rust")
	b.DefineMember(mireilleDubois, "localization", "web")
	b.DefineMember(nikolaStamenov, "services", "kernel")
	b.DefineMember(oonaKallio, "python", "home")
	b.DefineMember(petraNovak, "java", "science")
	b.DefineMember(quentinMarchal, "lisp", "emacs")
	b.DefineMember(ritaFonseca, "documentation", "installer")
	b.DefineMember(samuelOduya, "security", "ci", "mentors")
	b.DefineMember(sorenDahl, "java", "go")
	b.DefineMember(tessaVanDijk, "installer", "services")
	b.DefineMember(viktorLindgren, "emacs", "documentation")
	b.DefineMember(wandaKaminska, "localization", "home")
	b.DefineMember(yusufDemir, "embedded", "audio")

	return b.Build()
}
