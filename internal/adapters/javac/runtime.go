package javac

import (
	"cmp"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RuntimeLocator = (*RuntimeLocator)(nil)

var runtimeFolderPattern = regexp.MustCompile(`^(?i)(?:jdk|jre|java|openjdk)[-_]?(\d.*)$`)

// RuntimeLocator finds the runtime archive of an installed runtime next to the active one.
// Installed runtimes are expected to be siblings of the directory named by JAVA_HOME.
type RuntimeLocator struct {
	home func() string
}

// NewRuntimeLocator creates a RuntimeLocator reading the process environment.
func NewRuntimeLocator() *RuntimeLocator {
	return newRuntimeLocator(os.Getenv)
}

func newRuntimeLocator(getenv func(string) string) *RuntimeLocator {
	return &RuntimeLocator{
		home: sync.OnceValue(func() string {
			return strings.TrimSpace(getenv(domain.RuntimeLocatorEnv))
		}),
	}
}

// BootClasspath returns "<runtime>/lib/rt.jar" for the installed runtime matching
// targetVersion. When several runtimes match, the greatest folder name in natural
// order wins, so "jdk1.7.0_80" is preferred over "jdk1.7.0_9".
func (l *RuntimeLocator) BootClasspath(targetVersion string) (string, error) {
	target, err := domain.MajorVersion(targetVersion)
	if err != nil {
		return "", err
	}

	home := l.home()
	if home == "" {
		return "", zerr.With(domain.ErrRuntimeLocatorNotSet, "variable", domain.RuntimeLocatorEnv)
	}

	root := filepath.Dir(filepath.Clean(home))
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrRuntimesRootNotFound.Error()), "path", root)
	}

	var candidates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := runtimeFolderPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		major, err := domain.MajorVersion(m[1])
		if err != nil || major != target {
			continue
		}
		candidates = append(candidates, entry.Name())
	}

	if len(candidates) == 0 {
		notFound := zerr.With(domain.ErrRuntimeNotFound, "target_version", targetVersion)
		return "", zerr.With(notFound, "path", root)
	}

	best := slices.MaxFunc(candidates, naturalCompare)
	return filepath.Join(root, best, "lib", domain.RuntimeArchive), nil
}

// naturalCompare orders strings with runs of digits compared by numeric value.
// Equal values with different spellings ("07" and "7") fall back to plain ordering.
func naturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := strings.TrimLeft(a[si:i], "0")
			nb := strings.TrimLeft(b[sj:j], "0")
			if len(na) != len(nb) {
				return cmp.Compare(len(na), len(nb))
			}
			if c := strings.Compare(na, nb); c != 0 {
				return c
			}
			continue
		}
		if a[i] != b[j] {
			return cmp.Compare(int(a[i]), int(b[j]))
		}
		i++
		j++
	}
	if c := cmp.Compare(len(a)-i, len(b)-j); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

