package javac

import (
	"bufio"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
)

var (
	headerPattern  = regexp.MustCompile(`^(.+?):(\d+): (error|warning): (.*)$`)
	summaryPattern = regexp.MustCompile(`^(\d+) (error|errors|warning|warnings)$`)
)

// Diagnostics is the parsed form of one compiler run's output.
type Diagnostics struct {
	Issues []domain.Issue
	// Errors and Warnings are the totals printed by the compiler itself.
	Errors   int
	Warnings int
}

type parseStage int

const (
	stageEcho parseStage = iota
	stageCaret
	stageDetail
)

// ParseDiagnostics extracts issues from compiler output. Each issue is a
// "path:line: severity: message" header followed by the echoed source line, a caret
// marking the column and optional indented detail lines, which are appended to the
// message. Paths are reported relative to root with forward slashes. Lines that carry
// no location are ignored.
func ParseDiagnostics(output, root string) Diagnostics {
	var diag Diagnostics
	var current *domain.Issue
	stage := stageEcho

	flush := func() {
		if current != nil {
			diag.Issues = append(diag.Issues, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if m := headerPattern.FindStringSubmatch(line); m != nil {
			flush()
			lineNo, _ := strconv.Atoi(m[2])
			current = &domain.Issue{
				SourcePath: relativePath(m[1], root),
				Line:       lineNo,
				Severity:   domain.Severity(m[3]),
				Message:    m[4],
			}
			stage = stageEcho
			continue
		}

		if m := summaryPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			flush()
			n, _ := strconv.Atoi(m[1])
			if strings.HasPrefix(m[2], "error") {
				diag.Errors += n
			} else {
				diag.Warnings += n
			}
			continue
		}

		if current == nil {
			continue
		}

		switch stage {
		case stageEcho:
			if col, ok := caretColumn(line); ok {
				current.Column = col
				stage = stageDetail
			} else {
				stage = stageCaret
			}
		case stageCaret:
			if col, ok := caretColumn(line); ok {
				current.Column = col
				stage = stageDetail
			} else if isDetail(line) {
				current.Message += "\n" + strings.TrimSpace(line)
				stage = stageDetail
			} else {
				flush()
			}
		case stageDetail:
			if isDetail(line) {
				current.Message += "\n" + strings.TrimSpace(line)
			} else {
				flush()
			}
		}
	}
	flush()

	return diag
}

// caretColumn returns the 1-based column of a caret marker line.
func caretColumn(line string) (int, bool) {
	if strings.TrimSpace(line) != "^" {
		return 0, false
	}
	return strings.IndexByte(line, '^') + 1, true
}

func isDetail(line string) bool {
	return strings.TrimSpace(line) != "" && (line[0] == ' ' || line[0] == '\t')
}

func relativePath(path, root string) string {
	if filepath.IsAbs(path) && root != "" {
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}
