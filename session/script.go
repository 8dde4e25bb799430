package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RunScript executes session commands from r, one per line, against the
// current session. Blank lines and lines starting with '#' are skipped; a
// "q!" line stops execution early. The first failing command aborts the run
// with its line number; commands before it remain applied.
func (s *Session) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "q!" {
			return nil
		}
		if err := s.Apply(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}
