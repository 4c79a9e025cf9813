package logmanager

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
)

// ParseLevel parses a "|"-separated list of tier names ("error|debug") into
// a Level. "none" and the empty string parse to LevelNone, "all" to
// LevelAll. Returns LevelNone and an error on an unknown tier name.
func ParseLevel(s string) (Level, error) {
	const op smerrors.Op = "logmanager.ParseLevel"

	switch strings.ToLower(strings.TrimSpace(s)) {
	case emptyString, "none":
		return LevelNone, nil
	case "all":
		return LevelAll, nil
	}

	level := LevelNone
	for _, part := range strings.Split(s, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		found := false
		for _, n := range levelNames {
			if part == n.name {
				level = level.Enable(n.level)
				found = true
				break
			}
		}
		if !found {
			return LevelNone, smerrors.New(op).Msg("unknown severity tier: " + part)
		}
	}
	return level, nil
}

// buildErrorChain walks an error's cause chain and returns:
//   - chain: outermost -> innermost error messages
//   - ops: operation identifiers for DetailedError links ("" if not available)
//   - root: the innermost error message
//   - rootOp: the innermost operation identifier if available
//
// The traversal prefers Station-Manager DetailedError.Cause() and then
// falls back to stdlib errors.Unwrap. It guards against excessive depth
// and repeated messages to avoid cycles.
func buildErrorChain(err error) (chain []string, ops []string, root string, rootOp string) {
	const maxDepth = 50
	visited := 0
	seen := map[string]bool{}

	for err != nil && visited < maxDepth {
		visited++

		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, dErr.Error())
			ops = append(ops, string(dErr.Op()))
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		// avoid infinite loops if messages repeat due to unusual cycles
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		ops = append(ops, "")
		err = stderrs.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	if len(ops) > 0 {
		rootOp = ops[len(ops)-1]
	}
	return
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}
