package llm

import (
	"context"
	"strings"
)

// Static is a canned-response client for local runs and tests; it never
// calls the network. With an empty Reply it echoes the last non-empty line
// of the user prompt.
type Static struct {
	Reply string
	Err   error
}

func (s Static) Complete(_ context.Context, req Request) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.Reply != "" {
		return s.Reply, nil
	}
	lines := strings.Split(req.User, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line, nil
		}
	}
	return "", ErrNoChoices
}

var _ Client = Static{}
