package ledger

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/splittab-dev/splittab/internal/model"
)

// AddMember appends a new member. The name is trimmed of surrounding
// whitespace; an empty result fails with ErrEmptyName and an exact
// (case-sensitive) match against an existing member fails with
// ErrDuplicateName. There is no remove or rename, which keeps member
// references in historical expenses trivially valid.
func (s *Store) AddMember(name string) (model.Member, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}

	member := model.Member(trimmed)
	for _, m := range s.members {
		if m == member {
			return "", fmt.Errorf("%q: %w", trimmed, ErrDuplicateName)
		}
	}

	s.members = append(s.members, member)
	if err := s.persistMembers(); err != nil {
		return member, err
	}

	slog.Debug("member added", "name", trimmed)
	s.notify()
	return member, nil
}
