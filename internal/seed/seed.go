// Package seed loads the initial roster (users, teams and historical kudos) from YAML.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nicles7/kudos-app/internal/entities"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultRoster []byte

// Roster is the validated content of a seed file.
type Roster struct {
	Users []entities.User
	Teams []entities.Team
	Kudos []entities.Kudos
}

type rosterFile struct {
	Teams []teamRecord  `yaml:"teams"`
	Users []userRecord  `yaml:"users"`
	Kudos []kudosRecord `yaml:"kudos"`
}

type teamRecord struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	LeadID string `yaml:"lead_id"`
}

type userRecord struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Email     string  `yaml:"email"`
	Role      string  `yaml:"role"`
	TeamID    string  `yaml:"team_id"`
	ManagerID *string `yaml:"manager_id"`
	Avatar    string  `yaml:"avatar"`
}

type kudosRecord struct {
	ID         string `yaml:"id"`
	SenderID   string `yaml:"sender_id"`
	ReceiverID string `yaml:"receiver_id"`
	Type       string `yaml:"type"`
	Message    string `yaml:"message"`
	DaysAgo    int    `yaml:"days_ago"`
	MonthsAgo  int    `yaml:"months_ago"`
}

// Default returns the embedded demo roster.
func Default(now time.Time) (*Roster, error) {
	return Parse(defaultRoster, now)
}

// Load reads a roster from path, or the embedded default when path is empty.
func Load(path string, now time.Time) (*Roster, error) {
	if path == "" {
		return Default(now)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data, now)
}

// Parse decodes and validates a roster. Relative kudos offsets are resolved against now.
func Parse(data []byte, now time.Time) (*Roster, error) {
	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	r := &Roster{
		Users: make([]entities.User, 0, len(f.Users)),
		Teams: make([]entities.Team, 0, len(f.Teams)),
		Kudos: make([]entities.Kudos, 0, len(f.Kudos)),
	}

	teams := make(map[string]struct{}, len(f.Teams))
	for _, t := range f.Teams {
		if t.ID == "" {
			return nil, fmt.Errorf("%w: team without id", entities.ErrInvalidArgument)
		}
		if _, dup := teams[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate team %q", entities.ErrInvalidArgument, t.ID)
		}
		teams[t.ID] = struct{}{}
		r.Teams = append(r.Teams, entities.Team{ID: t.ID, Name: t.Name, LeadID: t.LeadID})
	}

	users := make(map[string]entities.Role, len(f.Users))
	for _, u := range f.Users {
		role := entities.Role(u.Role)
		switch {
		case u.ID == "":
			return nil, fmt.Errorf("%w: user without id", entities.ErrInvalidArgument)
		case !role.Valid():
			return nil, fmt.Errorf("%w: user %q has unknown role %q", entities.ErrInvalidArgument, u.ID, u.Role)
		}
		if _, dup := users[u.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate user %q", entities.ErrInvalidArgument, u.ID)
		}
		if _, ok := teams[u.TeamID]; !ok {
			return nil, fmt.Errorf("%w: user %q references unknown team %q", entities.ErrInvalidArgument, u.ID, u.TeamID)
		}
		users[u.ID] = role
		r.Users = append(r.Users, entities.User{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      role,
			TeamID:    u.TeamID,
			ManagerID: u.ManagerID,
			Avatar:    u.Avatar,
		})
	}

	for _, t := range r.Teams {
		if _, ok := users[t.LeadID]; !ok {
			return nil, fmt.Errorf("%w: team %q lead %q is not a user", entities.ErrInvalidArgument, t.ID, t.LeadID)
		}
	}

	seen := make(map[string]struct{}, len(f.Kudos))
	for _, k := range f.Kudos {
		kt := entities.KudosType(k.Type)
		switch {
		case k.ID == "":
			return nil, fmt.Errorf("%w: kudos without id", entities.ErrInvalidArgument)
		case !kt.Valid():
			return nil, fmt.Errorf("%w: kudos %q has unknown type %q", entities.ErrInvalidArgument, k.ID, k.Type)
		case strings.TrimSpace(k.Message) == "":
			return nil, fmt.Errorf("%w: kudos %q has empty message", entities.ErrInvalidArgument, k.ID)
		case k.SenderID == k.ReceiverID:
			return nil, fmt.Errorf("%w: kudos %q targets its sender", entities.ErrInvalidArgument, k.ID)
		}
		if _, dup := seen[k.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate kudos %q", entities.ErrInvalidArgument, k.ID)
		}
		if _, ok := users[k.SenderID]; !ok {
			return nil, fmt.Errorf("%w: kudos %q sender %q", entities.ErrUserNotFound, k.ID, k.SenderID)
		}
		if _, ok := users[k.ReceiverID]; !ok {
			return nil, fmt.Errorf("%w: kudos %q receiver %q", entities.ErrUserNotFound, k.ID, k.ReceiverID)
		}
		seen[k.ID] = struct{}{}
		r.Kudos = append(r.Kudos, entities.Kudos{
			ID:         k.ID,
			SenderID:   k.SenderID,
			ReceiverID: k.ReceiverID,
			Type:       kt,
			Message:    k.Message,
			CreatedAt:  now.AddDate(0, -k.MonthsAgo, -k.DaysAgo),
		})
	}

	return r, nil
}
