package realtime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Channel is a private pub/sub topic. Every channel requires per-subscriber
// authorization before events are delivered (see registry.go).
type Channel string

// Static role channels, shared by every holder of the role.
const (
	ChannelAdmin        Channel = "role.admin"
	ChannelSuperviseur  Channel = "role.superviseur"
	ChannelConfirmateur Channel = "role.confirmateur"
)

// Entity-scoped channel builders (typed, safe).

func AgentChannel(id int64) Channel { return Channel(fmt.Sprintf("role.agent.%d", id)) }

func PatientChannel(id int64) Channel { return Channel(fmt.Sprintf("role.patient.%d", id)) }

func CliniqueChannel(id int64) Channel { return Channel(fmt.Sprintf("clinique.%d", id)) }

func UserChannel(id int64) Channel { return Channel(fmt.Sprintf("user.%d", id)) }

var ErrMalformedChannel = errors.New("malformed channel name")

type channelKind int

const (
	kindInvalid channelKind = iota
	kindRoleAdmin
	kindRoleSuperviseur
	kindRoleConfirmateur
	kindRoleAgent
	kindRolePatient
	kindClinique
	kindUser
)

// parsedChannel is the result of validating an untrusted channel name.
type parsedChannel struct {
	kind channelKind
	id   int64 // set only for entity-scoped kinds
}

// ParseChannel validates an untrusted channel name against the closed
// grammar. Id segments must be pure base-10 digits and fit in an int64;
// anything else (sign, suffix, overflow) is rejected rather than coerced,
// so "clinique.1x" can never authorize against id 1.
func ParseChannel(name string) (parsedChannel, error) {
	switch name {
	case string(ChannelAdmin):
		return parsedChannel{kind: kindRoleAdmin}, nil
	case string(ChannelSuperviseur):
		return parsedChannel{kind: kindRoleSuperviseur}, nil
	case string(ChannelConfirmateur):
		return parsedChannel{kind: kindRoleConfirmateur}, nil
	}

	if seg, ok := strings.CutPrefix(name, "role.agent."); ok {
		return parseEntityChannel(kindRoleAgent, seg)
	}
	if seg, ok := strings.CutPrefix(name, "role.patient."); ok {
		return parseEntityChannel(kindRolePatient, seg)
	}
	if seg, ok := strings.CutPrefix(name, "clinique."); ok {
		return parseEntityChannel(kindClinique, seg)
	}
	if seg, ok := strings.CutPrefix(name, "user."); ok {
		return parseEntityChannel(kindUser, seg)
	}

	return parsedChannel{}, fmt.Errorf("%w: %q", ErrMalformedChannel, name)
}

func parseEntityChannel(kind channelKind, seg string) (parsedChannel, error) {
	id, err := parseChannelID(seg)
	if err != nil {
		return parsedChannel{}, err
	}
	return parsedChannel{kind: kind, id: id}, nil
}

func parseChannelID(seg string) (int64, error) {
	if seg == "" {
		return 0, fmt.Errorf("%w: empty id segment", ErrMalformedChannel)
	}
	// strconv.ParseInt accepts a leading sign; the grammar does not.
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, fmt.Errorf("%w: non-numeric id %q", ErrMalformedChannel, seg)
		}
	}
	id, err := strconv.ParseInt(seg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q out of range", ErrMalformedChannel, seg)
	}
	return id, nil
}
