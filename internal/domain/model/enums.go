package model

import (
	"fmt"
	"strings"
)

// RequestType is the direction of a membership offer.
type RequestType string

const (
	RequestTypeJoinRequest RequestType = "JOIN_REQUEST" // user asks to join a team
	RequestTypeInvite      RequestType = "INVITE"       // team invites a user
)

func ParseRequestType(s string) (RequestType, error) {
	switch RequestType(strings.ToUpper(s)) {
	case RequestTypeJoinRequest:
		return RequestTypeJoinRequest, nil
	case RequestTypeInvite:
		return RequestTypeInvite, nil
	default:
		return "", fmt.Errorf("unknown request type %q", s)
	}
}

// RequestStatus is the resolution state of a membership request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusAccepted RequestStatus = "ACCEPTED"
	RequestStatusRejected RequestStatus = "REJECTED"
	RequestStatusCanceled RequestStatus = "CANCELED"
)

func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(strings.ToUpper(s)) {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected, RequestStatusCanceled:
		return RequestStatus(strings.ToUpper(s)), nil
	default:
		return "", fmt.Errorf("unknown request status %q", s)
	}
}

// Active reports whether the status still blocks a new offer for the same
// (user, team, direction). Only a rejected request frees the slot.
func (s RequestStatus) Active() bool {
	return s != RequestStatusRejected
}

// RoomType distinguishes team chat rooms from private 1:1 rooms.
type RoomType string

const (
	RoomTypeTeam    RoomType = "TEAM"
	RoomTypePrivate RoomType = "PRIVATE"
)

// LockStatus is the state of a team lock request.
type LockStatus string

const (
	LockStatusPending  LockStatus = "PENDING"
	LockStatusApproved LockStatus = "APPROVED"
	LockStatusRejected LockStatus = "REJECTED"
)

// Position is a project role tag.
type Position string

const (
	PositionBackend  Position = "BACKEND"
	PositionFrontend Position = "FRONTEND"
	PositionAI       Position = "AI"
	PositionPM       Position = "PM"
	PositionDesign   Position = "DESIGN"
)

func ParsePosition(s string) (Position, error) {
	switch Position(strings.ToUpper(s)) {
	case PositionBackend, PositionFrontend, PositionAI, PositionPM, PositionDesign:
		return Position(strings.ToUpper(s)), nil
	default:
		return "", fmt.Errorf("unknown position %q", s)
	}
}

// TagSet is a comma-separated set of tags stored in a single text column
// (tech stacks, wanted roles, goals, vibes).
type TagSet string

func NewTagSet(tags []string) TagSet {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			cleaned = append(cleaned, strings.ToUpper(t))
		}
	}
	return TagSet(strings.Join(cleaned, ","))
}

// Tags splits the set back into individual tags.
func (s TagSet) Tags() []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(string(s), ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// Contains reports whether the set holds the tag (case-insensitive).
func (s TagSet) Contains(tag string) bool {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	for _, t := range s.Tags() {
		if t == tag {
			return true
		}
	}
	return false
}

// Overlap counts tags present in both sets.
func (s TagSet) Overlap(other TagSet) int {
	count := 0
	for _, t := range other.Tags() {
		if s.Contains(t) {
			count++
		}
	}
	return count
}
