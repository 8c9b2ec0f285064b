// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the memory calendar server.
//
// The primary abstraction is [ServerAdapter], which decouples calling code
// (companion tooling, integration tests) from the underlying protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-memory-calendar/models"
)

// ServerAdapter defines transport-agnostic communication with the memory
// calendar server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account with the given credentials. On success it
	// stores the bearer token from the Authorization response header via
	// SetToken and returns the established session identity.
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Login authenticates with the given credentials. On success it stores
	// the bearer token from the Authorization response header via SetToken
	// and returns the established session identity.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Logout ends the server-side session and clears the stored token.
	Logout(ctx context.Context) error

	// Session fetches the persisted session identity, found=false when the
	// server reports no active session.
	Session(ctx context.Context) (models.Session, bool, error)

	// CreateGroup creates a named group containing the caller plus members.
	CreateGroup(ctx context.Context, groupName string, members []string) (models.Group, error)

	// MyGroups lists the groups the caller belongs to.
	MyGroups(ctx context.Context) ([]models.Group, error)

	// AddMember adds username to the caller's group groupName.
	AddMember(ctx context.Context, groupName, username string) error

	// LeaveGroup removes the caller from their group groupName.
	LeaveGroup(ctx context.Context, groupName string) error

	// TodayStatus reports whether the caller already submitted a daily
	// record for the current date.
	TodayStatus(ctx context.Context) (bool, error)

	// SubmitRecord submits the caller's daily self-assessment. Returns
	// [ErrConflict] (wrapped) when a record for the date already exists.
	SubmitRecord(ctx context.Context, req models.SubmitRecordRequest) error

	// Monitor fetches the daily records of all receivers sharing a group
	// with the caller. Requires a sender token.
	Monitor(ctx context.Context) ([]models.DailyRecord, error)

	// DefaultQuestions fetches the built-in daily question set.
	DefaultQuestions(ctx context.Context) ([]models.CustomQuestion, error)

	// CreateQuestion authors a custom question. Requires a sender token.
	CreateQuestion(ctx context.Context, question models.CustomQuestion) (string, error)

	// MyQuestions lists the custom questions targeting the caller. Requires
	// a receiver token.
	MyQuestions(ctx context.Context) ([]models.CustomQuestion, error)

	// AddMemory appends a memory entry to the caller's calendar date.
	AddMemory(ctx context.Context, req models.AddMemoryRequest) (models.MemoryEntry, error)

	// ListMemories lists the caller's memory entries for date.
	ListMemories(ctx context.Context, date string) ([]models.MemoryEntry, error)

	// SaveDecoration overwrites the caller's decoration for a date.
	SaveDecoration(ctx context.Context, req models.SaveDecorationRequest) error

	// GetDecoration fetches the caller's decoration for date, found=false
	// when none is stored.
	GetDecoration(ctx context.Context, date string) (models.Decoration, bool, error)
}
