// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// airbnb-api services, handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries. Existing API clients match on
// several of them, so the wording is part of the contract.
package app

const (
	// MsgWelcome is returned by the root endpoint.
	MsgWelcome = "Welcome to the airbnb API"

	// MsgMissingParameters is returned when a required field is absent or
	// an update carries nothing to change.
	MsgMissingParameters = "Missing parameters"

	// MsgWrongEmailFormat is returned when the email does not parse.
	MsgWrongEmailFormat = "Wrong email format"

	// MsgEmailAlreadyExists is returned by sign up when the normalized email
	// is already registered.
	MsgEmailAlreadyExists = "This email already has an account."

	// MsgUsernameAlreadyExists is returned by sign up and profile updates
	// when the username is taken by another account.
	MsgUsernameAlreadyExists = "This username already has an account."

	// MsgUnauthorized covers a missing or unknown bearer token, wrong
	// credentials and mutations by anyone but the owner.
	MsgUnauthorized = "Unauthorized"

	// MsgUserNotEditable and MsgRoomNotEditable are returned for seed
	// resources on the immutable deny-lists.
	MsgUserNotEditable = "This user is not editable"
	MsgRoomNotEditable = "This room is not editable"

	MsgUserNotFound    = "User not found"
	MsgRoomNotFound    = "Room not found"
	MsgPictureNotFound = "Picture not found"
	MsgNoPhotoFound    = "No photo found"

	// MsgPhotoLimitExceeded is returned when a room already holds the
	// maximum number of pictures.
	MsgPhotoLimitExceeded = "Can't add more than 5 pictures"

	// MsgWrongPreviousPassword is returned by a password update whose
	// previous password does not verify.
	MsgWrongPreviousPassword = "Wrong previous password"

	// MsgPasswordUnchanged is returned when the new password equals the
	// previous one.
	MsgPasswordUnchanged = "Previous password and new password must be different"

	// MsgResetTokenExpired is returned when a password reset token is used
	// after its expiry.
	MsgResetTokenExpired = "Time expired"

	// MsgUpstreamUnavailable is returned when the database or the object
	// storage could not serve the request.
	MsgUpstreamUnavailable = "Service temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgPageNotFound is returned for unknown routes.
	MsgPageNotFound = "Page not found"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgPictureDeleted, MsgRoomDeleted and MsgUserDeleted confirm deletions.
	MsgPictureDeleted = "Picture deleted"
	MsgRoomDeleted    = "Room deleted"
	MsgUserDeleted    = "User deleted"

	// MsgRecoveryMailSent confirms a password recovery request.
	MsgRecoveryMailSent = "Mail successfully sent"

	// MsgPasswordChangedSubject is the subject of the password-changed mail.
	MsgPasswordChangedSubject = "Your password has been changed"

	// MsgPasswordResetSubject is the subject of the recovery mail.
	MsgPasswordResetSubject = "Reset your password"
)
