// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Velichkin

// Package app contains shared application-layer constants used across the
// innerpath server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body fails basic
	// validation and no more specific message applies.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUserHashRequired is returned when an operation is called without
	// the user_hash credential.
	MsgUserHashRequired = "user_hash required"

	// MsgUserNotFound is returned when no user record exists for the
	// supplied user_hash.
	MsgUserNotFound = "User not found"

	// MsgRatingNotFound is returned when engagement fields are submitted
	// for a day that has no rating yet.
	MsgRatingNotFound = "Rating not found"

	// MsgReportNotFound is returned when a report is requested before one
	// has been generated.
	MsgReportNotFound = "Report not found"

	// MsgRatingOutOfRange is returned when the submitted rating value is
	// outside the accepted window.
	MsgRatingOutOfRange = "Rating must be between 0 and 6"

	// MsgJourneyDayNegative is returned when a negative day index is
	// submitted.
	MsgJourneyDayNegative = "journey_day must not be negative"

	// MsgUnknownTradition is returned when onboarding names a tradition
	// missing from the content catalog.
	MsgUnknownTradition = "unknown tradition"

	// MsgUnknownPassage is returned when a rating references a passage
	// missing from the content catalog.
	MsgUnknownPassage = "unknown passage"

	// MsgInvalidSubscription is returned when the submitted plan is not one
	// of the known subscription states.
	MsgInvalidSubscription = "invalid subscription status"

	// MsgInsufficientRatings is returned when report generation is
	// requested below the eligibility floor.
	MsgInsufficientRatings = "Need at least 5 ratings to generate report"

	// MsgUnsupportedOperation is returned for unknown routes and wrong
	// HTTP methods.
	MsgUnsupportedOperation = "Unsupported operation"

	// MsgInternalServerError is the opaque message for unexpected faults.
	MsgInternalServerError = "internal server error"
)
