package core

// # Error Codes Reference
//
// User-facing messages carry a code that can be quoted to support staff.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File not found: The traffic sources report does not exist
//	          Patterns: "input file not found"
//
//	FILE002 - Empty file: The report contains no data
//	          Patterns: "input file is empty"
//
//	FILE003 - Bad header: The header row could not be read
//	          Patterns: "unreadable header"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL002 - Invalid range: Start date is after end date
//	         Patterns: "invalid date range"
//
//	VAL001 - Invalid date: A date could not be parsed
//	         Patterns: "invalid date"
//
//	VAL003 - Invalid export name: --export-name is not an identifier
//	         Patterns: "invalid export name"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Malformed body: The request body is not valid JSON
//	         Patterns: "malformed request body"
//
//	REQ002 - Request cancelled
//	         Patterns: "context canceled"
//
// # Database Errors (DB001-DB099)
//
//	DB004 - Connection refused
//	DB005 - Connection reset
//	DB006 - Timeout ("timeout", "context deadline exceeded")
//	DB007 - Deadlock
//	DB008 - Database not configured ("database not configured")
//
// # Default Error (ERR000)
//
// Fallback when no pattern matches. Check the logs for the original error.
//
// Patterns are matched case-insensitively with strings.Contains and the first
// match wins, so "invalid date range" sits before "invalid date".

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// The first matching pattern wins, so more specific patterns come first.
var errorPatterns = []errorPattern{
	// File errors
	{"input file not found", UserMessage{Code: "FILE001",
		Message: "Traffic sources report not found",
		Action:  "Check the --input path or CONVERT_INPUT"}},
	{"input file is empty", UserMessage{Code: "FILE002",
		Message: "The traffic sources report is empty",
		Action:  "Export the report again with at least a header row"}},
	{"unreadable header", UserMessage{Code: "FILE003",
		Message: "The report header row could not be read",
		Action:  "Make sure the first line lists the column names"}},

	// Validation errors
	{"invalid date range", UserMessage{Code: "VAL002",
		Message: "Start date is after end date",
		Action:  "Swap the dates or widen the range"}},
	{"invalid date", UserMessage{Code: "VAL001",
		Message: "Invalid date format detected",
		Action:  "Use YYYY-MM-DD, MM/DD/YYYY, or Jan 15, 2024"}},
	{"invalid export name", UserMessage{Code: "VAL003",
		Message: "Export name is not a JavaScript identifier",
		Action:  "Use letters, digits, _ or $ and do not start with a digit"}},

	// Request errors
	{"malformed request body", UserMessage{Code: "REQ001",
		Message: "Request body is not valid JSON",
		Action:  `Send {"start": "YYYY-MM-DD", "end": "YYYY-MM-DD"} or an empty body`}},
	{"context canceled", UserMessage{Code: "REQ002",
		Message: "Request was cancelled",
		Action:  "Please try again"}},

	// Database errors
	{"connection refused", UserMessage{Code: "DB004",
		Message: "Unable to connect to database",
		Action:  "Please try again in a few moments"}},
	{"connection reset", UserMessage{Code: "DB005",
		Message: "Database connection was interrupted",
		Action:  "Please try again"}},
	{"timeout", timedOut},
	{"context deadline exceeded", timedOut},
	{"deadlock", UserMessage{Code: "DB007",
		Message: "Database was busy with conflicting operations",
		Action:  "Please try again"}},
	{"database not configured", UserMessage{Code: "DB008",
		Message: "No database is configured",
		Action:  "Set DATABASE_URL to import reports"}},
}

var timedOut = UserMessage{
	Code:    "DB006",
	Message: "Operation timed out",
	Action:  "Try a narrower date range or try again later",
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, a generic fallback with code ERR000 is returned.
//
//	msg := MapError(fmt.Errorf("load %s: %w", path, report.ErrFileNotFound))
//	// msg.Code == "FILE001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than the
// ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
