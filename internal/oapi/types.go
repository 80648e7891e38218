// Package oapi contains the HTTP transport models and route bindings of the kudos API.
package oapi

import "time"

// ErrorResponseErrorCode is the machine readable error code of a failed request.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	INVALIDARGUMENT      ErrorResponseErrorCode = "INVALID_ARGUMENT"
	NOTFOUND             ErrorResponseErrorCode = "NOT_FOUND"
	UNAUTHENTICATED      ErrorResponseErrorCode = "UNAUTHENTICATED"
	FORBIDDEN            ErrorResponseErrorCode = "FORBIDDEN"
	KUDOSEXISTS          ErrorResponseErrorCode = "KUDOS_EXISTS"
	GENERATIONFAILED     ErrorResponseErrorCode = "GENERATION_FAILED"
	GENERATIONDISABLED   ErrorResponseErrorCode = "GENERATION_DISABLED"
	INTERNAL             ErrorResponseErrorCode = "INTERNAL"
	UNKNOWNUSER          ErrorResponseErrorCode = "UNKNOWN_USER"
	SELFTARGET           ErrorResponseErrorCode = "SELF_TARGET"
	EMPTYMESSAGE         ErrorResponseErrorCode = "EMPTY_MESSAGE"
	ROLENOTAUTHORIZED    ErrorResponseErrorCode = "ROLE_NOT_AUTHORIZED"
	RECIPIENTNOTELIGIBLE ErrorResponseErrorCode = "RECIPIENT_NOT_ELIGIBLE"
	QUOTAEXCEEDED        ErrorResponseErrorCode = "QUOTA_EXCEEDED"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody defines model for the error payload.
type ErrorBody struct {
	Code    ErrorResponseErrorCode `json:"code"`
	Message string                 `json:"message"`
}

// User defines model for User.
type User struct {
	UserId    string  `json:"user_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	TeamId    string  `json:"team_id"`
	ManagerId *string `json:"manager_id"`
	Avatar    string  `json:"avatar,omitempty"`
}

// Team defines model for Team.
type Team struct {
	TeamId string `json:"team_id"`
	Name   string `json:"name"`
	LeadId string `json:"lead_id"`
}

// Image defines model for Image. Data is base64 encoded on the wire.
type Image struct {
	Data     []byte `json:"data"`
	MimeType string `json:"mime_type"`
}

// Kudos defines model for Kudos.
type Kudos struct {
	KudosId    string    `json:"kudos_id"`
	SenderId   string    `json:"sender_id"`
	ReceiverId string    `json:"receiver_id"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	Image      *Image    `json:"image,omitempty"`
}

// Limits defines model for Limits.
type Limits struct {
	SilverGiven     int `json:"silver_given"`
	SilverRemaining int `json:"silver_remaining"`
	SilverLimit     int `json:"silver_limit"`
	GoldGiven       int `json:"gold_given"`
	GoldRemaining   int `json:"gold_remaining"`
	GoldLimit       int `json:"gold_limit"`
}

// Me defines model for the current user response.
type Me struct {
	User   User   `json:"user"`
	Limits Limits `json:"limits"`
}

// LeaderboardEntry defines model for LeaderboardEntry.
type LeaderboardEntry struct {
	Rank        int  `json:"rank"`
	User        User `json:"user"`
	KudosCount  int  `json:"kudos_count"`
	GoldCount   int  `json:"gold_count"`
	SilverCount int  `json:"silver_count"`
}

// Leaderboard defines model for Leaderboard.
type Leaderboard struct {
	Team               string             `json:"team"`
	Entries            []LeaderboardEntry `json:"entries"`
	EmployeeOfTheMonth *LeaderboardEntry  `json:"employee_of_the_month"`
	RecentActivity     []Kudos            `json:"recent_activity"`
}

// TeamOverview defines model for TeamOverview.
type TeamOverview struct {
	Team        Team  `json:"team"`
	Lead        *User `json:"lead"`
	MemberCount int   `json:"member_count"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	TotalSent  int            `json:"total_sent"`
	SilverSent int            `json:"silver_sent"`
	GoldSent   int            `json:"gold_sent"`
	TotalUsers int            `json:"total_users"`
	Users      []User         `json:"users"`
	Teams      []TeamOverview `json:"teams"`
}

// PostKudosJSONRequestBody defines body for PostKudos.
type PostKudosJSONRequestBody struct {
	ReceiverId string `json:"receiver_id"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	Image      *Image `json:"image,omitempty"`
}

// PostAssistMessageJSONRequestBody defines body for PostAssistMessage.
type PostAssistMessageJSONRequestBody struct {
	ReceiverId string `json:"receiver_id"`
	Seed       string `json:"seed"`
}

// PostAssistImageJSONRequestBody defines body for PostAssistImage.
type PostAssistImageJSONRequestBody struct {
	ReceiverId string `json:"receiver_id"`
	Message    string `json:"message"`
}

// PostAssistImageReviseJSONRequestBody defines body for PostAssistImageRevise.
type PostAssistImageReviseJSONRequestBody struct {
	Image       Image  `json:"image"`
	Instruction string `json:"instruction"`
}

// SuggestedMessage defines model for the message suggestion response.
type SuggestedMessage struct {
	Message string `json:"message"`
}

// GetLeaderboardParams defines parameters for GetLeaderboard.
type GetLeaderboardParams struct {
	Team  *string `query:"team"`
	Limit *int    `query:"limit"`
}

// GetKudosRecipientsParams defines parameters for GetKudosRecipients.
type GetKudosRecipientsParams struct {
	Type string `query:"type"`
}
