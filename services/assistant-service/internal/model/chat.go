package model

import "github.com/vasapolrittideah/academia-bot/shared/provider"

// ChatTurn is one prior message of a conversation, resent by the client on every call.
type ChatTurn struct {
	Role    provider.Role
	Message string
}
