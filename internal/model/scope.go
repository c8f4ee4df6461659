package model

// Channel identifies the surface a message arrived on.
type Channel string

const (
	ChannelWeb       Channel = "web"
	ChannelAPI       Channel = "api"
	ChannelWebSocket Channel = "websocket"
	ChannelTelegram  Channel = "telegram"
	ChannelCLI       Channel = "cli"
)

// Scope identifies whose conversation an operation applies to.
type Scope struct {
	SessionID string
	Channel   Channel
	Username  string
}
