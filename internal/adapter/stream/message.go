package stream

type MessageType string

const (
	MessageTypeSnapshot MessageType = "snapshot"
	MessageTypeError    MessageType = "error"
)

type Message struct {
	Type    MessageType `json:"type"`
	WorldID string      `json:"world_id"`
	Payload any         `json:"payload"`
}
