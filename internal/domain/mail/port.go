package mail

import "context"

// Message is one outgoing transactional email with an optional PDF attachment.
type Message struct {
	To             string
	Subject        string
	HTMLBody       string
	AttachmentName string
	Attachment     []byte
}

// Sender port (interface untuk email delivery)
type Sender interface {
	Send(ctx context.Context, m Message) error
}
