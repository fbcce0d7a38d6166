package commands

import (
	"context"
	"fmt"
)

// MessageHandlerFactory creates handlers that publish templated text.
// Config:
//   - message (required): template for the text to publish
//   - channel (optional): template for the subject, defaults to the
//     issuing session
type MessageHandlerFactory struct {
	pub Publisher
}

// NewMessageHandlerFactory creates a new MessageHandlerFactory with a publisher.
func NewMessageHandlerFactory(pub Publisher) *MessageHandlerFactory {
	return &MessageHandlerFactory{pub: pub}
}

func (f *MessageHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "message", Required: true},
			{Name: "channel", Required: false},
		},
	}
}

func (f *MessageHandlerFactory) ValidateConfig(config map[string]any) error {
	message, _ := config["message"].(string)
	if message == "" {
		return fmt.Errorf("message must be a non-empty string")
	}
	return nil
}

func (f *MessageHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		// Config values are already expanded by the framework
		channel := cmdCtx.Config["channel"]
		if channel == "" {
			channel = cmdCtx.Subject
		}
		if f.pub == nil {
			return nil
		}
		return f.pub.Publish(channel, []byte(cmdCtx.Config["message"]))
	}, nil
}
