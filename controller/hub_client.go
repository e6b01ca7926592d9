package controller

import (
	"context"

	"github.com/calvinmclean/brailleboard"
)

// hubClient mirrors rendered messages to a brailleboard hub service so other
// senders can see what the display is showing
type hubClient interface {
	SubmitJob(ctx context.Context, msg brailleboard.Message) (string, error)
	Done(ctx context.Context) error
}

type noopHubClient struct{}

var _ hubClient = noopHubClient{}

// SubmitJob implements hubClient.
func (n noopHubClient) SubmitJob(ctx context.Context, msg brailleboard.Message) (string, error) {
	return "", nil
}

// Done implements hubClient.
func (n noopHubClient) Done(ctx context.Context) error {
	return nil
}
