// Package hub is a client for the brailleboard hub service, which queues
// render jobs for displays that are shared between multiple senders.
package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/calvinmclean/brailleboard"

	"github.com/calvinmclean/babyapi"
)

type Client struct {
	client *babyapi.Client[*job]
	jobID  string
}

type job struct {
	// include NilResource so we don't implement Render/Bind which are not needed
	*babyapi.NilResource

	ID          string               `json:"id,omitempty"`
	Message     brailleboard.Message `json:"message"`
	SubmittedAt time.Time            `json:"submitted_at,omitzero"`
	Status      string               `json:"status,omitempty"`
}

func (j job) GetID() string {
	return j.ID
}

func NewClient(addr string) *Client {
	client := babyapi.NewClient[*job](addr, "/jobs")
	return &Client{client: client}
}

// SubmitJob queues a message for rendering and returns the job ID
func (c *Client) SubmitJob(ctx context.Context, msg brailleboard.Message) (string, error) {
	resp, err := c.client.Post(ctx, &job{
		Message:     msg,
		SubmittedAt: time.Now(),
	})
	if err != nil {
		return "", err
	}

	c.jobID = resp.Data.GetID()

	return resp.Data.GetID(), nil
}

// Done marks the submitted job complete
func (c Client) Done(ctx context.Context) error {
	url, _ := c.client.URL(c.jobID)
	url += "/done"

	return c.makeRequest(ctx, url, map[string]any{"time": time.Now()})
}

func (c Client) makeRequest(ctx context.Context, url string, body any) error {
	var bodyReader io.Reader = http.NoBody
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding body: %w", err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bodyReader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := c.client.MakeGenericRequest(req, nil)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	if resp.Response.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d, response: %v", resp.Response.StatusCode, resp.Body)
	}

	return nil
}
