// Package dialogflow wraps the Dialogflow V2 sessions API for text intent
// detection. Intent classification itself lives in the external agent; this
// client only forwards user messages and returns the query result.
package dialogflow

import (
	"context"
	"fmt"

	df "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"google.golang.org/api/option"
)

type Client struct {
	projectID    string
	languageCode string
	sessions     *df.SessionsClient
}

func NewClient(ctx context.Context, projectID, credentialsFile, languageCode string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	sessions, err := df.NewSessionsClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Dialogflow session client: %w", err)
	}

	return &Client{
		projectID:    projectID,
		languageCode: languageCode,
		sessions:     sessions,
	}, nil
}

// DetectIntent sends a text message to the agent under the given session and
// returns the resulting query result.
func (c *Client) DetectIntent(ctx context.Context, sessionID, text string) (*dialogflowpb.QueryResult, error) {
	req := &dialogflowpb.DetectIntentRequest{
		Session: fmt.Sprintf("projects/%s/agent/sessions/%s", c.projectID, sessionID),
		QueryInput: &dialogflowpb.QueryInput{
			Input: &dialogflowpb.QueryInput_Text{
				Text: &dialogflowpb.TextInput{
					Text:         text,
					LanguageCode: c.languageCode,
				},
			},
		},
	}

	resp, err := c.sessions.DetectIntent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to detect intent: %w", err)
	}

	return resp.GetQueryResult(), nil
}

func (c *Client) Close() error {
	return c.sessions.Close()
}
