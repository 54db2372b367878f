package ipc

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"resty.dev/v3"
)

type Client struct {
	rest *resty.Client
}

// NewClient talks to the daemon over the unix socket at path.
func NewClient(path string) *Client {
	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", path)
			},
		},
	})

	client.SetBaseURL("http://shaderpaper")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "shaderpaper")

	return &Client{rest: client}
}

func (c *Client) Status() (*StatusResponse, error) {
	result := StatusResponse{}
	response, err := c.rest.R().SetResult(&result).Get("/status")
	if err != nil {
		return nil, err
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error getting status: %s", response.Status())
	}
	return &result, nil
}

func (c *Client) Switch(name string) (*Response, error) {
	return c.post("/switch", SwitchRequest{Animation: name})
}

func (c *Client) Stop() (*Response, error) {
	return c.post("/stop", nil)
}

func (c *Client) post(path string, body any) (*Response, error) {
	result := Response{}
	req := c.rest.R().SetResult(&result)
	if body != nil {
		req.SetBody(body)
	}

	response, err := req.Post(path)
	if err != nil {
		return nil, err
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error sending %s: %s: %s", path, response.Status(), response.String())
	}
	return &result, nil
}
