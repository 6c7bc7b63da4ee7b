/*
Package nodedist provides a client for the Node.js release index
(nodejs.org/dist).
*/
package nodedist

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
)

// nodeDistHostname - Node.js distribution hostname (used as default API).
//
// The index at '{hostname}/index.json' lists every Node.js release ever
// published, newest first.
var nodeDistHostname string = "https://nodejs.org/dist"

// NewClient constructs a new Node release index client.
//
// If httpClient or URL is nil - default values will be used.
// Pass URL only if you are sure the address serves a dist-compatible index.
func NewClient(httpClient *http.Client, URL *url.URL) (*Client, error) {
	if URL == nil {
		var err error
		if URL, err = url.Parse(nodeDistHostname); err != nil {
			return nil, err
		}
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, baseURL: *URL}, nil
}

// Client is used to communicate with a Node.js dist-compatible index.
type Client struct {
	httpClient *http.Client
	baseURL    url.URL
}

// Release represents one entry of the release index.
type Release struct {
	Version  string   `json:"version"`
	Date     string   `json:"date"`
	Files    []string `json:"files"`
	NPM      string   `json:"npm"`
	V8       string   `json:"v8"`
	LTS      LTSName  `json:"lts"`
	Security bool     `json:"security"`
}

// LTSName holds the LTS codename of a release (e.g. 'Hydrogen'), empty
// for non-LTS releases.
type LTSName string

// UnmarshalJSON is used to change unmarshalling logic for the 'lts' field.
//
// The index encodes non-LTS releases as 'lts: false' and LTS releases as
// 'lts: "<codename>"'. Default unmarshalling would fail on the boolean,
// so we translate it into an empty codename instead.
func (n *LTSName) UnmarshalJSON(data []byte) error {
	if len(data) < 1 {
		return fmt.Errorf("invalid lts field length %d", len(data))
	}
	if data[0] != '"' {
		*n = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*n = LTSName(s)
	return nil
}

// Index method lists every release known to the index, newest first.
func (c Client) Index(ctx context.Context) ([]Release, *http.Response, error) {
	route := fmt.Sprintf("%s/index.json", &c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", route, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create a request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to send the request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, resp, fmt.Errorf("node dist index returned with !=200 status code")
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, fmt.Errorf("unable to read the response body: %w", err)
	}

	var releases []Release
	if err = json.Unmarshal(body, &releases); err != nil {
		return nil, resp, fmt.Errorf("unable to parse the response body: %w", err)
	}

	return releases, resp, nil
}
