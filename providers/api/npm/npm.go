/*
Package npm provides a client for the npm public registry API.
*/
package npm

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
)

// npmHostname - npm public registry hostname (used as default API).
//
// The registry API is documented at github.com/npm/registry.
var npmHostname string = "https://registry.npmjs.org"

// Client is used to send API requests to an npm-compatible registry.
type Client struct {
	baseURL    url.URL
	HttpClient *http.Client
}

// NewClient creates and returns a new registry client.
//
// If a nil URL is provided, the client is configured for the public npm
// registry (registry.npmjs.org).
func NewClient(httpClient *http.Client, URL *url.URL) (*Client, error) {
	if URL == nil {
		var err error
		if URL, err = url.Parse(npmHostname); err != nil {
			return nil, err
		}
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: *URL, HttpClient: httpClient}, nil
}

// DistTags represents a package's dist-tag map (tag name to version).
type DistTags map[string]string

// DistTags method fetches the dist-tags of a package ('latest', ...).
func (c Client) DistTags(ctx context.Context, pkg string) (DistTags, *http.Response, error) {
	if pkg == "" {
		return nil, nil, fmt.Errorf("'pkg' option is required for dist-tags request")
	}

	route := fmt.Sprintf("%s/-/package/%s/dist-tags", &c.baseURL, url.PathEscape(pkg))
	req, err := http.NewRequestWithContext(ctx, "GET", route, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create a request: %w", err)
	}

	var dt DistTags
	var r *http.Response
	if r, err = parseResponse(&c, req, &dt); err != nil {
		return nil, nil, err
	}

	return dt, r, nil
}

// SearchOptions specifies the optional parameters to the Search() method.
type SearchOptions struct {
	// Size is used to define the pagination step (max 250).
	Size int `url:"size,omitempty"`
	// From is used to define the result offset.
	From int `url:"from,omitempty"`
	// Quality, Popularity and Maintenance weight the result scoring.
	Quality     float64 `url:"quality,omitempty"`
	Popularity  float64 `url:"popularity,omitempty"`
	Maintenance float64 `url:"maintenance,omitempty"`
}

// FoundSearch represents a search result page.
type FoundSearch struct {
	Objects []FoundObject `json:"objects"`
	Total   int           `json:"total"`
	Time    string        `json:"time"`
}

// FoundObject is one scored entry of a search result.
type FoundObject struct {
	Package FoundPackage `json:"package"`
	Score   struct {
		Final  float64 `json:"final"`
		Detail struct {
			Quality     float64 `json:"quality"`
			Popularity  float64 `json:"popularity"`
			Maintenance float64 `json:"maintenance"`
		} `json:"detail"`
	} `json:"score"`
	SearchScore float64 `json:"searchScore"`
}

// FoundPackage is a representation of one package from the search result.
type FoundPackage struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Links       struct {
		NPM        string `json:"npm"`
		Homepage   string `json:"homepage"`
		Repository string `json:"repository"`
		Bugs       string `json:"bugs"`
	} `json:"links"`
}

// Search method is used to search the registry for packages by text query.
func (c Client) Search(ctx context.Context, text string, opts *SearchOptions) (*FoundSearch, *http.Response, error) {
	if text == "" {
		return nil, nil, fmt.Errorf("'text' option is required for search request")
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing the options: %w", err)
	}
	v.Add("text", text)

	route := fmt.Sprintf("%s/-/v1/search?%s", &c.baseURL, v.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", route, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create a request: %w", err)
	}

	var fs FoundSearch
	var r *http.Response
	if r, err = parseResponse(&c, req, &fs); err != nil {
		return nil, nil, err
	}

	return &fs, r, nil
}

// errorResponse models registry error payloads ('{"error": "Not found"}').
type errorResponse struct {
	Error string `json:"error"`
}

// parseResponse - helper to send a request and unmarshal the response
// into dt, translating HTTP and registry-level errors on the way.
func parseResponse(c *Client, req *http.Request, dt interface{}) (r *http.Response, err error) {
	if r, err = c.HttpClient.Do(req); err != nil {
		return nil, fmt.Errorf("unable to send a request: %w", err)
	}
	defer r.Body.Close()

	if r.StatusCode >= 400 {
		return nil, fmt.Errorf("registry responded with HTTP error '%d: %s'", r.StatusCode, http.StatusText(r.StatusCode))
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %w", err)
	}

	// Handling error responses from the registry api
	var ersp errorResponse
	if perr := json.Unmarshal(body, &ersp); perr == nil && ersp.Error != "" {
		return nil, fmt.Errorf("registry api responded with error '%s'", ersp.Error)
	}

	if err = json.Unmarshal(body, &dt); err != nil {
		return nil, fmt.Errorf("unable to parse response: %w", err)
	}

	return r, nil
}
