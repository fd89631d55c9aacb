package remote

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Remote method names reported in CallError.Method.
const (
	// MethodGet reads document metadata.
	MethodGet = "spreadsheets.get"
	// MethodBatchUpdate applies structural requests.
	MethodBatchUpdate = "spreadsheets.batchUpdate"
	// MethodBatchUpdateValues writes value ranges.
	MethodBatchUpdateValues = "spreadsheets.values.batchUpdate"
)

// documentFields limits Get to what a sheet directory needs.
const documentFields = "spreadsheetId,properties.title,sheets.properties"

// Service is the subset of the Sheets v4 API used to read a document's sheets and to submit
// batched changes.
type Service interface {
	// Get returns the document metadata, including the properties of every sheet.
	Get(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, error)
	// BatchUpdate applies structural requests in order.
	BatchUpdate(ctx context.Context, spreadsheetID string, req *sheets.BatchUpdateSpreadsheetRequest) (*sheets.BatchUpdateSpreadsheetResponse, error)
	// BatchUpdateValues writes value ranges.
	BatchUpdateValues(ctx context.Context, spreadsheetID string, req *sheets.BatchUpdateValuesRequest) (*sheets.BatchUpdateValuesResponse, error)
}

// Options for the NewClient method.
type Options struct {
	// CredentialsFile is the path to a service account or authorized user JSON file.
	CredentialsFile string
	// CredentialsJSON is the content of such a file.
	CredentialsJSON []byte
	// TokenSource supplies tokens, for example from the auth package's web flow.
	TokenSource oauth2.TokenSource
	// Scopes defaults to the spreadsheets scope.
	Scopes []string
	// Endpoint overrides the service base path.
	Endpoint string
	// HTTPClient replaces the authenticated transport entirely.
	HTTPClient *http.Client
	// WithoutAuthentication disables authentication, mainly for tests and emulators.
	WithoutAuthentication bool
	// UserAgent is appended to the client's user agent.
	UserAgent string
}

// Option is a functional option for the NewClient method.
type Option func(*Options)

// WithCredentialsFile authenticates with the credentials JSON file at path.
func WithCredentialsFile(path string) Option {
	return func(opts *Options) {
		opts.CredentialsFile = path
	}
}

// WithCredentialsJSON authenticates with the given credentials JSON.
func WithCredentialsJSON(json []byte) Option {
	return func(opts *Options) {
		opts.CredentialsJSON = json
	}
}

// WithTokenSource authenticates every request with tokens from ts.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(opts *Options) {
		opts.TokenSource = ts
	}
}

// WithScopes overrides the OAuth2 scopes requested for default and file credentials.
func WithScopes(scopes ...string) Option {
	return func(opts *Options) {
		opts.Scopes = scopes
	}
}

// WithEndpoint overrides the base URL of the Sheets API.
func WithEndpoint(endpoint string) Option {
	return func(opts *Options) {
		opts.Endpoint = endpoint
	}
}

// WithHTTPClient sends requests through client as is. No credentials are added.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

// WithoutAuthentication sends requests without credentials.
func WithoutAuthentication() Option {
	return func(opts *Options) {
		opts.WithoutAuthentication = true
	}
}

// WithUserAgent sets an additional user agent string.
func WithUserAgent(userAgent string) Option {
	return func(opts *Options) {
		opts.UserAgent = userAgent
	}
}

// Client implements Service with the generated Sheets v4 client.
type Client struct {
	service *sheets.Service
}

// NewClient creates a Client. Without credential options, Application Default Credentials
// are used.
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	service, err := sheets.NewService(ctx, options.clientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{service: service}, nil
}

// NewClientFromService wraps an existing generated client.
func NewClientFromService(service *sheets.Service) *Client {
	return &Client{service: service}
}

func (o *Options) clientOptions() []option.ClientOption {
	scopes := o.Scopes
	if len(scopes) == 0 {
		scopes = []string{sheets.SpreadsheetsScope}
	}
	clientOptions := []option.ClientOption{option.WithScopes(scopes...)}
	if o.CredentialsFile != "" {
		clientOptions = append(clientOptions, option.WithCredentialsFile(o.CredentialsFile))
	}
	if len(o.CredentialsJSON) > 0 {
		clientOptions = append(clientOptions, option.WithCredentialsJSON(o.CredentialsJSON))
	}
	if o.TokenSource != nil {
		clientOptions = append(clientOptions, option.WithTokenSource(o.TokenSource))
	}
	if o.Endpoint != "" {
		clientOptions = append(clientOptions, option.WithEndpoint(o.Endpoint))
	}
	if o.HTTPClient != nil {
		clientOptions = append(clientOptions, option.WithHTTPClient(o.HTTPClient))
	}
	if o.WithoutAuthentication {
		clientOptions = append(clientOptions, option.WithoutAuthentication())
	}
	if o.UserAgent != "" {
		clientOptions = append(clientOptions, option.WithUserAgent(o.UserAgent))
	}
	return clientOptions
}

// Get implements Service.
func (c *Client) Get(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, error) {
	return c.service.Spreadsheets.Get(spreadsheetID).Fields(googleapi.Field(documentFields)).Context(ctx).Do()
}

// BatchUpdate implements Service.
func (c *Client) BatchUpdate(ctx context.Context, spreadsheetID string, req *sheets.BatchUpdateSpreadsheetRequest) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	return c.service.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
}

// BatchUpdateValues implements Service.
func (c *Client) BatchUpdateValues(ctx context.Context, spreadsheetID string, req *sheets.BatchUpdateValuesRequest) (*sheets.BatchUpdateValuesResponse, error) {
	return c.service.Spreadsheets.Values.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
}
