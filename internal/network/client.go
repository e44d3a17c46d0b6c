package network

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Noooste/azuretls-client"
	"golang.org/x/net/proxy"
)

// ClientFactory creates HTTP clients with the proxy configured at
// startup. The proxy URL never changes while the process runs.
type ClientFactory struct {
	proxyURL       string
	testHTTPClient *http.Client // For testing only
}

// NewClientFactory creates a new client factory. proxyURL may be empty.
func NewClientFactory(proxyURL string) *ClientFactory {
	return &ClientFactory{proxyURL: proxyURL}
}

// NewClientFactoryForTest creates a factory that hands out the given
// http.Client. This is only for use in tests.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{testHTTPClient: client}
}

// NewHTTPClient creates a standard http.Client with proxy configuration.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	if f.testHTTPClient != nil {
		return f.testHTTPClient
	}

	client := &http.Client{Timeout: timeout}
	if f.proxyURL != "" {
		client.Transport = newTransportWithProxy(f.proxyURL)
	}
	return client
}

// NewAzureSession creates an azuretls.Session with proxy configuration.
func (f *ClientFactory) NewAzureSession(timeout time.Duration) *azuretls.Session {
	session := azuretls.NewSession()
	session.Browser = azuretls.Chrome
	session.SetTimeout(timeout)

	if f.proxyURL != "" {
		_ = session.SetProxy(f.proxyURL)
	}
	return session
}

// newTransportWithProxy creates an http.Transport with proper proxy
// support. SOCKS proxies go through golang.org/x/net/proxy, HTTP/HTTPS
// proxies through the standard http.ProxyURL.
func newTransportWithProxy(proxyURL string) *http.Transport {
	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return &http.Transport{}
	}

	if strings.HasPrefix(parsed.Scheme, "socks") {
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{
				User: parsed.User.Username(),
			}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return &http.Transport{}
		}

		return &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		}
	}

	return &http.Transport{
		Proxy: http.ProxyURL(parsed),
	}
}
