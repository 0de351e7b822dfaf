package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/wpppc/checkout-client-api/models"
)

// proxyCallTimeout bounds every outbound call to the proxy
const proxyCallTimeout = 30 * time.Second

// ProxyTransport is an interface for the proxy client methods used in this
// service
type ProxyTransport interface {
	Get(server *models.ProxyServer, route string, params url.Values) (*models.ProxyResponse, ResponseType, error)
	Post(server *models.ProxyServer, route string, request *models.ProxyRequest) (*models.ProxyResponse, ResponseType, error)
}

// ProxyClient performs the HTTP calls to the proxy's REST endpoints and
// normalizes its JSON envelope. It never retries: each caller decides whether
// a retry is safe, and payment capture in particular must not be retried
// automatically.
type ProxyClient struct {
	HTTPClient *http.Client
}

// NewProxyClient returns a ProxyClient with the bounded timeout applied
func NewProxyClient() *ProxyClient {
	return &ProxyClient{
		HTTPClient: &http.Client{Timeout: proxyCallTimeout},
	}
}

// Get performs a legacy query-string call to the proxy. The route travels as
// the rest_route parameter on the server's base URL.
func (pc *ProxyClient) Get(server *models.ProxyServer, route string, params url.Values) (*models.ProxyResponse, ResponseType, error) {
	params.Set("rest_route", route)

	request, err := http.NewRequest("GET", server.URL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, Error, fmt.Errorf("error generating request for proxy: [%s]", err)
	}
	request.Header.Add("accept", "application/json")

	return pc.do(request, route)
}

// Post performs a signed JSON call to one of the proxy's express endpoints
func (pc *ProxyClient) Post(server *models.ProxyServer, route string, proxyRequest *models.ProxyRequest) (*models.ProxyResponse, ResponseType, error) {
	requestBody, err := json.Marshal(proxyRequest)
	if err != nil {
		return nil, Error, fmt.Errorf("error marshalling proxy request: [%s]", err)
	}

	params := url.Values{}
	params.Set("rest_route", route)

	request, err := http.NewRequest("POST", server.URL+"?"+params.Encode(), bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, Error, fmt.Errorf("error generating request for proxy: [%s]", err)
	}
	request.Header.Add("accept", "application/json")
	request.Header.Add("content-type", "application/json")

	return pc.do(request, route)
}

func (pc *ProxyClient) do(request *http.Request, route string) (*models.ProxyResponse, ResponseType, error) {
	resp, err := pc.HTTPClient.Do(request)
	if err != nil {
		return nil, TransportError, fmt.Errorf("error sending request to proxy route %s: [%s]", route, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, TransportError, fmt.Errorf("error reading response from proxy route %s: [%s]", route, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, TransportError, fmt.Errorf("error status [%v] back from proxy route %s", resp.StatusCode, route)
	}

	proxyResponse := &models.ProxyResponse{}
	if err = json.Unmarshal(body, proxyResponse); err != nil {
		return nil, ProtocolError, fmt.Errorf("invalid JSON response from proxy route %s: [%s]", route, err)
	}

	if !proxyResponse.Success {
		message := proxyResponse.Message
		if message == "" {
			message = "unknown proxy error"
		}
		return proxyResponse, ProtocolError, fmt.Errorf("proxy route %s signalled failure: [%s]", route, message)
	}

	log.Debug(fmt.Sprintf("successful proxy call to route %s", route))

	return proxyResponse, Success, nil
}

// GenerateExpressIframeURL builds the signed URL of the proxy page hosting
// the express PayPal button, embedded by the browser-side bridge
func GenerateExpressIframeURL(server *models.ProxyServer, callbackURL, siteURL, currency, cartTotal string, needsShipping bool) string {
	signer := Signer{Server: server}
	sig := signer.Sign("express_checkout")

	params := url.Values{}
	params.Set("rest_route", "/wppps/v1/express-paypal-buttons")
	params.Set("amount", cartTotal)
	params.Set("currency", currency)
	params.Set("api_key", server.APIKey)
	params.Set("timestamp", fmt.Sprintf("%d", sig.Timestamp))
	params.Set("hash", sig.Hash)
	params.Set("callback_url", base64.StdEncoding.EncodeToString([]byte(callbackURL)))
	params.Set("site_url", base64.StdEncoding.EncodeToString([]byte(siteURL)))
	params.Set("server_id", fmt.Sprintf("%d", server.ID))
	if needsShipping {
		params.Set("needs_shipping", "yes")
	} else {
		params.Set("needs_shipping", "no")
	}
	params.Set("express", "yes")

	return server.URL + "?" + params.Encode()
}
