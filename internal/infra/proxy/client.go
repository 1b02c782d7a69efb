// Package proxy implements the client side of the backend proxy contract:
// POST /api/analyze-image and POST /api/chat. Transport failures, error
// statuses and malformed bodies are all absorbed into normalized results so
// the session layer never branches on error kind.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/medicode-ai/medicode/internal/domain/analysis"
	"github.com/medicode-ai/medicode/internal/parser"
)

type Client struct {
	baseURL string
	httpc   *http.Client
	log     log.Interface
}

// New builds a client for the proxy at baseURL. Requests are single attempt
// at-most-once: a failed call is reported, never retried.
func New(baseURL string, logger log.Interface) *Client {
	if logger == nil {
		logger = log.Log
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		// Model completions can take a while before the first byte arrives.
		ResponseHeaderTimeout: 120 * time.Second,
		IdleConnTimeout:       90 * time.Second,
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Transport: tr},
		log:     logger,
	}
}

// WithHTTPClient overrides the internal HTTP client (e.g. for tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpc = hc
	}
	return c
}

// AnalyzeImage sends the image payload and returns the proxy's three-language
// result, or a normalized trilingual failure result. Never returns an error.
func (c *Client) AnalyzeImage(ctx context.Context, imageData string) analysis.Result {
	data, err := c.post(ctx, "/api/analyze-image", map[string]string{"imageData": imageData})
	if err != nil {
		c.log.WithError(err).Error("image analysis request failed")
		return analysis.FailureResult(diag(err))
	}

	var out analysis.Result
	if err := json.Unmarshal(data, &out); err != nil {
		c.log.WithError(err).Error("image analysis reply not decodable")
		return analysis.FailureResult(analysis.ErrMalformedResponse.Error())
	}
	if out.Result == "" && out.TamilResult == "" && out.HindiResult == "" {
		return analysis.FailureResult(analysis.ErrMalformedResponse.Error())
	}
	out.Err = ""
	return out
}

// SendChatMessage sends a free-text question. A proxy that replies with
// pre-split fields is consumed as-is; a raw text reply is split here. Failures
// degrade to the single-language apology.
func (c *Client) SendChatMessage(ctx context.Context, userMessage string) analysis.Result {
	data, err := c.post(ctx, "/api/chat", map[string]string{"userMessage": userMessage})
	if err != nil {
		c.log.WithError(err).Error("chat request failed")
		return analysis.ChatFailureResult(diag(err))
	}

	var out struct {
		Result      string `json:"result"`
		TamilResult string `json:"tamilResult"`
		HindiResult string `json:"hindiResult"`
		Response    string `json:"response"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		c.log.WithError(err).Error("chat reply not decodable")
		return analysis.ChatFailureResult(analysis.ErrMalformedResponse.Error())
	}

	if out.Result == "" && out.TamilResult == "" && out.HindiResult == "" {
		if out.Response == "" {
			return analysis.ChatFailureResult(analysis.ErrMalformedResponse.Error())
		}
		sec := parser.Parse(out.Response, parser.DefaultLabels, parser.Fallbacks{
			English: analysis.ChatFallbackText(analysis.LanguageEnglish),
			Tamil:   analysis.ChatFallbackText(analysis.LanguageTamil),
			Hindi:   analysis.ChatFallbackText(analysis.LanguageHindi),
		})
		return analysis.Result{Result: sec.English, TamilResult: sec.Tamil, HindiResult: sec.Hindi}
	}

	return analysis.Result{
		Result:      out.Result,
		TamilResult: out.TamilResult,
		HindiResult: out.HindiResult,
	}
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analysis.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analysis.ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		// Prefer the server-supplied error message when the body has one.
		var er struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &er) == nil && er.Error != "" {
			return nil, fmt.Errorf("%w: %s", analysis.ErrTransport, er.Error)
		}
		return nil, fmt.Errorf("%w: unexpected status %d", analysis.ErrTransport, resp.StatusCode)
	}
	return data, nil
}

// diag reduces err to the human-readable diagnostic carried on the result.
func diag(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if rest, ok := strings.CutPrefix(s, analysis.ErrTransport.Error()+": "); ok {
		return rest
	}
	return s
}
