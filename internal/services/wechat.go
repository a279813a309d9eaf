package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// WechatExchanger resolves a mini-program one-time login code to a
// stable openid.
type WechatExchanger interface {
	Exchange(ctx context.Context, code string) (string, error)
}

// WechatClient implements WechatExchanger against the jscode2session
// endpoint.
type WechatClient struct {
	baseURL    string
	appID      string
	appSecret  string
	httpClient *http.Client
}

// sessionResponse mirrors the jscode2session JSON payload. Errcode is
// zero on success.
type sessionResponse struct {
	Openid     string `json:"openid"`
	SessionKey string `json:"session_key"`
	Errcode    int    `json:"errcode"`
	Errmsg     string `json:"errmsg"`
}

func NewWechatClient() *WechatClient {
	return NewWechatClientWithBase("https://api.weixin.qq.com")
}

func NewWechatClientWithBase(baseURL string) *WechatClient {
	return &WechatClient{
		baseURL:   baseURL,
		appID:     os.Getenv("WECHAT_APP_ID"),
		appSecret: os.Getenv("WECHAT_APP_SECRET"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Exchange trades the one-time code for an openid. Any provider-side
// failure surfaces as ErrExternalService.
func (c *WechatClient) Exchange(ctx context.Context, code string) (string, error) {
	params := url.Values{}
	params.Set("appid", c.appID)
	params.Set("secret", c.appSecret)
	params.Set("js_code", code)
	params.Set("grant_type", "authorization_code")

	endpoint := c.baseURL + "/sns/jscode2session?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("wechat code exchange failed")
		return "", fmt.Errorf("%w: status %s", ErrExternalService, resp.Status)
	}

	var data sessionResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	if data.Errcode != 0 || data.Openid == "" {
		logrus.WithFields(logrus.Fields{
			"errcode": data.Errcode,
			"errmsg":  data.Errmsg,
		}).Warn("wechat rejected login code")
		return "", fmt.Errorf("%w: errcode %d %s", ErrExternalService, data.Errcode, data.Errmsg)
	}
	return data.Openid, nil
}
