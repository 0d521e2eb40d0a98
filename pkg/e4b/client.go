package e4b

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/go-e4b/pkg/e4b/bank"
)

// ----------------------------------------------------------------------
// クライアント構造体とコンストラクタ
// ----------------------------------------------------------------------

// Client はHTTP(S)で公開されたバンクファイルを取得するクライアントです。
// httpkit.Client を利用してリトライ機能を内包します。
type Client struct {
	client  *httpkit.Client // リトライ機能付きHTTPクライアント
	baseURL string
}

// NewClient は新しいClientインスタンスを初期化します。
// baseURL が空の場合、FetchBank には絶対URLを渡す必要があります。
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client:  httpkit.New(timeout),
		baseURL: baseURL,
	}
}

// IsRemote は source がHTTP(S)のURLかどうかを判定します。
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ----------------------------------------------------------------------
// ヘルパー: URLの構築
// ----------------------------------------------------------------------

// buildURL は絶対URLはそのまま、相対パスはベースURLと結合して返します。
func (c *Client) buildURL(ref string) (*url.URL, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, &ErrFetch{URL: ref, WrappedErr: fmt.Errorf("URLのパース失敗: %w", err)}
	}
	if u.IsAbs() {
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, &ErrFetch{URL: ref, WrappedErr: fmt.Errorf("未対応のスキーム %q", u.Scheme)}
		}
		return u, nil
	}

	if c.baseURL == "" {
		return nil, &ErrFetch{URL: ref, WrappedErr: fmt.Errorf("ベースURLが未設定のため相対パスを解決できません")}
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &ErrFetch{URL: ref, WrappedErr: fmt.Errorf("ベースURLのパース失敗: %w", err)}
	}
	base.Path, err = url.JoinPath(base.Path, u.Path)
	if err != nil {
		return nil, &ErrFetch{URL: ref, WrappedErr: fmt.Errorf("パス結合失敗: %w", err)}
	}
	return base, nil
}

// ----------------------------------------------------------------------
// 取得ロジック
// ----------------------------------------------------------------------

// FetchBank はバンクファイルを取得し、メモリ上で復元します。
// 通信失敗は ErrFetch、内容の破損は ErrInvalid を満たすエラーになります。
func (c *Client) FetchBank(ctx context.Context, ref string) (*bank.Bank, error) {
	u, err := c.buildURL(ref)
	if err != nil {
		return nil, err
	}
	bankURL := u.String()

	// FetchBytes は GET, リトライ、ステータスチェック、ボディ読み取りを全て処理
	body, err := c.client.FetchBytes(ctx, bankURL)
	if err != nil {
		return nil, &ErrFetch{URL: bankURL, WrappedErr: err}
	}

	b, err := Read(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s の読み込みに失敗しました: %w", bankURL, err)
	}
	return b, nil
}
