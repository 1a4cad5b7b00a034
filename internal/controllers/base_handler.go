package controllers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/go-kratos/kratos/v2/transport"
)

// userInfoHeader 是 API 网关透传的调用方身份头。
const userInfoHeader = "x-apigateway-api-userinfo"

// HandlerType 区分查询类与变更类 Handler，二者使用不同的超时预算。
type HandlerType int

const (
	// HandlerTypeQuery 表示只读查询请求。
	HandlerTypeQuery HandlerType = iota
	// HandlerTypeMutation 表示写入类请求。
	HandlerTypeMutation
)

const (
	defaultQueryTimeout    = 5 * time.Second
	defaultMutationTimeout = 10 * time.Second
)

// HandlerTimeouts 配置各类 Handler 的超时时间，零值使用默认预算。
type HandlerTimeouts struct {
	Query    time.Duration
	Mutation time.Duration
}

// BaseHandler 提供 Handler 共用的元数据解析与超时控制。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造 BaseHandler，补齐缺省超时。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Query <= 0 {
		timeouts.Query = defaultQueryTimeout
	}
	if timeouts.Mutation <= 0 {
		timeouts.Mutation = defaultMutationTimeout
	}
	return &BaseHandler{timeouts: timeouts}
}

// RequestMetadata 描述网关注入的调用方信息。
type RequestMetadata struct {
	UserID          string
	InvalidUserInfo bool
}

// ExtractMetadata 解析网关透传的用户信息头。
// 头缺失时返回空元数据；头存在但无法解码时置 InvalidUserInfo。
func (b *BaseHandler) ExtractMetadata(ctx context.Context) RequestMetadata {
	tr, ok := transport.FromServerContext(ctx)
	if !ok {
		return RequestMetadata{}
	}
	raw := tr.RequestHeader().Get(userInfoHeader)
	if raw == "" {
		return RequestMetadata{}
	}

	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		payload, err = base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return RequestMetadata{InvalidUserInfo: true}
		}
	}

	var claims struct {
		Sub string `json:"sub"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return RequestMetadata{InvalidUserInfo: true}
	}
	return RequestMetadata{UserID: claims.Sub}
}

// WithTimeout 按 Handler 类型派生带超时的上下文。
func (b *BaseHandler) WithTimeout(ctx context.Context, handlerType HandlerType) (context.Context, context.CancelFunc) {
	timeout := b.timeouts.Query
	if handlerType == HandlerTypeMutation {
		timeout = b.timeouts.Mutation
	}
	return context.WithTimeout(ctx, timeout)
}
