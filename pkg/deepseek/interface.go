package deepseek

import "context"

// IDeepSeek is the completions surface llmprovider adapts.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IDeepSeek = (*Client)(nil)
