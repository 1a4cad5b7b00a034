package services

import "errors"

// ErrStoreUnavailable 表示交互或关系存储未能应答。
// 不在本层重试，也绝不降级为空结果：空结果只能表示“确实没有候选”。
var ErrStoreUnavailable = errors.New("recommendation store unavailable")

// ErrInvalidArgument 表示非法入参（如非正的 limit）。
var ErrInvalidArgument = errors.New("invalid recommendation argument")

// ErrUnknownUser 表示目标用户不存在，快速失败，不做任何候选计算。
var ErrUnknownUser = errors.New("unknown user")
