package domain_pick

import (
	"errors"
	"fmt"

	"github.com/squirtles/musicroad/domain"
	"github.com/squirtles/musicroad/util/geo"
)

var (
	// ErrInvalidArgument 参数非法，在发起任何查询前返回
	ErrInvalidArgument = errors.New("invalid argument")
	ErrPickNotFound    = fmt.Errorf("pick: %w", domain.ErrNotFound)
	// ErrMalformedPick 存储中的文档缺少可用位置
	ErrMalformedPick = errors.New("malformed pick record")
	// ErrRemoteQuery 用于 errors.Is 判断 RemoteQueryFailure
	ErrRemoteQuery = errors.New("remote query failure")
)

// RemoteQueryFailure 某个 geohash 区间的范围查询失败，整个区域查询随之失败
type RemoteQueryFailure struct {
	Bound geo.Bound
	Err   error
}

func (e *RemoteQueryFailure) Error() string {
	return fmt.Sprintf("remote query failure on [%s, %s]: %v", e.Bound.StartHash, e.Bound.EndHash, e.Err)
}

func (e *RemoteQueryFailure) Unwrap() error {
	return e.Err
}

func (e *RemoteQueryFailure) Is(target error) bool {
	return target == ErrRemoteQuery
}
