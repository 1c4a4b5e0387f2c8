package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketAllow(t *testing.T) {
	// 1. 容量为3, 初始应允许3个请求
	tb := NewTokenBucket(1, 3)
	assert.True(t, tb.Allow(), "第1个请求应该被允许")
	assert.True(t, tb.Allow(), "第2个请求应该被允许")
	assert.True(t, tb.Allow(), "第3个请求应该被允许")

	// 2. 桶空后应该拒绝
	assert.False(t, tb.Allow(), "桶空后应该拒绝请求")
}

func TestTokenBucketRefill(t *testing.T) {
	// 高速率便于快速补充
	tb := NewTokenBucket(100, 1)
	require.True(t, tb.Allow(), "初始请求应该被允许")
	require.False(t, tb.Allow(), "令牌耗尽后应该拒绝")

	// 等待足够长的时间补充至少1个令牌
	time.Sleep(50 * time.Millisecond)
	assert.True(t, tb.Allow(), "补充后应该再次允许请求")
}

func TestTokenBucketCapacityCap(t *testing.T) {
	tb := NewTokenBucket(1000, 2)
	time.Sleep(20 * time.Millisecond)

	// 即使速率很高, 令牌数也不应超过容量
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow(), "令牌数不应超过桶容量")
}

func TestTokenBucketWait(t *testing.T) {
	tb := NewTokenBucket(50, 1)
	require.True(t, tb.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := tb.Wait(ctx)
	require.NoError(t, err, "Wait应该在令牌补充后返回")
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestTokenBucketWaitCancelled(t *testing.T) {
	// 速率极低, Wait只能依赖上下文取消退出
	tb := NewTokenBucket(0.001, 1)
	require.True(t, tb.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := tb.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded, "上下文超时后Wait应该返回错误")
}

func TestTokenBucketDefaults(t *testing.T) {
	// 非法参数应该回退到安全默认值
	tb := NewTokenBucket(0, 0)
	assert.True(t, tb.Allow(), "默认容量至少应允许1个请求")
}
