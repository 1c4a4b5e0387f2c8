package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// IntPtr 返回int的指针
func IntPtr(i int) *int {
	return &i
}

// CalculateMD5 计算字节切片的MD5摘要(hex编码)
func CalculateMD5(data []byte) string {
	hasher := md5.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}
