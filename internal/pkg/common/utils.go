package common

import (
	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID，作為請求 ID
func GenerateUUID() string {
	return uuid.New().String()
}
