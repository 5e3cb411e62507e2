package util

import (
	"fmt"
	"strconv"
)

// ParseIndex 解析路径中的非负下标
func ParseIndex(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidInput, name)
	}
	return n, nil
}
