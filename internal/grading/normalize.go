package grading

import "strings"

// Normalized 可比较的答案形式。answered 为 false 表示"未作答"，
// 它与任何标准答案都不相等，包括空字符串标准答案。
type Normalized struct {
	value    string
	answered bool
}

// NormalizeAnswer 规范化用户提交的答案：去首尾空白并转小写。
// present=false 或去空白后为空都视为未作答。
func NormalizeAnswer(raw string, present bool) Normalized {
	if !present {
		return Normalized{}
	}
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Normalized{}
	}
	return Normalized{value: v, answered: true}
}

// NormalizeCorrect 规范化标准答案，标准答案总是视为已给出
func NormalizeCorrect(raw string) Normalized {
	return Normalized{value: strings.ToLower(strings.TrimSpace(raw)), answered: true}
}

func (n Normalized) Answered() bool {
	return n.answered
}

func (n Normalized) String() string {
	return n.value
}

// Matches 仅当双方都已作答且规范化后完全相等时返回 true
func (n Normalized) Matches(other Normalized) bool {
	return n.answered && other.answered && n.value == other.value
}
