package grading

type Formula string

const (
	// FormulaLegacy 最近得分之和 / 题目数之和，与旧系统数值保持一致（可能超过 100）
	FormulaLegacy Formula = "legacy"
	// FormulaAverage 各问卷最近得分的平均值
	FormulaAverage Formula = "average"
)

// QuestionnaireProgress 单个问卷的聚合输入，LatestScore 为 nil 表示从未作答
type QuestionnaireProgress struct {
	QuestionnaireID string `json:"questionnaireId"`
	QuestionCount   int    `json:"questionCount"`
	LatestScore     *int   `json:"latestScore"`
}

type Progress struct {
	Progress   int `json:"progress"`
	TotalScore int `json:"totalScore"`
	MaxScore   int `json:"maxScore"`
}

// AggregateProgress 没有问卷时返回全零，课程没有测评不算"已完成"
func AggregateProgress(items []QuestionnaireProgress, formula Formula) Progress {
	var p Progress
	if len(items) == 0 {
		return p
	}

	for _, it := range items {
		if it.LatestScore != nil {
			p.TotalScore += *it.LatestScore
		}
		switch formula {
		case FormulaAverage:
			p.MaxScore += 100
		default:
			p.MaxScore += it.QuestionCount
		}
	}

	if p.MaxScore > 0 {
		p.Progress = RoundPercent(p.TotalScore, p.MaxScore)
	}
	return p
}
