package models

// Strategy selects the prompt template used for reply generation.
type Strategy int

const (
	StrategyStandard Strategy = iota
	StrategySummarizePDF
	StrategyConcise
	StrategyElaborate
	StrategyEmailOnly
)

var strategyLabels = map[Strategy]string{
	StrategyStandard:     DefaultStrategy,
	StrategySummarizePDF: "Summarize PDF before replying",
	StrategyConcise:      "Concise reply",
	StrategyElaborate:    "Elaborate reply",
	StrategyEmailOnly:    "Use email only (ignore PDF)",
}

// ParseStrategy matches label exactly; anything unrecognized is StrategyStandard.
func ParseStrategy(label string) Strategy {
	for s, l := range strategyLabels {
		if l == label {
			return s
		}
	}
	return StrategyStandard
}

func (s Strategy) String() string {
	if l, ok := strategyLabels[s]; ok {
		return l
	}
	return DefaultStrategy
}
