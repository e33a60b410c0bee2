package model

// Bot strategy constants
const (
	BotStrategyHeuristic = "heuristic"
	BotStrategyRandom    = "random"
)

// DefaultBotStrategy is used when no strategy is configured
const DefaultBotStrategy = BotStrategyHeuristic

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyHeuristic:
		return "Heuristic"
	case BotStrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyHeuristic, BotStrategyRandom}
}
